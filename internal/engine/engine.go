package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/inetgraph/internal/ctxlog"
	"github.com/vk/inetgraph/internal/fsutil"
	"github.com/vk/inetgraph/internal/graph"
	"github.com/vk/inetgraph/internal/inet"
	"github.com/vk/inetgraph/internal/parser"
)

// SourceExtension is the file extension searched for in directories.
const SourceExtension = ".inet"

// Document is one unit of notation text.
type Document struct {
	// Name identifies the document in errors and logs, typically its path.
	Name   string
	Source string
}

// Result is the outcome of compiling a Document. It is never mutated after
// Compile returns and may be shared between goroutines.
type Result struct {
	Net    inet.Net
	Graph  *graph.Graph
	Issues []graph.Issue
	// Err holds the parse errors, if any. Net and Graph still describe
	// everything that did parse.
	Err error
}

// OK reports whether the document parsed without errors.
func (r *Result) OK() bool {
	return r.Err == nil
}

// Compile parses and builds doc. Every call uses its own parser state.
func Compile(ctx context.Context, doc Document) *Result {
	logger := ctxlog.FromContext(ctx).With("document", doc.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	net, err := parser.ParseContext(ctx, doc.Source, parser.Options{Filename: doc.Name})
	if err != nil {
		logger.Debug("Document has parse errors.", "count", len(parser.MalformedNodes(err)))
	}

	g := graph.BuildContext(ctx, net)
	issues := graph.Check(g)
	if len(issues) > 0 {
		logger.Debug("Wiring check found issues.", "count", len(issues))
	}

	return &Result{Net: net, Graph: g, Issues: issues, Err: err}
}

// LoadDocuments resolves paths into documents in argument order.
// Directories are searched for SourceExtension files and a file named twice
// is loaded once. The path "-" reads stdin, once no matter how often it is
// given.
func LoadDocuments(ctx context.Context, stdin io.Reader, paths ...string) ([]Document, error) {
	logger := ctxlog.FromContext(ctx)

	var docs []Document
	seen := make(map[string]struct{})
	stdinRead := false
	for _, p := range paths {
		if p == "-" {
			if stdinRead {
				logger.Debug("Skipping repeated stdin path.")
				continue
			}
			stdinRead = true
			src, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			docs = append(docs, Document{Name: "<stdin>", Source: string(src)})
			continue
		}

		files, err := fsutil.ResolvePaths([]string{p}, SourceExtension)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if _, dup := seen[filepath.Clean(f)]; dup {
				continue
			}
			seen[filepath.Clean(f)] = struct{}{}

			src, err := os.ReadFile(f)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", f, err)
			}
			docs = append(docs, Document{Name: f, Source: string(src)})
		}
	}

	logger.Debug("Documents loaded.", "count", len(docs))
	return docs, nil
}
