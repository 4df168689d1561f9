package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/inetgraph/internal/engine"
	"github.com/vk/inetgraph/internal/metrics"
	"github.com/vk/inetgraph/internal/parser"
	"github.com/vk/inetgraph/internal/render"
	"github.com/vk/inetgraph/internal/server"
)

// ErrCheckFailed marks a document whose wiring check found issues while
// running in strict mode.
var ErrCheckFailed = errors.New("wiring check failed")

// Run executes the main application logic based on the provided configuration.
// In serve mode it blocks until ctx is cancelled. Otherwise every document is
// compiled and rendered, even after another one failed; the returned error
// joins every failure. Strict check failures are only returned when nothing
// else failed.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	if a.config.Serve {
		return a.serve(ctx)
	}

	docs, err := engine.LoadDocuments(ctx, a.inR, a.config.Paths...)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}
	if len(docs) == 0 {
		a.logger.Warn("No documents found.", "paths", a.config.Paths)
		return nil
	}

	format, err := render.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}

	var failures, checkFailures []error
	for i, doc := range docs {
		logger := a.logger.With("document", doc.Name)

		start := time.Now()
		res, hit := a.cache.Compile(ctx, doc)
		a.metrics.RecordCompile(metrics.CompileStatus(res.OK(), len(res.Issues)), hit, time.Since(start), len(res.Graph.Nodes), len(res.Graph.Edges))

		if res.Err != nil {
			logger.Error("Document has malformed nodes.", "error", res.Err)
			a.writeDiagnostics(doc, res.Err)
			failures = append(failures, res.Err)
		}
		for _, issue := range res.Issues {
			logger.Warn("Wiring issue.", "issue", issue.Error())
			if a.config.Strict {
				checkFailures = append(checkFailures, fmt.Errorf("%s: %w: %w", doc.Name, ErrCheckFailed, issue))
			}
		}

		if i > 0 && format == render.FormatYAML {
			if _, err := io.WriteString(a.outW, "---\n"); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		opts := render.Options{ShowLabels: a.config.ShowLabels, Name: doc.Name}
		if err := render.Render(a.outW, res.Graph, format, opts); err != nil {
			return fmt.Errorf("failed to render %s: %w", doc.Name, err)
		}
		logger.Debug("Document rendered.", "nodes", len(res.Graph.Nodes), "edges", len(res.Graph.Edges))
	}

	a.logger.Debug("App.Run method finished.", "documents", len(docs), "failed", len(failures))
	if len(failures) > 0 {
		return errors.Join(failures...)
	}
	return errors.Join(checkFailures...)
}

// writeDiagnostics prints the malformed nodes of doc with source snippets.
func (a *App) writeDiagnostics(doc engine.Document, err error) {
	files := map[string]*hcl.File{doc.Name: {Bytes: []byte(doc.Source)}}
	wr := hcl.NewDiagnosticTextWriter(a.errW, files, 0, false)
	if werr := wr.WriteDiagnostics(parser.Diagnostics(err)); werr != nil {
		a.logger.Warn("Failed to write diagnostics.", "error", werr)
	}
}

func (a *App) serve(ctx context.Context) error {
	srv := server.New(ctx, server.Options{
		Addr:       fmt.Sprintf(":%d", a.config.Port),
		ShowLabels: a.config.ShowLabels,
	}, a.cache, a.metrics)
	return srv.ListenAndServe(ctx)
}
