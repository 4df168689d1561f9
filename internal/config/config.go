package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/inetgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// File is the decoded settings file. Nil fields were not set.
type File struct {
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`

	Render *Render `hcl:"render,block"`
	Serve  *Serve  `hcl:"serve,block"`
}

// Render holds the output settings.
type Render struct {
	Format     *string `hcl:"format,optional"`
	ShowLabels *bool   `hcl:"show_labels,optional"`
	Strict     *bool   `hcl:"strict,optional"`
}

// Serve holds the live server settings.
type Serve struct {
	Port      *int `hcl:"port,optional"`
	CacheSize *int `hcl:"cache_size,optional"`
}

// Load reads and decodes the settings file at path.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	f, err := Decode(src, path, os.Environ())
	if err != nil {
		return nil, err
	}
	logger.Debug("Settings file loaded.", "path", path)
	return f, nil
}

// Decode parses src as HCL. environ, in os.Environ form, is exposed to
// expressions as the env object.
func Decode(src []byte, filename string, environ []string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}

	var f File
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(environ), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", filename, diags)
	}
	return &f, nil
}

func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
