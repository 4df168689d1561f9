package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/vk/inetgraph/internal/app"
	"github.com/vk/inetgraph/internal/config"
	"github.com/vk/inetgraph/internal/ctxlog"
	"github.com/vk/inetgraph/internal/engine"
)

// Exit codes returned through ExitError.
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitCheckFailed = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Values from the --config settings file apply wherever the matching flag was
// not given.
func Parse(ctx context.Context, args []string, output io.Writer) (*app.Config, bool, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("inetgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
inetgraph - Parse interaction-net notation and draw the wiring graph.

Usage:
  inetgraph [options] [PATH...]

Arguments:
  PATH
    A notation file, or a directory searched for *`+engine.SourceExtension+` files.
    "-" or no path at all reads stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "text", "Output format. Options: 'text', 'json', 'yaml' or 'dot'.")
	showLabelsFlag := flagSet.Bool("show-labels", false, "Print explicit labels on edges.")
	strictFlag := flagSet.Bool("strict", false, "Fail with exit code 3 when a label does not occupy exactly two ports.")
	serveFlag := flagSet.Bool("serve", false, "Run the live editor server instead of rendering files.")
	portFlag := flagSet.Int("port", 8080, "Port for the live editor server.")
	cacheSizeFlag := flagSet.Int("cache-size", engine.DefaultCacheSize, "Number of compiled documents kept in memory.")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	logger.Debug("Arguments parsed successfully.")

	cfg := app.Config{
		Paths:      flagSet.Args(),
		Format:     *formatFlag,
		ShowLabels: *showLabelsFlag,
		Strict:     *strictFlag,
		Serve:      *serveFlag,
		Port:       *portFlag,
		CacheSize:  *cacheSizeFlag,
		LogFormat:  *logFormatFlag,
		LogLevel:   *logLevelFlag,
	}

	if *configFlag != "" {
		file, err := config.Load(ctx, *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		set := make(map[string]bool)
		flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
		applyFile(&cfg, file, set)
		logger.Debug("Settings file merged.", "path", *configFlag)
	}

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	logger.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// applyFile copies settings into cfg unless the flag named after them was
// given on the command line.
func applyFile(cfg *app.Config, f *config.File, set map[string]bool) {
	assign(&cfg.LogLevel, f.LogLevel, set["log-level"])
	assign(&cfg.LogFormat, f.LogFormat, set["log-format"])
	if r := f.Render; r != nil {
		assign(&cfg.Format, r.Format, set["format"])
		assign(&cfg.ShowLabels, r.ShowLabels, set["show-labels"])
		assign(&cfg.Strict, r.Strict, set["strict"])
	}
	if s := f.Serve; s != nil {
		assign(&cfg.Port, s.Port, set["port"])
		assign(&cfg.CacheSize, s.CacheSize, set["cache-size"])
	}
}

func assign[T any](dst *T, v *T, overridden bool) {
	if v != nil && !overridden {
		*dst = *v
	}
}
