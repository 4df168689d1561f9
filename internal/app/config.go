package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their flag name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Paths are source files or directories; "-" is stdin.
	Paths []string

	Format     string `flag:"format" validate:"oneof=text json yaml dot"`
	ShowLabels bool
	// Strict turns wiring issues into a failed run.
	Strict bool

	Serve     bool
	Port      int `flag:"port" validate:"min=0,max=65535"`
	CacheSize int `flag:"cache-size" validate:"min=1"`

	LogFormat string `flag:"log-format" validate:"oneof=text json"`
	LogLevel  string `flag:"log-level" validate:"oneof=debug info warn error"`
}

// NewConfig validates cfg. Enumerated values are matched case-insensitively.
// With no paths and no server, the document is read from stdin.
func NewConfig(cfg Config) (*Config, error) {
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.Struct(cfg); err != nil {
		return nil, formatValidationError(err)
	}
	if cfg.Serve && len(cfg.Paths) > 0 {
		return nil, errors.New("source paths cannot be combined with serve mode")
	}
	if !cfg.Serve && len(cfg.Paths) == 0 {
		cfg.Paths = []string{"-"}
	}
	return &cfg, nil
}

// formatValidationError reports the first failed field in flag terms.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	for _, e := range validationErrs {
		field, param := e.Field(), e.Param()
		switch e.Tag() {
		case "oneof":
			return fmt.Errorf("invalid %s %q: must be one of: %s", field, e.Value(), strings.ReplaceAll(param, " ", ", "))
		case "min":
			return fmt.Errorf("invalid %s %v: must be at least %s", field, e.Value(), param)
		case "max":
			return fmt.Errorf("invalid %s %v: must not exceed %s", field, e.Value(), param)
		default:
			return fmt.Errorf("invalid %s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}
