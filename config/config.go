package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = "arith.cue"

// Overflow modes
const (
	OverflowWrap    = "wrap"
	OverflowChecked = "checked"
)

// Output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MaxWorkers matches the bound in schema.cue.
const MaxWorkers = 64

//go:embed schema.cue
var schema string

// Config is the decoded arith configuration
type Config struct {
	Overflow string `json:"overflow"`
	Format   string `json:"format"`
	Color    string `json:"color"`
	Workers  int    `json:"workers"`
	Template string `json:"template"`
	Jobs     []Job  `json:"jobs"`
}

// Job is a single computation listed in the config
type Job struct {
	Kind   string  `json:"kind"`
	N      *uint32 `json:"n,omitempty"`
	Width  *uint32 `json:"width,omitempty"`
	Height *uint32 `json:"height,omitempty"`
}

// Env holds the environment overrides
type Env struct {
	Overflow string `env:"ARITH_OVERFLOW" env-default:""`
	Format   string `env:"ARITH_FORMAT" env-default:""`
	Color    string `env:"ARITH_COLOR" env-default:""`
	Workers  int    `env:"ARITH_WORKERS" env-default:"0"`
}

// Load unifies the schema with the given files and inline snippets,
// applies environment overrides and validates the result.
//
// A missing DefaultPath is skipped; any other missing file is an error.
func Load(paths []string, inline []string) (*Config, error) {
	ctx := cuecontext.New()

	v := ctx.CompileString(schema, cue.Filename("schema.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if path == DefaultPath && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		file := ctx.CompileBytes(data, cue.Filename(path))
		if err := file.Err(); err != nil {
			return nil, fmt.Errorf("compile %s: %w", path, err)
		}
		v = v.Unify(file)
	}

	for i, src := range inline {
		snippet := ctx.CompileString(src, cue.Filename(fmt.Sprintf("inline-%d.cue", i)))
		if err := snippet.Err(); err != nil {
			return nil, fmt.Errorf("compile inline config %q: %w", src, err)
		}
		v = v.Unify(snippet)
	}

	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyEnv() error {
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	if env.Overflow != "" {
		cfg.Overflow = env.Overflow
	}
	if env.Format != "" {
		cfg.Format = env.Format
	}
	if env.Color != "" {
		cfg.Color = env.Color
	}
	if env.Workers != 0 {
		cfg.Workers = env.Workers
	}
	return nil
}

// Validate checks enumerations and job shapes. It is run by Load and should
// be run again after a caller changes fields.
func (cfg *Config) Validate() error {
	switch cfg.Overflow {
	case OverflowWrap, OverflowChecked:
	default:
		return fmt.Errorf("overflow must be %q or %q, got %q", OverflowWrap, OverflowChecked, cfg.Overflow)
	}
	switch cfg.Format {
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("format must be text, json or markdown, got %q", cfg.Format)
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", cfg.Color)
	}
	if cfg.Workers < 1 || cfg.Workers > MaxWorkers {
		return fmt.Errorf("workers must be in [1, %d], got %d", MaxWorkers, cfg.Workers)
	}
	for i, job := range cfg.Jobs {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("jobs[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks that the job carries the operands its kind needs.
func (job Job) Validate() error {
	switch job.Kind {
	case "factorial":
		if job.N == nil {
			return errors.New("factorial job needs n")
		}
	case "area":
		if job.Width == nil || job.Height == nil {
			return errors.New("area job needs width and height")
		}
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
	return nil
}
