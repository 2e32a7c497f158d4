package main

import (
	"strconv"

	"github.com/zeebo/clingy"
	"go.uber.org/zap"

	"github.com/loov/arith/config"
)

// globalFlags are shared by every command
type globalFlags struct {
	configPaths   []string
	inlineConfigs []string
	overflow      string
	format        string
	color         string
	workers       int
	template      string
	progress      bool
	verbose       bool
}

func (g *globalFlags) Setup(params clingy.Parameters) {
	g.configPaths = params.Flag("config", "path to config file",
		[]string{config.DefaultPath},
		clingy.Repeated,
	).([]string)

	g.inlineConfigs = params.Flag("c", "inline CUE config",
		[]string{},
		clingy.Repeated,
	).([]string)

	g.overflow = params.Flag("overflow", "overflow mode: wrap or checked", "").(string)
	g.format = params.Flag("format", "output format: text, json or markdown", "").(string)
	g.color = params.Flag("color", "colorize text output: auto, always or never", "").(string)
	g.workers = params.Flag("workers", "number of jobs evaluated at once", 0,
		clingy.Transform(strconv.Atoi),
	).(int)
	g.template = params.Flag("template", "text template file for text output", "").(string)

	g.progress = params.Flag("progress", "print progress to stderr", false,
		clingy.Boolean,
	).(bool)
	g.verbose = params.Flag("verbose", "enable debug logging", false,
		clingy.Boolean,
	).(bool)
}

// loadConfig reads the config files and applies command line overrides.
func (g *globalFlags) loadConfig() (*config.Config, error) {
	// workaround for clingy bug
	if len(g.configPaths) == 0 {
		g.configPaths = []string{config.DefaultPath}
	}

	cfg, err := config.Load(g.configPaths, g.inlineConfigs)
	if err != nil {
		return nil, err
	}

	if g.overflow != "" {
		cfg.Overflow = g.overflow
	}
	if g.format != "" {
		cfg.Format = g.format
	}
	if g.color != "" {
		cfg.Color = g.color
	}
	if g.workers != 0 {
		cfg.Workers = g.workers
	}
	if g.template != "" {
		cfg.Template = g.template
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (g *globalFlags) logger() (*zap.Logger, error) {
	if !g.verbose {
		return zap.NewNop(), nil
	}
	logCfg := zap.NewDevelopmentConfig()
	logCfg.OutputPaths = []string{"stderr"}
	return logCfg.Build()
}
