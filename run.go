package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/zeebo/clingy"

	"github.com/loov/arith/config"
	"github.com/loov/arith/eval"
	"github.com/loov/arith/report"
)

func run(ctx context.Context, flags *globalFlags, cfg *config.Config, jobs []eval.Job) error {
	log, err := flags.logger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	stdout, stderr := clingy.Stdout(ctx), clingy.Stderr(ctx)

	pipeline := eval.NewPipeline(cfg, log)
	if flags.progress {
		pipeline.OnProgress(func(event eval.ProgressEvent) {
			fmt.Fprintf(stderr, "[%d/%d] %s(%s) %s\n",
				event.Done, event.Total, event.Result.Kind, event.Result.Input, event.Result.Status())
		})
	}

	r, err := pipeline.Run(ctx, jobs)
	if err != nil {
		return err
	}

	if err := writeReport(stdout, cfg, r); err != nil {
		return err
	}

	if failed := r.CountFailed(); failed > 0 {
		return fmt.Errorf("%d of %d job(s) failed", failed, len(r.Results))
	}
	return nil
}

func writeReport(w io.Writer, cfg *config.Config, r *report.Report) error {
	switch cfg.Format {
	case config.FormatJSON:
		return report.WriteJSON(w, r)
	case config.FormatMarkdown:
		_, err := io.WriteString(w, report.WriteMarkdown(r))
		return err
	default:
		tmpl, err := report.LoadTemplate(cfg.Template)
		if err != nil {
			return err
		}
		return report.ExecuteTemplate(w, tmpl, r, useColor(cfg.Color, w))
	}
}

// useColor decides whether text output to w should be colorized.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
