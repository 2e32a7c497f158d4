package report

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/fatih/color"
)

//go:embed default.tmpl
var defaultTemplate string

// LoadTemplate loads a text template from a file. An empty path returns the
// built-in template.
func LoadTemplate(path string) (*template.Template, error) {
	if path == "" {
		return parseTemplate("default", defaultTemplate)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	return parseTemplate(path, string(data))
}

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(colorFuncs(false)).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl, nil
}

// ExecuteTemplate renders the report through tmpl. When colored is set the
// ok, warn and fail template functions emit ANSI colors.
func ExecuteTemplate(w io.Writer, tmpl *template.Template, r *Report, colored bool) error {
	if tmpl == nil {
		return errors.New("template is nil")
	}

	tmpl, err := tmpl.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone template: %w", err)
	}
	tmpl.Funcs(colorFuncs(colored))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func colorFuncs(enabled bool) template.FuncMap {
	paint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return template.FuncMap{
		"ok":   paint(color.FgGreen),
		"warn": paint(color.FgYellow),
		"fail": paint(color.FgRed, color.Bold),
	}
}
