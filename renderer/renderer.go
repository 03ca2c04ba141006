package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// ValuationRenderOptions holds configuration for rendering a valuation report.
type ValuationRenderOptions struct {
	SkipSummary bool // Do not render the summary section.
}

// RenderValuation renders a valuation report to a markdown string.
func RenderValuation(v *Valuation, opts ValuationRenderOptions) string {
	partials := map[string]string{
		"valuation_title":     "valuation_title.md",
		"valuation_positions": "valuation_positions.md",
	}
	// An empty file name results in an empty template.
	if !opts.SkipSummary {
		partials["valuation_summary"] = "valuation_summary.md"
	} else {
		partials["valuation_summary"] = ""
	}
	return renderTemplate("valuation", "valuation.md", partials, v)
}

// RenderAlerts renders the evaluation of price alerts to a markdown string.
func RenderAlerts(a *Alerts) string {
	partials := map[string]string{
		"alerts_triggered": "alerts_triggered.md",
		"alerts_watching":  "alerts_watching.md",
	}
	return renderTemplate("alerts", "alerts.md", partials, a)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
