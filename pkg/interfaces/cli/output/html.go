package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/vsinha/supplychain/pkg/application/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateData contains all data for rendering the HTML report
type TemplateData struct {
	Title       string
	Analyzed    int
	InTransit   int
	GeneratedAt string
	Tables      []table
	Chart       template.HTML
	Warnings    []string
}

// now is replaced in tests
var now = time.Now

// GenerateHTML renders the report page
func GenerateHTML(result *dto.AnalysisResult, config Config) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	data := TemplateData{
		Title:       "Supply Chain Bottleneck Analysis",
		Analyzed:    result.Analyzed,
		InTransit:   result.InTransit,
		GeneratedAt: now().Format(time.RFC3339),
		Tables:      reportTables(result),
		// the chart is built from numbers and escaped labels only
		Chart: template.HTML(NewTrendChart(result.RollingTrend).GenerateSVG()),
	}
	if config.IncludeWarnings {
		data.Warnings = result.WarningMessages()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

// generateHTMLOutput creates the HTML report file
func generateHTMLOutput(result *dto.AnalysisResult, config Config) error {
	if config.Verbose {
		fmt.Fprintf(config.writer(), "  🔄 Rendering HTML report...\n")
	}

	html, err := GenerateHTML(result, config)
	if err != nil {
		return err
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "  📝 Generated HTML document (%d bytes)\n", len(html))
	}
	return save(html, "delay_report.html", config)
}
