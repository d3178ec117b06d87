package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/supplychain/pkg/application/dto"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatHTML = "html"
)

// Config holds configuration for output generation
type Config struct {
	Format          string
	OutputDir       string
	Verbose         bool
	IncludeWarnings bool
	// Writer receives stdout output, os.Stdout when nil
	Writer io.Writer
}

func (c Config) writer() io.Writer {
	if c.Writer == nil {
		return os.Stdout
	}
	return c.Writer
}

// Generate creates output in the specified format
func Generate(result *dto.AnalysisResult, config Config) error {
	switch config.Format {
	case FormatText:
		return generateTextOutput(result, config)
	case FormatJSON:
		return generateJSONOutput(result, config)
	case FormatYAML:
		return generateYAMLOutput(result, config)
	case FormatCSV:
		return generateCSVOutput(result, config)
	case FormatXLSX:
		return generateXLSXOutput(result, config)
	case FormatHTML:
		return generateHTMLOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// document is the serialized form of a result, with warnings as strings
type document struct {
	dto.AnalysisResult `yaml:",inline"`
	Warnings           []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func newDocument(result *dto.AnalysisResult, config Config) document {
	doc := document{AnalysisResult: *result}
	if config.IncludeWarnings {
		doc.Warnings = result.WarningMessages()
	}
	return doc
}

// save writes data to OutputDir/name, or to the writer when no directory is set
func save(data []byte, name string, config Config) error {
	if config.OutputDir == "" {
		_, err := config.writer().Write(data)
		return err
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 Results saved to: %s\n", filename)
	}
	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.AnalysisResult, config Config) error {
	jsonData, err := json.MarshalIndent(newDocument(result, config), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return save(append(jsonData, '\n'), "delay_report.json", config)
}

// generateYAMLOutput creates YAML output
func generateYAMLOutput(result *dto.AnalysisResult, config Config) error {
	yamlData, err := yaml.Marshal(newDocument(result, config))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return save(yamlData, "delay_report.yaml", config)
}
