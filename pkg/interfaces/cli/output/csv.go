package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vsinha/supplychain/pkg/application/dto"
)

// generateCSVOutput writes one CSV file per report
func generateCSVOutput(result *dto.AnalysisResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, t := range reportTables(result) {
		filename := filepath.Join(config.OutputDir, t.Name+".csv")
		if err := writeCSV(filename, t); err != nil {
			return fmt.Errorf("failed to write %s CSV: %w", t.Name, err)
		}
		written = append(written, filename)
	}

	if config.IncludeWarnings && len(result.Warnings) > 0 {
		filename := filepath.Join(config.OutputDir, "warnings.csv")
		warnings := table{Header: []string{"warning"}}
		for _, msg := range result.WarningMessages() {
			warnings.Rows = append(warnings.Rows, []string{msg})
		}
		if err := writeCSV(filename, warnings); err != nil {
			return fmt.Errorf("failed to write warnings CSV: %w", err)
		}
		written = append(written, filename)
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 CSV results saved to:\n")
		for _, f := range written {
			fmt.Fprintf(config.writer(), "  %s\n", f)
		}
	}

	return nil
}

func writeCSV(filename string, t table) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Header); err != nil {
		return err
	}
	return writer.WriteAll(t.Rows)
}
