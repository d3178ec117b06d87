package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/supplychain/pkg/application/dto"
)

// XLSXFile is the workbook name written by the xlsx format
const XLSXFile = "delay_report.xlsx"

var sheetNames = map[string]string{
	"suppliers":  "Suppliers",
	"warehouses": "Warehouses",
	"products":   "Products",
	"trend":      "Trend",
}

// generateXLSXOutput writes one workbook with a sheet per report
func generateXLSXOutput(result *dto.AnalysisResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for xlsx format")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := buildWorkbook(result, config)
	if err != nil {
		return err
	}
	defer f.Close()

	filename := filepath.Join(config.OutputDir, XLSXFile)
	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 Workbook saved to: %s\n", filename)
	}
	return nil
}

func buildWorkbook(result *dto.AnalysisResult, config Config) (*excelize.File, error) {
	f := excelize.NewFile()

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	tables := reportTables(result)
	if config.IncludeWarnings && len(result.Warnings) > 0 {
		warnings := table{Name: "warnings", Header: []string{"warning"}, Numeric: []bool{false}}
		for _, msg := range result.WarningMessages() {
			warnings.Rows = append(warnings.Rows, []string{msg})
		}
		tables = append(tables, warnings)
	}

	for i, t := range tables {
		sheet, ok := sheetNames[t.Name]
		if !ok {
			sheet = "Warnings"
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, t, boldStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write sheet %s: %w", sheet, err)
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, t table, headerStyle int) error {
	for i, h := range t.Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, float64(max(len(h)+4, 14))); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, cellValue(value, t.Numeric[c])); err != nil {
				return err
			}
		}
	}
	return nil
}

// cellValue stores numeric columns as numbers so the sheet can sort and chart them
func cellValue(value string, numeric bool) any {
	if !numeric {
		return value
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
