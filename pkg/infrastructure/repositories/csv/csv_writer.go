package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// Writer writes a dataset as four CSV files readable by Loader
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDataset writes every table of the dataset into dir, creating it if needed
func (w *Writer) WriteDataset(dir string, ds *entities.Dataset) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	suppliers := make([][]string, 0, len(ds.Suppliers))
	for _, s := range ds.Suppliers {
		suppliers = append(suppliers, []string{
			strconv.FormatInt(s.ID, 10), s.Name, s.Location, strconv.Itoa(s.LeadTimeDays),
		})
	}
	if err := writeTable(filepath.Join(dir, SuppliersFile), supplierHeader, suppliers); err != nil {
		return err
	}

	products := make([][]string, 0, len(ds.Products))
	for _, p := range ds.Products {
		products = append(products, []string{strconv.FormatInt(p.ID, 10), p.Name, p.Category})
	}
	if err := writeTable(filepath.Join(dir, ProductsFile), productHeader, products); err != nil {
		return err
	}

	warehouses := make([][]string, 0, len(ds.Warehouses))
	for _, wh := range ds.Warehouses {
		warehouses = append(warehouses, []string{strconv.FormatInt(wh.ID, 10), wh.Name, wh.Location})
	}
	if err := writeTable(filepath.Join(dir, WarehousesFile), warehouseHeader, warehouses); err != nil {
		return err
	}

	shipments := make([][]string, 0, len(ds.Shipments))
	for _, s := range ds.Shipments {
		delivery := ""
		if s.DeliveryDate != nil {
			delivery = s.DeliveryDate.Format(entities.DateLayout)
		}
		shipments = append(shipments, []string{
			strconv.FormatInt(s.ID, 10),
			strconv.FormatInt(s.ProductID, 10),
			strconv.FormatInt(s.SupplierID, 10),
			strconv.FormatInt(s.WarehouseID, 10),
			strconv.Itoa(s.Quantity),
			s.OrderDate.Format(entities.DateLayout),
			delivery,
		})
	}
	return writeTable(filepath.Join(dir, ShipmentsFile), shipmentHeader, shipments)
}

func writeTable(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", filename, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
