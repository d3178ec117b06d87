package output

import (
	"strconv"

	"github.com/vsinha/supplychain/pkg/application/dto"
	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// table is one report flattened to string cells
type table struct {
	Name    string
	Title   string
	Header  []string
	Rows    [][]string
	Numeric []bool
}

// reportTables flattens the four reports in display order
func reportTables(result *dto.AnalysisResult) []table {
	suppliers := table{
		Name:    "suppliers",
		Title:   "Top 5 Suppliers with Highest Average Delays",
		Header:  []string{"supplier_name", "total_shipments", "delayed_count", "avg_delay"},
		Numeric: []bool{false, true, true, true},
	}
	for _, r := range result.SupplierRanking {
		suppliers.Rows = append(suppliers.Rows, []string{
			r.SupplierName, strconv.Itoa(r.TotalShipments), strconv.Itoa(r.DelayedCount), r.AvgDelay.StringFixed(2),
		})
	}

	warehouses := table{
		Name:    "warehouses",
		Title:   "Warehouse Performance Ranking",
		Header:  []string{"warehouse_name", "volume", "avg_delay", "rank"},
		Numeric: []bool{false, true, true, true},
	}
	for _, r := range result.WarehouseRanking {
		warehouses.Rows = append(warehouses.Rows, []string{
			r.WarehouseName, strconv.Itoa(r.Volume), r.AvgDelay.StringFixed(2), strconv.Itoa(r.Rank),
		})
	}

	products := table{
		Name:    "products",
		Title:   "Products Most Affected by Delays",
		Header:  []string{"product_name", "avg_delay", "severe_delays"},
		Numeric: []bool{false, true, true},
	}
	for _, r := range result.ProductImpact {
		products.Rows = append(products.Rows, []string{
			r.ProductName, r.AvgDelay.StringFixed(2), strconv.Itoa(r.SevereDelays),
		})
	}

	trend := table{
		Name:    "trend",
		Title:   "Recent Delivery Delay Trends (Rolling Avg of 5)",
		Header:  []string{"series", "shipment_id", "order_date", "delay_days", "rolling_avg"},
		Numeric: []bool{false, true, false, true, true},
	}
	for _, r := range result.RollingTrend {
		trend.Rows = append(trend.Rows, []string{
			r.Series,
			strconv.FormatInt(r.ShipmentID, 10),
			r.OrderDate.Format(entities.DateLayout),
			strconv.Itoa(r.DelayDays),
			r.RollingAvg.StringFixed(2),
		})
	}

	return []table{suppliers, warehouses, products, trend}
}
