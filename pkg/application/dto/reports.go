package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRankingRow is one supplier in the delay ranking
type SupplierRankingRow struct {
	SupplierName   string          `json:"supplier_name" yaml:"supplier_name"`
	TotalShipments int             `json:"total_shipments" yaml:"total_shipments"`
	DelayedCount   int             `json:"delayed_count" yaml:"delayed_count"`
	AvgDelay       decimal.Decimal `json:"avg_delay" yaml:"avg_delay"`
}

// WarehouseRankingRow is one warehouse with its rank by average delay
type WarehouseRankingRow struct {
	WarehouseName string          `json:"warehouse_name" yaml:"warehouse_name"`
	Volume        int             `json:"volume" yaml:"volume"`
	AvgDelay      decimal.Decimal `json:"avg_delay" yaml:"avg_delay"`
	Rank          int             `json:"rank" yaml:"rank"`
}

// ProductImpactRow is one product with its average and severe delays
type ProductImpactRow struct {
	ProductName  string          `json:"product_name" yaml:"product_name"`
	AvgDelay     decimal.Decimal `json:"avg_delay" yaml:"avg_delay"`
	SevereDelays int             `json:"severe_delays" yaml:"severe_delays"`
}

// TrendRow is one shipment in the rolling delay trend
type TrendRow struct {
	ShipmentID int64           `json:"shipment_id" yaml:"shipment_id"`
	Series     string          `json:"series,omitempty" yaml:"series,omitempty"`
	OrderDate  time.Time       `json:"order_date" yaml:"order_date"`
	DelayDays  int             `json:"delay_days" yaml:"delay_days"`
	RollingAvg decimal.Decimal `json:"rolling_avg" yaml:"rolling_avg"`
}
