package entities

import "time"

// DelayRecord is the per-shipment delay metric joined with display names.
// It is derived on demand and never stored.
type DelayRecord struct {
	ShipmentID       int64     `json:"shipment_id" yaml:"shipment_id"`
	ProductName      string    `json:"product_name" yaml:"product_name"`
	SupplierName     string    `json:"supplier_name" yaml:"supplier_name"`
	WarehouseName    string    `json:"warehouse_name" yaml:"warehouse_name"`
	OrderDate        time.Time `json:"order_date" yaml:"order_date"`
	DeliveryDate     time.Time `json:"delivery_date" yaml:"delivery_date"`
	PromisedLeadTime int       `json:"promised_lead_time" yaml:"promised_lead_time"`
	ActualLeadTime   int       `json:"actual_lead_time" yaml:"actual_lead_time"`
	DelayDays        int       `json:"delay_days" yaml:"delay_days"`
}

// Late reports whether the shipment arrived after its promised lead time
func (r DelayRecord) Late() bool {
	return r.DelayDays > 0
}

// SevereDelayThreshold is the delay in days above which a delay counts as severe
const SevereDelayThreshold = 5

// Severe reports whether the delay exceeds SevereDelayThreshold
func (r DelayRecord) Severe() bool {
	return r.DelayDays > SevereDelayThreshold
}
