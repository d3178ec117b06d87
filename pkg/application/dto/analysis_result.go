package dto

// AnalysisResult contains the complete output of a delay analysis run
type AnalysisResult struct {
	SupplierRanking  []SupplierRankingRow  `json:"supplier_ranking" yaml:"supplier_ranking"`
	WarehouseRanking []WarehouseRankingRow `json:"warehouse_ranking" yaml:"warehouse_ranking"`
	ProductImpact    []ProductImpactRow    `json:"product_impact" yaml:"product_impact"`
	RollingTrend     []TrendRow            `json:"rolling_trend" yaml:"rolling_trend"`

	// Analyzed is the number of delay records that reached the reports
	Analyzed  int `json:"analyzed" yaml:"analyzed"`
	InTransit int `json:"in_transit" yaml:"in_transit"`

	// Warnings holds recovered problems such as out-of-order dates
	Warnings []error `json:"-" yaml:"-"`
}

// WarningMessages returns the warnings as strings for rendering
func (r *AnalysisResult) WarningMessages() []string {
	out := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		out = append(out, w.Error())
	}
	return out
}
