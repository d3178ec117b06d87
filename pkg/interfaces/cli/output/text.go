package output

import (
	"fmt"
	"strings"

	"github.com/vsinha/supplychain/pkg/application/dto"
	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// generateTextOutput prints the four reports as fixed width tables
func generateTextOutput(result *dto.AnalysisResult, config Config) error {
	w := config.writer()

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "SUPPLY CHAIN BOTTLENECK ANALYSIS\n")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "Analyzed shipments: %d (in transit: %d)\n", result.Analyzed, result.InTransit)

	fmt.Fprintf(w, "\n[1] Top 5 Suppliers with Highest Average Delays:\n")
	fmt.Fprintf(w, "%-25s | %-6s | %-8s | %-9s\n", "Supplier", "Total", "Delayed", "Avg Delay")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, r := range result.SupplierRanking {
		fmt.Fprintf(w, "%-25s | %-6d | %-8d | %-9s\n",
			r.SupplierName, r.TotalShipments, r.DelayedCount, r.AvgDelay.StringFixed(2))
	}

	fmt.Fprintf(w, "\n[2] Warehouse Performance Ranking:\n")
	fmt.Fprintf(w, "%-35s | %-6s | %-9s | %s\n", "Warehouse", "Volume", "Avg Delay", "Rank")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, r := range result.WarehouseRanking {
		fmt.Fprintf(w, "%-35s | %-6d | %-9s | %d\n",
			r.WarehouseName, r.Volume, r.AvgDelay.StringFixed(2), r.Rank)
	}

	fmt.Fprintf(w, "\n[3] Products Most Affected by Delays:\n")
	fmt.Fprintf(w, "%-25s | %-9s | %s\n", "Product", "Avg Delay", "Severe Delays")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, r := range result.ProductImpact {
		fmt.Fprintf(w, "%-25s | %-9s | %d\n", r.ProductName, r.AvgDelay.StringFixed(2), r.SevereDelays)
	}

	fmt.Fprintf(w, "\n[4] Recent Delivery Delay Trends (Rolling Avg of 5):\n")
	perSeries := len(result.RollingTrend) > 0 && result.RollingTrend[0].Series != ""
	if perSeries {
		fmt.Fprintf(w, "%-25s | %-12s | %-6s | %s\n", "Supplier", "Order Date", "Delay", "Rolling Avg")
		fmt.Fprintln(w, strings.Repeat("-", 63))
	} else {
		fmt.Fprintf(w, "%-12s | %-6s | %s\n", "Order Date", "Delay", "Rolling Avg")
		fmt.Fprintln(w, strings.Repeat("-", 35))
	}
	for _, r := range result.RollingTrend {
		if perSeries {
			fmt.Fprintf(w, "%-25s | ", r.Series)
		}
		fmt.Fprintf(w, "%-12s | %-6d | %s\n",
			r.OrderDate.Format(entities.DateLayout), r.DelayDays, r.RollingAvg.StringFixed(2))
	}

	if config.IncludeWarnings && len(result.Warnings) > 0 {
		fmt.Fprintf(w, "\n⚠️  Warnings:\n")
		for _, msg := range result.WarningMessages() {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}

	return nil
}
