package analytics

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/vsinha/supplychain/pkg/application/dto"
	"github.com/vsinha/supplychain/pkg/domain/entities"
)

const (
	// SupplierRankingLimit is the number of suppliers in the delay ranking
	SupplierRankingLimit = 5
	// ProductImpactLimit is the number of products in the impact report
	ProductImpactLimit = 3
	// TrendWindow is the number of records in the trailing rolling window
	TrendWindow = 5
	// TrendLimit is the number of most recent trend rows returned
	TrendLimit = 10
)

// group accumulates delay statistics for one name
type group struct {
	name    string
	count   int
	sum     int64
	delayed int
	severe  int
}

// mean returns the average delay rounded half away from zero to 2 places
func (g *group) mean() decimal.Decimal {
	return decimal.NewFromInt(g.sum).DivRound(decimal.NewFromInt(int64(g.count)), 2)
}

// groupBy reduces records into one group per key. Groups are returned in
// name order so later sorts start from a deterministic sequence.
func groupBy(records []entities.DelayRecord, key func(entities.DelayRecord) string) []*group {
	index := make(map[string]*group)
	for _, r := range records {
		k := key(r)
		g, ok := index[k]
		if !ok {
			g = &group{name: k}
			index[k] = g
		}
		g.count++
		g.sum += int64(r.DelayDays)
		if r.Late() {
			g.delayed++
		}
		if r.Severe() {
			g.severe++
		}
	}

	groups := make([]*group, 0, len(index))
	for _, g := range index {
		groups = append(groups, g)
	}
	slices.SortFunc(groups, func(a, b *group) int { return cmp.Compare(a.name, b.name) })
	return groups
}

// byMeanDesc orders by rounded mean descending, then name ascending
func byMeanDesc(aMean decimal.Decimal, aName string, bMean decimal.Decimal, bName string) int {
	if c := bMean.Cmp(aMean); c != 0 {
		return c
	}
	return cmp.Compare(aName, bName)
}

// SupplierRanking returns the suppliers with the highest average delay
func SupplierRanking(records []entities.DelayRecord) []dto.SupplierRankingRow {
	groups := groupBy(records, func(r entities.DelayRecord) string { return r.SupplierName })

	rows := make([]dto.SupplierRankingRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, dto.SupplierRankingRow{
			SupplierName:   g.name,
			TotalShipments: g.count,
			DelayedCount:   g.delayed,
			AvgDelay:       g.mean(),
		})
	}
	slices.SortStableFunc(rows, func(a, b dto.SupplierRankingRow) int {
		return byMeanDesc(a.AvgDelay, a.SupplierName, b.AvgDelay, b.SupplierName)
	})

	if len(rows) > SupplierRankingLimit {
		rows = rows[:SupplierRankingLimit]
	}
	return rows
}

// WarehouseRanking returns every warehouse ranked by average delay. Rank is
// one plus the number of warehouses with a strictly greater average, so ties
// share a rank and the next rank is skipped.
func WarehouseRanking(records []entities.DelayRecord) []dto.WarehouseRankingRow {
	groups := groupBy(records, func(r entities.DelayRecord) string { return r.WarehouseName })

	rows := make([]dto.WarehouseRankingRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, dto.WarehouseRankingRow{
			WarehouseName: g.name,
			Volume:        g.count,
			AvgDelay:      g.mean(),
		})
	}
	slices.SortStableFunc(rows, func(a, b dto.WarehouseRankingRow) int {
		return byMeanDesc(a.AvgDelay, a.WarehouseName, b.AvgDelay, b.WarehouseName)
	})

	for i := range rows {
		if i > 0 && rows[i].AvgDelay.Equal(rows[i-1].AvgDelay) {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
	}
	return rows
}

// ProductImpact returns the products with the highest average delay along with
// their count of severe delays
func ProductImpact(records []entities.DelayRecord) []dto.ProductImpactRow {
	groups := groupBy(records, func(r entities.DelayRecord) string { return r.ProductName })

	rows := make([]dto.ProductImpactRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, dto.ProductImpactRow{
			ProductName:  g.name,
			AvgDelay:     g.mean(),
			SevereDelays: g.severe,
		})
	}
	slices.SortStableFunc(rows, func(a, b dto.ProductImpactRow) int {
		return byMeanDesc(a.AvgDelay, a.ProductName, b.AvgDelay, b.ProductName)
	})

	if len(rows) > ProductImpactLimit {
		rows = rows[:ProductImpactLimit]
	}
	return rows
}

// RollingTrend returns the most recent shipments with a trailing average of
// delay over all shipments ordered by date
func RollingTrend(records []entities.DelayRecord) []dto.TrendRow {
	rows := rollingSeries(records, "")
	return latest(rows, TrendLimit)
}

// RollingTrendBy computes a separate rolling series per key and returns the
// most recent rows of each series, series in name order
func RollingTrendBy(records []entities.DelayRecord, key func(entities.DelayRecord) string) []dto.TrendRow {
	series := make(map[string][]entities.DelayRecord)
	var names []string
	for _, r := range records {
		k := key(r)
		if _, ok := series[k]; !ok {
			names = append(names, k)
		}
		series[k] = append(series[k], r)
	}
	slices.Sort(names)

	out := make([]dto.TrendRow, 0)
	for _, name := range names {
		out = append(out, latest(rollingSeries(series[name], name), TrendLimit)...)
	}
	return out
}

// rollingSeries sorts records by order date and shipment id and computes the
// trailing mean over up to TrendWindow records ending at each position
func rollingSeries(records []entities.DelayRecord, name string) []dto.TrendRow {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, func(a, b entities.DelayRecord) int {
		if c := a.OrderDate.Compare(b.OrderDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ShipmentID, b.ShipmentID)
	})

	rows := make([]dto.TrendRow, 0, len(sorted))
	var windowSum int64
	for i, r := range sorted {
		windowSum += int64(r.DelayDays)
		if i >= TrendWindow {
			windowSum -= int64(sorted[i-TrendWindow].DelayDays)
		}
		size := min(i+1, TrendWindow)

		rows = append(rows, dto.TrendRow{
			ShipmentID: r.ShipmentID,
			Series:     name,
			OrderDate:  r.OrderDate,
			DelayDays:  r.DelayDays,
			RollingAvg: decimal.NewFromInt(windowSum).DivRound(decimal.NewFromInt(int64(size)), 2),
		})
	}
	return rows
}

// latest reverses an ascending series and keeps the first n rows
func latest(rows []dto.TrendRow, n int) []dto.TrendRow {
	slices.Reverse(rows)
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
