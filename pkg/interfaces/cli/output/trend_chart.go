package output

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/vsinha/supplychain/pkg/application/dto"
	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// TrendChart draws delay bars with the rolling average as a line
type TrendChart struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int

	rows     []dto.TrendRow
	minValue float64
	maxValue float64
}

// NewTrendChart lays out a chart for the trend rows in chronological order
func NewTrendChart(rows []dto.TrendRow) *TrendChart {
	ordered := slices.Clone(rows)
	slices.Reverse(ordered)

	tc := &TrendChart{
		Width:        800,
		Height:       300,
		MarginLeft:   50,
		MarginTop:    30,
		MarginRight:  20,
		MarginBottom: 60,
		rows:         ordered,
	}

	for _, r := range ordered {
		avg := r.RollingAvg.InexactFloat64()
		tc.minValue = min(tc.minValue, float64(r.DelayDays), avg)
		tc.maxValue = max(tc.maxValue, float64(r.DelayDays), avg)
	}
	if tc.maxValue == tc.minValue {
		tc.maxValue = tc.minValue + 1
	}
	return tc
}

func (tc *TrendChart) plotWidth() int  { return tc.Width - tc.MarginLeft - tc.MarginRight }
func (tc *TrendChart) plotHeight() int { return tc.Height - tc.MarginTop - tc.MarginBottom }

// y maps a value onto the vertical axis
func (tc *TrendChart) y(v float64) float64 {
	ratio := (v - tc.minValue) / (tc.maxValue - tc.minValue)
	return float64(tc.MarginTop) + (1-ratio)*float64(tc.plotHeight())
}

// GenerateSVG creates an SVG representation of the trend
func (tc *TrendChart) GenerateSVG() string {
	if len(tc.rows) == 0 {
		return tc.generateEmptyChart()
	}

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, tc.Width, tc.Height))
	svg.WriteString(`<style>.axis-label { font-size: 10px; fill: #666; } .bar-late { fill: #e07a5f; } .bar-ok { fill: #81b29a; } .avg-line { fill: none; stroke: #3d405b; stroke-width: 2; }</style>`)
	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, tc.Width, tc.Height))

	zero := tc.y(0)
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#999"/>`,
		tc.MarginLeft, zero, tc.Width-tc.MarginRight, zero))

	slot := float64(tc.plotWidth()) / float64(len(tc.rows))
	barWidth := slot * 0.6

	points := make([]string, 0, len(tc.rows))
	for i, r := range tc.rows {
		x := float64(tc.MarginLeft) + slot*float64(i) + (slot-barWidth)/2
		top := tc.y(float64(r.DelayDays))
		height := zero - top
		if height < 0 {
			top, height = zero, -height
		}

		class := "bar-ok"
		if r.DelayDays > 0 {
			class = "bar-late"
		}
		svg.WriteString(fmt.Sprintf(`<rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"><title>%s</title></rect>`,
			class, x, top, barWidth, height, html.EscapeString(tc.label(r))))

		cx := x + barWidth/2
		points = append(points, fmt.Sprintf("%.1f,%.1f", cx, tc.y(r.RollingAvg.InexactFloat64())))

		svg.WriteString(fmt.Sprintf(`<text class="axis-label" x="%.1f" y="%d" transform="rotate(45 %.1f %d)">%s</text>`,
			cx, tc.Height-tc.MarginBottom+14, cx, tc.Height-tc.MarginBottom+14, r.OrderDate.Format(entities.DateLayout)))
	}

	svg.WriteString(fmt.Sprintf(`<polyline class="avg-line" points="%s"/>`, strings.Join(points, " ")))
	svg.WriteString(`</svg>`)
	return svg.String()
}

func (tc *TrendChart) label(r dto.TrendRow) string {
	label := fmt.Sprintf("shipment %d: delay %d, rolling avg %s", r.ShipmentID, r.DelayDays, r.RollingAvg.StringFixed(2))
	if r.Series != "" {
		label = r.Series + " " + label
	}
	return label
}

func (tc *TrendChart) generateEmptyChart() string {
	return fmt.Sprintf(`<svg width="%d" height="80" xmlns="http://www.w3.org/2000/svg"><text x="20" y="40" class="axis-label">No delivered shipments</text></svg>`, tc.Width)
}
