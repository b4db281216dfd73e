package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/telemetry"
	"github.com/pthm-cable/outbreak/ui"
)

// chartSeries selects one count of a day report.
type chartSeries struct {
	label string
	value func(telemetry.DayReport) int
	color rl.Color
}

// ChartRenderer draws the infected, immune and dead counts over days.
type ChartRenderer struct {
	theme   ui.Theme
	minDays int
	series  []chartSeries
}

// NewChartRenderer creates a chart whose x axis spans at least minDays.
func NewChartRenderer(theme ui.Theme, minDays int) *ChartRenderer {
	return &ChartRenderer{
		theme:   theme,
		minDays: max(minDays, 1),
		series: []chartSeries{
			{"Infected", func(r telemetry.DayReport) int { return r.Infected }, theme.Infected},
			{"Immune", func(r telemetry.DayReport) int { return r.Immune }, theme.Immune},
			{"Dead", func(r telemetry.DayReport) int { return r.Dead }, theme.Dead},
		},
	}
}

// Draw renders the chart into the given rectangle.
func (c *ChartRenderer) Draw(x, y, w, h int32, history []telemetry.DayReport, population int) {
	rl.DrawRectangle(x, y, w, h, c.theme.PanelBg)
	rl.DrawRectangleLines(x, y, w, h, c.theme.PanelBorder)
	rl.DrawText("Days", x+6, y+4, c.theme.FontSize, c.theme.LabelColor)

	pad := int32(6)
	plotX, plotY := x+pad, y+pad+14
	plotW, plotH := w-pad*2, h-pad*2-14

	days := max(len(history), c.minDays)
	rl.DrawText(fmt.Sprintf("%d", days), x+w-40, y+4, c.theme.FontSize, c.theme.LabelColor)

	if len(history) == 0 || population <= 0 {
		return
	}

	for _, s := range c.series {
		prevX, prevY := float32(0), float32(0)
		for i, r := range history {
			px, py := chartPoint(i, s.value(r), days, population, plotW, plotH)
			px += float32(plotX)
			py += float32(plotY)
			if i > 0 {
				rl.DrawLineEx(rl.Vector2{X: prevX, Y: prevY}, rl.Vector2{X: px, Y: py}, 2, s.color)
			}
			prevX, prevY = px, py
		}
	}

	lx := plotX + 40
	for _, s := range c.series {
		rl.DrawRectangle(lx, y+6, 8, 8, s.color)
		rl.DrawText(s.label, lx+12, y+4, c.theme.FontSize, c.theme.LabelColor)
		lx += 12 + rl.MeasureText(s.label, c.theme.FontSize) + 12
	}
}

// chartPoint maps day index i and count to plot coordinates, with the
// origin at the bottom-left of a w by h plot.
func chartPoint(i, count, days, population int, w, h int32) (float32, float32) {
	var fx float32
	if days > 1 {
		fx = float32(i) / float32(days-1)
	}
	fy := float32(count) / float32(population)
	return fx * float32(w), float32(h) - fy*float32(h)
}
