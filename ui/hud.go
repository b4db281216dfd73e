package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/systems"
	"github.com/pthm-cable/outbreak/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Day       int
	Tick      int
	Speed     int
	FPS       int32
	Running   bool
	Completed bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD at the top-left of the surface.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Day: %d | Tick: %d | Speed: %dx | FPS: %d", data.Day, data.Tick, data.Speed, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	status, color := "Running", rl.Green
	switch {
	case data.Completed:
		status, color = "OUTBREAK OVER", rl.Yellow
	case !data.Running:
		status, color = "STOPPED", rl.Yellow
	}
	rl.DrawText(status, 10, 55, 16, color)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// DrawLegend renders the census per health state.
func (h *HUD) DrawLegend(x, y, width int32, c systems.Census) int32 {
	r := h.renderer
	t := r.Theme
	padding := t.Padding

	panelHeight := t.LineHeight*5 + t.BarHeight + padding*2 + 8
	r.DrawPanel(x, y, width, panelHeight)

	cy := y + padding
	cy = r.DrawSectionHeader(x+padding, cy, "Population")

	total := c.Total()
	cy = r.DrawCount(x+padding, cy, "Unaffected", c.Susceptible, total, t.Susceptible)
	cy = r.DrawCount(x+padding, cy, "Infected", c.Infected, total, t.Infected)
	cy = r.DrawCount(x+padding, cy, "Immune", c.Immune, total, t.Immune)
	cy = r.DrawCount(x+padding, cy, "Dead", c.Dead, total, t.Dead)

	r.DrawStackedBar(x+padding, cy+4, width-padding*2, []StackedSegment{
		{Value: c.Susceptible, Color: t.Susceptible},
		{Value: c.Infected, Color: t.Infected},
		{Value: c.Immune, Color: t.Immune},
		{Value: c.Dead, Color: t.Dead},
	})

	return y + panelHeight
}

// DrawSummary renders the completion summary centered on the surface.
func (h *HUD) DrawSummary(surfaceW, surfaceH int32, s telemetry.Summary, curve telemetry.CurveStats) {
	r := h.renderer
	width, height := int32(300), int32(170)
	x := (surfaceW - width) / 2
	y := (surfaceH - height) / 2

	r.DrawPanel(x, y, width, height)
	cy := r.DrawSectionHeader(x+r.Theme.Padding, y+r.Theme.Padding, "Outbreak over")
	cy = r.DrawLabelValue(x+r.Theme.Padding, cy, "Days", fmt.Sprintf("%d", s.TotalDays))
	cy = r.DrawLabelValue(x+r.Theme.Padding, cy, "Infections", fmt.Sprintf("%d", s.TotalInfections))
	cy = r.DrawLabelValue(x+r.Theme.Padding, cy, "Deaths", fmt.Sprintf("%d", s.TotalDead))
	cy = r.DrawLabelValue(x+r.Theme.Padding, cy, "Unaffected", fmt.Sprintf("%d", s.TotalUnaffected))
	cy = r.DrawLabelValue(x+r.Theme.Padding, cy, "Peak", fmt.Sprintf("%d on day %d", curve.PeakInfected, curve.PeakDay))
	cy = r.DrawLabelValue(x+r.Theme.Padding, cy, "Attack rate", fmt.Sprintf("%.0f%%", curve.AttackRate*100))
	r.DrawLabelValue(x+r.Theme.Padding, cy, "Case fatality", fmt.Sprintf("%.1f%%", curve.CaseFatality*100))
}

// PerfPanel renders the per-phase tick timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, phases []string) {
	x := p.x
	y := p.y

	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s | %.0f ticks/s", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range phases {
		avg := stats.PhaseAvg[name]
		pct := stats.PhasePct[name]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", name, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
