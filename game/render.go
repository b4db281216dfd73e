package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/telemetry"
	"github.com/pthm-cable/outbreak/ui"
)

const controlsLegend = "[Space] Run/Stop  [S] Step  [R] Reset  [,/.] Speed  [M] Mute  [Arrows/Wheel] Camera  [Home] Fit  [Click] Inspect"

// Chart placement at the bottom of the surface
const (
	chartHeight = 140
	chartMargin = 10
)

// Draw renders the game state.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 12, G: 14, B: 18, A: 255})

	frame := g.view.Frame()
	g.view.Draw(g.camera, g.overlays.IsEnabled(ui.OverlayContactRadius), g.run.ContactDistance)

	// Selection highlight sits on top of particles, below the UI
	selected, hasSelection := g.inspector.Selected()
	if hasSelection {
		if p, ok := g.sim.Particle(selected); ok {
			g.inspector.DrawSelectionHighlight(g.camera, p)
		} else {
			g.inspector.Deselect()
		}
	}

	g.drawUI(frame.Day, frame.Tick)

	if hasSelection {
		if p, ok := g.sim.Particle(selected); ok {
			g.inspector.Draw(p)
		}
	}

	rl.EndDrawing()
}

// drawUI renders the HUD, the side panels and the active overlays.
func (g *Game) drawUI(day, tick int) {
	surfaceW := int32(g.camera.ViewportW)
	surfaceH := int32(g.camera.ViewportH)

	g.hud.Draw(ui.HUDData{
		Title:     "Outbreak",
		Day:       day,
		Tick:      tick,
		Speed:     g.stepsPerUpdate,
		FPS:       rl.GetFPS(),
		Running:   g.sim.Running(),
		Completed: g.sim.Completed(),
	})

	if g.overlays.IsEnabled(ui.OverlayChart) {
		g.view.DrawChart(chartMargin, surfaceH-chartHeight-chartMargin-30,
			surfaceW-2*chartMargin, chartHeight,
			g.collector.History(), g.run.Population)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perf.Stats(), telemetry.Phases())
	}

	if summary, ok := g.collector.Summary(); ok {
		g.hud.DrawSummary(surfaceW, surfaceH, summary, g.collector.Curve())
	}

	g.drawSidePanel()

	controls := controlsLegend
	if g.chime != nil && g.chime.Muted() {
		controls += "  (muted)"
	}
	g.hud.DrawControls(surfaceH, controls)
}

// drawSidePanel renders the controls column and applies its actions.
func (g *Game) drawSidePanel() {
	action, y := g.controls.Draw(g.sim.Running(), g.sim.Completed())
	switch action {
	case ui.ActionToggleRun:
		g.toggleRun()
	case ui.ActionStep:
		g.step()
	case ui.ActionReset:
		g.run = g.controls.Params.Apply(g.run)
		g.reset()
	}

	x := int32(g.screenWidth) - int32(g.cfg.Screen.PanelWidth)
	if g.overlays.IsEnabled(ui.OverlayLegend) {
		y = g.hud.DrawLegend(x, y, int32(g.cfg.Screen.PanelWidth), g.sim.Census())
	}

	g.overlaysPanel.SetPosition(x, y)
	y = g.overlaysPanel.Draw(g.overlays)

	if bookmarks := g.collector.Bookmarks(); len(bookmarks) > 0 {
		y += 6
		rl.DrawText("Milestones", x+10, y, 14, rl.Yellow)
		y += 18
		for _, bm := range bookmarks {
			rl.DrawText(fmt.Sprintf("Day %d: %s", bm.Day, bm.Type), x+10, y, 12, rl.LightGray)
			y += 14
		}
	}
}
