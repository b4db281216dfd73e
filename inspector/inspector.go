// Package inspector shows the components of a selected particle.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/camera"
	"github.com/pthm-cable/outbreak/sim"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
	pickSlack    = 4 // extra world units around a particle that still select it
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector manages particle selection and panel rendering.
type Inspector struct {
	selected    int
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector whose panel is drawn at (panelX, panelY).
func NewInspector(panelX, panelY int32) *Inspector {
	return &Inspector{panelX: panelX, panelY: panelY}
}

// SetPosition moves the panel.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.panelX = x
	ins.panelY = y
}

// HandleInput selects the particle under a left click and deselects on a
// right click.
func (ins *Inspector) HandleInput(cam *camera.Camera, particles []sim.ParticleView) {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	if mouse.X < cam.ViewportX || mouse.X > cam.ViewportX+cam.ViewportW {
		return
	}
	wx, wy := cam.ScreenToWorld(mouse.X, mouse.Y)
	ins.Pick(float64(wx), float64(wy), particles)
}

// Pick selects the particle closest to (x, y) among those whose body,
// widened by a small slack, covers the point. Returns whether one was found.
func (ins *Inspector) Pick(x, y float64, particles []sim.ParticleView) bool {
	closest := -1
	closestDist := 0.0

	for i, p := range particles {
		dx := x - p.X
		dy := y - p.Y
		dist := dx*dx + dy*dy

		hit := p.Size/2 + pickSlack
		if dist > hit*hit {
			continue
		}
		if closest < 0 || dist < closestDist {
			closest = i
			closestDist = dist
		}
	}

	if closest < 0 {
		return false
	}
	ins.selected = closest
	ins.hasSelected = true
	return true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the index of the selected particle.
func (ins *Inspector) Selected() (int, bool) {
	return ins.selected, ins.hasSelected
}

// Draw renders the inspector panel for the selected particle.
func (ins *Inspector) Draw(p sim.Particle) {
	if !ins.hasSelected {
		return
	}

	sections := []struct {
		title     string
		component any
	}{
		{"POSITION", p.Position},
		{"VELOCITY", p.Velocity},
		{"BODY", p.Body},
		{"HEALTH", p.Health},
	}

	fields := make([][]Field, len(sections))
	height := int32(HeaderHeight + PanelPadding*2 + 22)
	for i, s := range sections {
		fields[i] = ExtractFields(s.component)
		height += 24 + int32(len(fields[i]))*18
	}

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	rl.DrawText(fmt.Sprintf("Particle #%d", ins.selected), x, y, 14, ColorHeaderText)
	y += 22

	for i, s := range sections {
		ins.drawSectionHeader(x, y, s.title)
		y += 24
		for _, f := range fields[i] {
			y += DrawField(x, y, f)
		}
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// DrawSelectionHighlight outlines the selected particle and its contact radius.
func (ins *Inspector) DrawSelectionHighlight(cam *camera.Camera, p sim.Particle) {
	if !ins.hasSelected {
		return
	}

	sx, sy := cam.WorldToScreen(float32(p.Position.X), float32(p.Position.Y))

	rl.DrawCircleLines(int32(sx), int32(sy), cam.Scale(float32(p.Body.Size)), rl.Yellow)
	if p.Body.ContactRadius > 0 {
		rl.DrawCircleLines(int32(sx), int32(sy), cam.Scale(float32(p.Body.ContactRadius)), rl.Color{R: 255, G: 255, B: 0, A: 90})
	}
}
