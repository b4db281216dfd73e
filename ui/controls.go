package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/config"
)

// Slider ranges of the control panel.
const (
	MinPopulation   = 2
	MaxPopulation   = 1000
	MaxMovementRate = 10
	MinRecoveryDays = 1
	MaxRecoveryDays = 60
	MaxDeathRate    = 100
	MaxContact      = 30
)

// Params holds the run parameters editable from the control panel.
type Params struct {
	Population       int
	MovementRate     float64
	RecoveryDays     int
	DeathRatePercent float64
	ContactDistance  float64
}

// ParamsFromRun extracts the editable parameters of a run.
func ParamsFromRun(r config.Run) Params {
	return Params{
		Population:       r.Population,
		MovementRate:     r.MovementRate,
		RecoveryDays:     r.RecoveryDays,
		DeathRatePercent: r.DeathRatePercent,
		ContactDistance:  r.ContactDistance,
	}
}

// Clamp restricts every parameter to its slider range.
func (p Params) Clamp() Params {
	p.Population = min(max(p.Population, MinPopulation), MaxPopulation)
	p.MovementRate = math.Min(math.Max(p.MovementRate, 0), MaxMovementRate)
	p.RecoveryDays = min(max(p.RecoveryDays, MinRecoveryDays), MaxRecoveryDays)
	p.DeathRatePercent = math.Min(math.Max(p.DeathRatePercent, 0), MaxDeathRate)
	p.ContactDistance = math.Min(math.Max(p.ContactDistance, 0), MaxContact)
	return p
}

// Apply returns r with the parameters replaced.
func (p Params) Apply(r config.Run) config.Run {
	p = p.Clamp()
	r.Population = p.Population
	r.MovementRate = p.MovementRate
	r.RecoveryDays = p.RecoveryDays
	r.DeathRatePercent = p.DeathRatePercent
	r.ContactDistance = p.ContactDistance
	return r
}

// Action is what the user asked for on the control panel.
type Action int

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionReset
	ActionStep
)

// ControlPanel renders the parameter sliders and run buttons.
// Parameter changes take effect on the next reset.
type ControlPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	Params   Params
}

// NewControlPanel creates a control panel initialized from r.
func NewControlPanel(x, y, width int32, r config.Run) *ControlPanel {
	return &ControlPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		Params:   ParamsFromRun(r).Clamp(),
	}
}

// SetPosition moves the panel.
func (c *ControlPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Draw renders the panel and returns the requested action and the Y below it.
func (c *ControlPanel) Draw(running, completed bool) (Action, int32) {
	r := c.renderer
	padding := r.Theme.Padding

	panelHeight := int32(330)
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := float32(c.x + padding)
	y := c.y + padding
	sliderW := float32(c.width - padding*2 - 60)

	rl.DrawText("Parameters", int32(x), y, 16, rl.White)
	y += 24

	slider := func(label, value string, v, lo, hi float32) float32 {
		rl.DrawText(label, int32(x), y, r.Theme.FontSize, r.Theme.LabelColor)
		y += 14
		nv := gui.SliderBar(rl.Rectangle{X: x, Y: float32(y), Width: sliderW, Height: 16}, "", "", v, lo, hi)
		rl.DrawText(value, int32(x+sliderW+8), y+2, r.Theme.FontSize, r.Theme.ValueColor)
		y += 26
		return nv
	}

	p := c.Params
	p.Population = int(slider("Population", fmt.Sprintf("%d", p.Population),
		float32(p.Population), MinPopulation, MaxPopulation))
	p.MovementRate = float64(slider("Movement rate", fmt.Sprintf("%.1f", p.MovementRate),
		float32(p.MovementRate), 0, MaxMovementRate))
	p.RecoveryDays = int(slider("Recovery days", fmt.Sprintf("%d", p.RecoveryDays),
		float32(p.RecoveryDays), MinRecoveryDays, MaxRecoveryDays))
	p.DeathRatePercent = float64(slider("Death rate %", fmt.Sprintf("%.0f", p.DeathRatePercent),
		float32(p.DeathRatePercent), 0, MaxDeathRate))
	p.ContactDistance = float64(slider("Contact distance", fmt.Sprintf("%.1f", p.ContactDistance),
		float32(p.ContactDistance), 0, MaxContact))
	c.Params = p.Clamp()

	y += 4
	action := ActionNone
	btnW := (float32(c.width-padding*2) - 20) / 3

	runLabel := "Stop"
	if !running {
		runLabel = "Resume"
	}
	if completed {
		gui.Disable()
	}
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: btnW, Height: 30}, runLabel) {
		action = ActionToggleRun
	}
	if gui.Button(rl.Rectangle{X: x + btnW + 10, Y: float32(y), Width: btnW, Height: 30}, "Step") {
		action = ActionStep
	}
	if completed {
		gui.Enable()
	}
	if gui.Button(rl.Rectangle{X: x + 2*(btnW+10), Y: float32(y), Width: btnW, Height: 30}, "Reset") {
		action = ActionReset
	}

	return action, c.y + panelHeight
}

// OverlaysPanel renders the overlay toggles with their keys.
type OverlaysPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewOverlaysPanel creates a new overlays panel.
func NewOverlaysPanel(x, y, width int32) *OverlaysPanel {
	return &OverlaysPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the panel.
func (o *OverlaysPanel) SetPosition(x, y int32) {
	o.x = x
	o.y = y
}

// Draw renders the panel and returns the Y below it.
func (o *OverlaysPanel) Draw(overlays *OverlayRegistry) int32 {
	r := o.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	panelHeight := padding*2 + lineHeight + 4
	for _, cat := range categories {
		panelHeight += int32(len(overlays.ByCategory(cat))+1)*lineHeight + 4
	}
	r.DrawPanel(o.x, o.y, o.width, panelHeight)

	y := o.y + padding
	rl.DrawText("Overlays", o.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	for _, category := range categories {
		rl.DrawText(categoryLabel(category), o.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			o.drawToggle(o.x+padding, y, desc, overlays.IsEnabled(desc.ID), o.width-padding*2)
			y += lineHeight
		}
		y += 4
	}

	return o.y + panelHeight
}

// drawToggle draws a single overlay toggle line.
func (o *OverlaysPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := o.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
