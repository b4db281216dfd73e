// Package ui draws the control panel, HUD and overlays of the graphical
// front end.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/components"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	BarBg         rl.Color
	BarFill       rl.Color

	// Particle colors per health state
	Susceptible rl.Color
	Infected    rl.Color
	Immune      rl.Color
	Dead        rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 100, G: 150, B: 200, A: 255},
		Susceptible:    rl.Color{R: 110, G: 160, B: 230, A: 255},
		Infected:       rl.Color{R: 230, G: 70, B: 60, A: 255},
		Immune:         rl.Color{R: 90, G: 200, B: 110, A: 255},
		Dead:           rl.Color{R: 90, G: 90, B: 90, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     110,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// StateColor returns the particle color for a health state.
func (t Theme) StateColor(s components.HealthState) rl.Color {
	switch s {
	case components.Infected:
		return t.Infected
	case components.Immune:
		return t.Immune
	case components.Dead:
		return t.Dead
	default:
		return t.Susceptible
	}
}
