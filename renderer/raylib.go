// Package renderer draws the simulation with raylib.
package renderer

import (
	"github.com/pthm-cable/outbreak/camera"
	"github.com/pthm-cable/outbreak/sim"
	"github.com/pthm-cable/outbreak/telemetry"
	"github.com/pthm-cable/outbreak/ui"
)

// Raylib receives frames from the simulation and draws the latest one.
// Render only copies; drawing happens in Draw between BeginDrawing and
// EndDrawing on the window thread.
type Raylib struct {
	background *BackgroundRenderer
	particles  *ParticleRenderer
	chart      *ChartRenderer

	frame sim.Frame
}

// NewRaylib creates a renderer for a surface of the given size.
func NewRaylib(theme ui.Theme, surfaceW, surfaceH float64, chartDays int) *Raylib {
	return &Raylib{
		background: NewBackgroundRenderer(float32(surfaceW), float32(surfaceH), 24, 28, 34),
		particles:  NewParticleRenderer(theme),
		chart:      NewChartRenderer(theme, chartDays),
	}
}

// Render keeps a copy of the frame.
func (r *Raylib) Render(f sim.Frame) {
	particles := append(r.frame.Particles[:0], f.Particles...)
	r.frame = f
	r.frame.Particles = particles
}

// Frame returns the last frame received.
func (r *Raylib) Frame() sim.Frame {
	return r.frame
}

// Resize updates the surface size after a reset.
func (r *Raylib) Resize(surfaceW, surfaceH float64) {
	r.background.Resize(float32(surfaceW), float32(surfaceH))
}

// Draw renders the surface and its particles.
func (r *Raylib) Draw(cam *camera.Camera, showContact bool, contactRadius float64) {
	r.background.Draw(cam)
	if showContact {
		r.particles.DrawContactRadius(cam, r.frame.Particles, contactRadius)
	}
	r.particles.Draw(cam, r.frame.Particles)
}

// DrawChart renders the day series into the given rectangle.
func (r *Raylib) DrawChart(x, y, w, h int32, history []telemetry.DayReport, population int) {
	r.chart.Draw(x, y, w, h, history, population)
}
