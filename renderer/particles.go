package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/camera"
	"github.com/pthm-cable/outbreak/components"
	"github.com/pthm-cable/outbreak/sim"
	"github.com/pthm-cable/outbreak/ui"
)

// ParticleRenderer draws particles colored by health state.
type ParticleRenderer struct {
	theme ui.Theme
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer(theme ui.Theme) *ParticleRenderer {
	return &ParticleRenderer{theme: theme}
}

// Draw renders every visible particle. Dead particles are drawn first so
// that living ones stay on top.
func (r *ParticleRenderer) Draw(cam *camera.Camera, particles []sim.ParticleView) {
	for pass := 0; pass < 2; pass++ {
		for i := range particles {
			p := &particles[i]
			if (p.State == components.Dead) != (pass == 0) {
				continue
			}

			x, y := float32(p.X), float32(p.Y)
			radius := float32(p.Size / 2)
			if !cam.IsVisible(x, y, radius) {
				continue
			}

			sx, sy := cam.WorldToScreen(x, y)
			sr := max(cam.Scale(radius), 1)
			rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, sr, r.theme.StateColor(p.State))
		}
	}
}

// DrawContactRadius outlines the unsafe distance around infected particles.
func (r *ParticleRenderer) DrawContactRadius(cam *camera.Camera, particles []sim.ParticleView, contactRadius float64) {
	if contactRadius <= 0 {
		return
	}
	color := r.theme.Infected
	color.A = 90

	for i := range particles {
		p := &particles[i]
		if p.State != components.Infected {
			continue
		}
		sx, sy := cam.WorldToScreen(float32(p.X), float32(p.Y))
		rl.DrawCircleLines(int32(sx), int32(sy), cam.Scale(float32(contactRadius)), color)
	}
}
