package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/camera"
)

// BackgroundRenderer draws the surface with a faint grid and its walls.
type BackgroundRenderer struct {
	surfaceW, surfaceH float32
	gridSpacing        float32

	fill   rl.Color
	grid   rl.Color
	border rl.Color
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(surfaceW, surfaceH float32, baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		surfaceW:    surfaceW,
		surfaceH:    surfaceH,
		gridSpacing: 50,
		fill:        rl.Color{R: baseR, G: baseG, B: baseB, A: 255},
		grid:        rl.Color{R: baseR + 12, G: baseG + 12, B: baseB + 12, A: 255},
		border:      rl.Color{R: 90, G: 100, B: 110, A: 255},
	}
}

// Resize updates the surface dimensions after a reset.
func (b *BackgroundRenderer) Resize(surfaceW, surfaceH float32) {
	b.surfaceW = surfaceW
	b.surfaceH = surfaceH
}

// Draw renders the surface as seen through the camera.
func (b *BackgroundRenderer) Draw(cam *camera.Camera) {
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(b.surfaceW, b.surfaceH)
	rl.DrawRectangle(int32(x0), int32(y0), int32(x1-x0), int32(y1-y0), b.fill)

	if cam.Scale(b.gridSpacing) >= 8 {
		for gx := b.gridSpacing; gx < b.surfaceW; gx += b.gridSpacing {
			sx, _ := cam.WorldToScreen(gx, 0)
			rl.DrawLine(int32(sx), int32(y0), int32(sx), int32(y1), b.grid)
		}
		for gy := b.gridSpacing; gy < b.surfaceH; gy += b.gridSpacing {
			_, sy := cam.WorldToScreen(0, gy)
			rl.DrawLine(int32(x0), int32(sy), int32(x1), int32(sy), b.grid)
		}
	}

	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 2, b.border)
}
