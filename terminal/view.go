// Package terminal draws the simulation in a text terminal with tcell.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/outbreak/components"
	"github.com/pthm-cable/outbreak/sim"
)

// glyph is how one health state appears in a cell. Higher rank wins when
// several particles share a cell.
type glyph struct {
	r     rune
	style tcell.Style
	rank  uint8
}

var glyphs = map[components.HealthState]glyph{
	components.Dead:        {'x', tcell.StyleDefault.Foreground(tcell.ColorGray), 1},
	components.Immune:      {'o', tcell.StyleDefault.Foreground(tcell.ColorGreen), 2},
	components.Susceptible: {'o', tcell.StyleDefault.Foreground(tcell.ColorBlue), 3},
	components.Infected:    {'@', tcell.StyleDefault.Foreground(tcell.ColorRed), 4},
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)

// Status is the controller state shown on the status line.
type Status struct {
	Running bool
	Speed   int
	Muted   bool
}

// View draws frames onto a tcell screen. The surface is scaled to fill
// every row except the last, which holds the status line.
type View struct {
	mu       sync.Mutex
	screen   tcell.Screen
	surfaceW float64
	surfaceH float64

	frame  sim.Frame
	status Status
	ranks  []uint8
}

// NewView creates a view for a surface of the given size.
func NewView(screen tcell.Screen, surfaceW, surfaceH float64) *View {
	return &View{
		screen:   screen,
		surfaceW: surfaceW,
		surfaceH: surfaceH,
		status:   Status{Running: true, Speed: 1},
	}
}

// Render copies the frame and redraws.
func (v *View) Render(f sim.Frame) {
	v.mu.Lock()
	defer v.mu.Unlock()

	particles := append(v.frame.Particles[:0], f.Particles...)
	v.frame = f
	v.frame.Particles = particles
	v.draw()
}

// SetStatus updates the status line and redraws.
func (v *View) SetStatus(s Status) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.status = s
	v.draw()
}

// Redraw repaints the last frame, e.g. after a resize.
func (v *View) Redraw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.screen.Sync()
	v.draw()
}

func (v *View) draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	plotRows := rows - 1
	if cols > 0 && plotRows > 0 {
		v.drawParticles(cols, plotRows)
	}
	if rows > 0 {
		v.drawStatus(cols, rows-1)
	}
	v.screen.Show()
}

func (v *View) drawParticles(cols, rows int) {
	n := cols * rows
	if cap(v.ranks) < n {
		v.ranks = make([]uint8, n)
	}
	v.ranks = v.ranks[:n]
	clear(v.ranks)

	for _, p := range v.frame.Particles {
		g, ok := glyphs[p.State]
		if !ok {
			continue
		}
		cx := cell(p.X, v.surfaceW, cols)
		cy := cell(p.Y, v.surfaceH, rows)
		idx := cy*cols + cx
		if g.rank <= v.ranks[idx] {
			continue
		}
		v.ranks[idx] = g.rank
		v.screen.SetContent(cx, cy, g.r, nil, g.style)
	}
}

func (v *View) drawStatus(cols, y int) {
	for x := 0; x < cols; x++ {
		v.screen.SetContent(x, y, ' ', nil, statusStyle)
	}

	state := "running"
	switch {
	case completed(v.frame):
		state = "over"
	case !v.status.Running:
		state = "paused"
	}
	sound := ""
	if v.status.Muted {
		sound = " muted"
	}

	c := v.frame.Census
	line := fmt.Sprintf(" Day %d  S:%d I:%d R:%d D:%d  %s x%d%s  [space] run [s]tep [r]eset [,/.] speed [q]uit",
		v.frame.Day, c.Susceptible, c.Infected, c.Immune, c.Dead, state, v.status.Speed, sound)
	drawText(v.screen, 0, y, cols, line, statusStyle)
}

// completed reports whether the frame shows a finished outbreak.
func completed(f sim.Frame) bool {
	return f.Day > 0 && f.Census.Infected == 0
}

// cell maps a surface coordinate to a cell index in [0, n).
func cell(pos, extent float64, n int) int {
	if extent <= 0 {
		return 0
	}
	c := int(pos / extent * float64(n))
	return max(0, min(c, n-1))
}

func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
