package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 2
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawCount draws a colored swatch, a label and a count with its share.
func (r *Renderer) DrawCount(x, y int32, label string, count, total int, color rl.Color) int32 {
	rl.DrawRectangle(x, y+1, 10, 10, color)
	rl.DrawText(label, x+16, y, r.Theme.FontSize, r.Theme.LabelColor)

	pct := 0.0
	if total > 0 {
		pct = float64(count) / float64(total) * 100
	}
	rl.DrawText(fmt.Sprintf("%d (%.0f%%)", count, pct), x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// StackedSegment is one colored share of a stacked bar.
type StackedSegment struct {
	Value int
	Color rl.Color
}

// DrawStackedBar draws segments side by side scaled to their sum.
func (r *Renderer) DrawStackedBar(x, y, width int32, segments []StackedSegment) int32 {
	rl.DrawRectangle(x, y, width, r.Theme.BarHeight, r.Theme.BarBg)

	total := 0
	for _, s := range segments {
		total += s.Value
	}
	if total == 0 {
		return y + r.Theme.BarHeight + 4
	}

	offset := x
	for i, s := range segments {
		w := int32(float64(width) * float64(s.Value) / float64(total))
		if i == len(segments)-1 {
			w = x + width - offset
		}
		rl.DrawRectangle(offset, y, w, r.Theme.BarHeight, s.Color)
		offset += w
	}
	return y + r.Theme.BarHeight + 4
}

// DrawSpacer adds vertical space and returns new Y.
func (r *Renderer) DrawSpacer(y int32, amount int32) int32 {
	return y + amount
}
