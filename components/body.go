package components

// Body holds the geometry of a particle.
type Body struct {
	Size          float64 `inspect:"label,fmt:%.1f"` // visual size; walls are hit at Size/2 from the center
	ContactRadius float64 `inspect:"label,fmt:%.1f"` // unsafe distance used for transmission
}
