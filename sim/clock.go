package sim

// Clock tracks the frame within the current day and the day count.
type Clock struct {
	Day         int
	Frame       int
	TicksPerDay int
}

// Advance counts one tick and reports whether it completed a day.
func (c *Clock) Advance() bool {
	c.Frame++
	if c.Frame < c.TicksPerDay {
		return false
	}
	c.Frame = 0
	c.Day++
	return true
}

// Reset rewinds the clock to day zero.
func (c *Clock) Reset() {
	c.Day = 0
	c.Frame = 0
}
