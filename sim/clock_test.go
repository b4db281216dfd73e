package sim

import "testing"

func TestClockAdvance(t *testing.T) {
	c := Clock{TicksPerDay: 3}

	var boundaries []int
	for tick := 1; tick <= 9; tick++ {
		if c.Advance() {
			boundaries = append(boundaries, tick)
		}
	}

	want := []int{3, 6, 9}
	if len(boundaries) != len(want) {
		t.Fatalf("boundaries = %v, want %v", boundaries, want)
	}
	for i := range want {
		if boundaries[i] != want[i] {
			t.Errorf("boundary %d at tick %d, want %d", i, boundaries[i], want[i])
		}
	}
	if c.Day != 3 || c.Frame != 0 {
		t.Errorf("clock = day %d frame %d, want day 3 frame 0", c.Day, c.Frame)
	}

	c.Reset()
	if c.Day != 0 || c.Frame != 0 || c.TicksPerDay != 3 {
		t.Errorf("after reset = %+v", c)
	}
}

func TestClockOneTickPerDay(t *testing.T) {
	c := Clock{TicksPerDay: 1}
	for i := 1; i <= 4; i++ {
		if !c.Advance() {
			t.Fatalf("tick %d did not end a day", i)
		}
	}
	if c.Day != 4 {
		t.Errorf("day = %d, want 4", c.Day)
	}
}
