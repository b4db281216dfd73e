package telemetry

import "testing"

func TestBookmarkDetector_FirstDeathOnce(t *testing.T) {
	bd := NewBookmarkDetector(20, 0.5)

	if bms := bd.Check(DayReport{Day: 1, Infected: 5, Unaffected: 95}); len(bms) != 0 {
		t.Fatalf("unexpected bookmarks %+v", bms)
	}

	bms := bd.Check(DayReport{Day: 2, Infected: 6, Dead: 1, Unaffected: 93})
	if len(bms) != 1 || bms[0].Type != BookmarkFirstDeath {
		t.Fatalf("bookmarks = %+v, want first death", bms)
	}

	for _, b := range bd.Check(DayReport{Day: 3, Infected: 7, Dead: 2, Unaffected: 91}) {
		if b.Type == BookmarkFirstDeath {
			t.Error("first death fired twice")
		}
	}
}

func TestBookmarkDetector_PeakPassed(t *testing.T) {
	tests := []struct {
		name     string
		after    int
		expected bool
	}{
		{"small dip", 45, false},
		{"exact threshold", 40, true},
		{"large drop", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := NewBookmarkDetector(20, 0.5)
			bd.Check(DayReport{Day: 1, Infected: 50, Unaffected: 50})

			found := false
			for _, b := range bd.Check(DayReport{Day: 2, Infected: tt.after, Unaffected: 50}) {
				if b.Type == BookmarkPeakPassed {
					found = true
				}
			}
			if found != tt.expected {
				t.Errorf("peak passed fired = %v, want %v", found, tt.expected)
			}
		})
	}
}

func TestBookmarkDetector_ImmuneMajority(t *testing.T) {
	bd := NewBookmarkDetector(20, 0.5)

	// 40 immune of 90 living: not yet
	if bms := bd.Check(DayReport{Day: 5, Immune: 40, Unaffected: 50, Dead: 10}); len(bms) != 1 {
		t.Fatalf("bookmarks = %+v, want only first death", bms)
	}

	found := false
	for _, b := range bd.Check(DayReport{Day: 6, Immune: 50, Unaffected: 40, Dead: 10}) {
		if b.Type == BookmarkImmuneMajority {
			found = true
		}
	}
	if !found {
		t.Error("immune majority did not fire at 50 of 90 living")
	}
}

func TestBookmarkDetector_Reset(t *testing.T) {
	bd := NewBookmarkDetector(20, 0.5)
	bd.Check(DayReport{Day: 1, Dead: 1, Infected: 1})
	bd.Reset()

	bms := bd.Check(DayReport{Day: 1, Dead: 1, Infected: 1})
	if len(bms) != 1 || bms[0].Type != BookmarkFirstDeath {
		t.Errorf("bookmarks after reset = %+v, want first death again", bms)
	}
}
