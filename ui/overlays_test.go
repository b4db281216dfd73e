package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlayDefaults(t *testing.T) {
	reg := NewOverlayRegistry()

	tests := []struct {
		id   OverlayID
		want bool
	}{
		{OverlayChart, true},
		{OverlayLegend, true},
		{OverlayContactRadius, false},
		{OverlayPerf, false},
	}
	for _, tt := range tests {
		if got := reg.IsEnabled(tt.id); got != tt.want {
			t.Errorf("%s enabled = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestOverlayHandleKeyPress(t *testing.T) {
	reg := NewOverlayRegistry()

	id, state, ok := reg.HandleKeyPress(rl.KeyC)
	if !ok || id != OverlayContactRadius || !state {
		t.Errorf("HandleKeyPress(C) = %s, %v, %v", id, state, ok)
	}

	_, state, _ = reg.HandleKeyPress(rl.KeyC)
	if state || reg.IsEnabled(OverlayContactRadius) {
		t.Error("second press did not disable the overlay")
	}

	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key toggled an overlay")
	}
}

func TestOverlayCategories(t *testing.T) {
	reg := NewOverlayRegistry()

	cats := reg.Categories()
	if len(cats) != 2 || cats[0] != "visual" || cats[1] != "debug" {
		t.Errorf("categories = %v, want [visual debug]", cats)
	}
	if n := len(reg.ByCategory("debug")); n != 2 {
		t.Errorf("debug overlays = %d, want 2", n)
	}
	if n := len(reg.All()); n != 4 {
		t.Errorf("overlays = %d, want 4", n)
	}
}

func TestOverlayUnknownID(t *testing.T) {
	reg := NewOverlayRegistry()
	if reg.Toggle("nope") {
		t.Error("toggled an unknown overlay")
	}
	reg.SetEnabled("nope", true)
	if reg.IsEnabled("nope") {
		t.Error("enabled an unknown overlay")
	}
}
