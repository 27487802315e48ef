package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/season-quest/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hey")
	s.DrawTextColor(3, 0, "you", core.ColorHighlight)
	s.DrawTextColor(0, 1, "~~", core.ColorWater)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"hey", "you"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("row 0 %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "~~") {
		t.Errorf("row 1 %q missing water", lines[1])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorCover; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
