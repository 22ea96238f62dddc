package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 10", core.ColorWhite)
	s.FillRect(0, 1, 4, 1, '█', core.ColorPink)
	s.FillRect(4, 1, 4, 1, '█', core.ColorMint)

	out := RenderScreen(s)

	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	if !strings.Contains(out, "Score: 10") {
		t.Errorf("rendered output misses HUD text: %q", out)
	}
	if n := strings.Count(out, "█"); n != 8 {
		t.Errorf("rendered %d brick cells, expected 8", n)
	}
}

func TestColorStylesCoverBrickPalette(t *testing.T) {
	for _, c := range core.BrickPalette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for brick color %d", c)
		}
	}
}
