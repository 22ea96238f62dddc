package breakout

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderPlayfield(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Score: 0", "Level 1/6", "Press SPACE to launch"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	for _, r := range []rune{BrickChar, PaddleChar, BallChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("render missing %q:\n%s", r, out)
		}
	}
}

func TestRenderBrickColors(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	colored := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			c := screen.GetCell(x, y)
			if c.Rune == BrickChar && c.Color == core.BrickPalette[0] {
				colored = true
			}
		}
	}
	if !colored {
		t.Error("first brick row should use the first palette color")
	}
}

func TestRenderCombo(t *testing.T) {
	g, _ := newTestGame(t)
	for i := range 4 {
		g.scoreHit(t0.Add(time.Duration(i) * time.Millisecond))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Combo x2 (4)") {
		t.Errorf("HUD should show the combo, got %q", screen.Row(0))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(20, 6)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestRenderTransition(t *testing.T) {
	g, _ := newTestGame(t)
	g.transition.Start(1, 40)
	for range 100 {
		g.Step()
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Level 1 Complete!") {
		t.Errorf("transition should show the completion message:\n%s", out)
	}
	if strings.ContainsRune(out, BrickChar) {
		t.Error("bricks should be hidden behind the fade")
	}
}

func TestRenderTransitionFadeOutHidesMessages(t *testing.T) {
	g, _ := newTestGame(t)
	g.transition.Start(1, 40)
	for range 215 {
		g.Step()
	}
	if g.transition.Phase() != PhaseOut {
		t.Fatalf("Phase() = %v, expected out", g.transition.Phase())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, msg := range []string{"Level 1 Complete!", "Get Ready for Level 2"} {
		if strings.Contains(out, msg) {
			t.Errorf("fade-out should not show %q:\n%s", msg, out)
		}
	}
}

func TestRenderPaused(t *testing.T) {
	g, _ := newTestGame(t)
	g.SetPaused(true)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Errorf("paused overlay missing:\n%s", screen.String())
	}
}
