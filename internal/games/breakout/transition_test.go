package breakout

import (
	"math"
	"testing"
)

func TestTransitionLifecycle(t *testing.T) {
	tr := NewTransition(300, 0.7)
	if tr.Active() || tr.Phase() != PhaseIdle {
		t.Fatal("new transition should be idle")
	}
	if tr.Update() {
		t.Error("idle transition should never request a swap")
	}

	tr.Start(2, 450)
	if tr.Phase() != PhaseIn {
		t.Fatalf("Phase() = %v, expected in", tr.Phase())
	}
	if tr.FromLevel() != 2 || tr.Score() != 450 {
		t.Errorf("FromLevel/Score = %d/%d", tr.FromLevel(), tr.Score())
	}

	swaps := 0
	swapFrame := 0
	frames := 0
	for tr.Active() {
		frames++
		if tr.Update() {
			swaps++
			swapFrame = frames
			if tr.Phase() != PhaseOut {
				t.Errorf("swap frame should switch to out, got %v", tr.Phase())
			}
		}
		if frames > 1000 {
			t.Fatal("transition never finished")
		}
	}

	if swaps != 1 {
		t.Errorf("swap requested %d times, expected once", swaps)
	}
	if swapFrame != 210 {
		t.Errorf("swap at frame %d, expected 210", swapFrame)
	}
	if frames != 300 {
		t.Errorf("transition lasted %d frames, expected 300", frames)
	}
	if tr.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", tr.Phase())
	}
}

func TestTransitionAlphaBounded(t *testing.T) {
	tr := NewTransition(300, 0.7)
	tr.Start(1, 0)

	for tr.Active() {
		a := tr.Alpha()
		if a < 0 || a > 1 || math.IsNaN(a) {
			t.Fatalf("Alpha() = %v at progress %v", a, tr.Progress())
		}
		tr.Update()
	}
	if tr.Alpha() != 0 {
		t.Errorf("idle Alpha() = %v, expected 0", tr.Alpha())
	}
}

func TestTransitionMessageOpacity(t *testing.T) {
	tr := NewTransition(100, 0.7)
	tr.Start(1, 0)

	for range 20 {
		tr.Update()
	}
	// progress 0.2: first line a third in, second just starting, third hidden
	if got := tr.MessageOpacity(0); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("MessageOpacity(0) = %v, expected 0.3", got)
	}
	if got := tr.MessageOpacity(1); got != 0 {
		t.Errorf("MessageOpacity(1) = %v, expected 0", got)
	}
	if got := tr.MessageOpacity(2); got != 0 {
		t.Errorf("MessageOpacity(2) = %v, expected 0", got)
	}

	for range 45 {
		tr.Update()
	}
	for i := range 3 {
		if got := tr.MessageOpacity(i); got != 1 {
			t.Errorf("at progress 0.65 MessageOpacity(%d) = %v, expected 1", i, got)
		}
	}

	// The swap frame ends the fade-in; messages disappear with it.
	for range 5 {
		tr.Update()
	}
	if tr.Phase() != PhaseOut {
		t.Fatalf("Phase() = %v, expected out", tr.Phase())
	}
	for i := range 3 {
		if got := tr.MessageOpacity(i); got != 0 {
			t.Errorf("fading out MessageOpacity(%d) = %v, expected 0", i, got)
		}
	}
}

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.0625},
		{0.5, 0.5},
		{0.75, 0.9375},
		{1, 1},
	}

	for _, tc := range tests {
		if got := EaseInOutCubic(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("EaseInOutCubic(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
