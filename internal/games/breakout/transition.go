package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Phase is the state of the level transition.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseIn         // Fading to black, messages appearing
	PhaseOut        // Fading back to gameplay
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIn:
		return "in"
	case PhaseOut:
		return "out"
	default:
		return "idle"
	}
}

// Transition is the frame-driven animation between two levels.
// The next level is built at SwapAt of the duration, while still fading in.
type Transition struct {
	Duration int     // Total frames
	SwapAt   float64 // Progress fraction of the level swap

	phase     Phase
	current   int
	fromLevel int
	score     int
}

// NewTransition creates an idle transition.
func NewTransition(duration int, swapAt float64) Transition {
	return Transition{Duration: duration, SwapAt: swapAt}
}

// Start begins fading in after fromLevel was cleared with score.
func (t *Transition) Start(fromLevel, score int) {
	t.phase = PhaseIn
	t.current = 0
	t.fromLevel = fromLevel
	t.score = score
}

// Active reports whether the transition is running.
func (t Transition) Active() bool {
	return t.phase != PhaseIdle
}

// Phase returns the current phase.
func (t Transition) Phase() Phase {
	return t.phase
}

// FromLevel returns the level that was cleared.
func (t Transition) FromLevel() int {
	return t.fromLevel
}

// Score returns the score at the moment the level was cleared.
func (t Transition) Score() int {
	return t.score
}

// Update advances one frame. It returns true on the frame the next level
// must be built.
func (t *Transition) Update() bool {
	if t.phase == PhaseIdle {
		return false
	}

	t.current++
	switch t.phase {
	case PhaseIn:
		if float64(t.current) >= float64(t.Duration)*t.SwapAt {
			t.phase = PhaseOut
			return true
		}
	case PhaseOut:
		if t.current >= t.Duration {
			t.phase = PhaseIdle
			t.current = 0
		}
	}
	return false
}

// Progress returns the elapsed fraction of the duration.
func (t Transition) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.current) / float64(t.Duration)
}

// Alpha returns the opacity of the black overlay in [0, 1].
func (t Transition) Alpha() float64 {
	p := t.Progress()
	switch t.phase {
	case PhaseIn:
		return EaseInOutCubic(core.ClampF(p*2, 0, 1))
	case PhaseOut:
		return EaseInOutCubic(core.ClampF(2-p*2, 0, 1))
	default:
		return 0
	}
}

// MessageOpacity returns the opacity of the i-th message line (0-based).
// Line i starts appearing at progress 0.1*(i+1) and is fully shown a third
// of the duration later. Messages only show while fading in.
func (t Transition) MessageOpacity(i int) float64 {
	if t.phase != PhaseIn {
		return 0
	}
	start := 0.1 * float64(i+1)
	return core.ClampF((t.Progress()-start)*3, 0, 1)
}

// EaseInOutCubic eases t in [0, 1] with a cubic curve.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
