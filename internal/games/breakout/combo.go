package breakout

import "time"

// Shake is a screen-shake cue measured in frames.
type Shake struct {
	Intensity int
	Duration  int
}

// Active reports whether the shake still has frames left.
func (s Shake) Active() bool {
	return s.Duration > 0
}

// Decay consumes one frame.
func (s *Shake) Decay() {
	if s.Duration <= 0 {
		return
	}
	s.Duration--
	if s.Duration == 0 {
		s.Intensity = 0
	}
}

// ShakeForCombo returns the shake for a combo count, growing every 5 hits.
func ShakeForCombo(count int) Shake {
	level := count / 5
	return Shake{
		Intensity: min(3+2*level, 12),
		Duration:  min(5+2*level, 15),
	}
}

// Combo tracks consecutive brick hits within a time window.
type Combo struct {
	Count         int
	Multiplier    int
	LastHit       time.Time
	Window        time.Duration
	MaxMultiplier int

	decay TimerHandle
}

// NewCombo creates a reset combo.
func NewCombo(window time.Duration, maxMultiplier int) Combo {
	return Combo{
		Multiplier:    1,
		Window:        window,
		MaxMultiplier: maxMultiplier,
	}
}

// Register records a brick hit at now and returns true when the new count
// earns a screen shake.
func (c *Combo) Register(now time.Time) bool {
	shake := false
	if !c.LastHit.IsZero() && now.Sub(c.LastHit) < c.Window {
		c.Count++
		c.Multiplier = c.multiplierFor(c.Count)
		shake = c.Count%5 == 0
	} else {
		c.Count = 1
		c.Multiplier = 1
	}
	c.LastHit = now
	return shake
}

// Reset clears the count and multiplier. LastHit is kept.
func (c *Combo) Reset() {
	c.Count = 0
	c.Multiplier = 1
}

func (c *Combo) multiplierFor(count int) int {
	return max(1, min(count/3+1, c.MaxMultiplier))
}
