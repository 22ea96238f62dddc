package breakout

import (
	"github.com/charmbracelet/log"
)

// CollisionKind names what the ball hit.
type CollisionKind int

const (
	CollisionWall CollisionKind = iota
	CollisionPaddle
	CollisionBrick
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionWall:
		return "wall"
	case CollisionPaddle:
		return "paddle"
	case CollisionBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// CueSink receives audio cues. Playback is the sink's business.
type CueSink interface {
	OnCollision(kind CollisionKind, multiplier int)
}

// NopCueSink drops every cue.
type NopCueSink struct{}

// OnCollision does nothing.
func (NopCueSink) OnCollision(CollisionKind, int) {}

// Pitch returns the playback rate for a collision cue.
// Brick pitch rises with the combo multiplier up to double speed.
func Pitch(kind CollisionKind, multiplier int) float64 {
	switch kind {
	case CollisionPaddle:
		return 0.8
	case CollisionBrick:
		return min(1+float64(multiplier)*0.1, 2.0)
	default:
		return 1.2
	}
}

// LogCueSink writes cues to a logger at debug level.
type LogCueSink struct {
	Logger *log.Logger
}

// OnCollision logs the cue with its pitch.
func (s LogCueSink) OnCollision(kind CollisionKind, multiplier int) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("cue", "kind", kind, "multiplier", multiplier, "pitch", Pitch(kind, multiplier))
}
