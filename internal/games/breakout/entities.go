package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player-controlled bar near the bottom of the arena.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	DX            float64 // Horizontal velocity per frame
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Ball is a moving or resting ball.
type Ball struct {
	Pos    core.Vec // Center
	Vel    core.Vec // Units per frame
	Radius float64
	Moving bool
}

// NewRestingBall creates a ball riding the paddle center, gap units above its top.
func NewRestingBall(p Paddle, radius, gap float64) Ball {
	return Ball{
		Pos:    core.V(p.CenterX(), p.Y-gap),
		Radius: radius,
	}
}

// Speed returns the Euclidean norm of the velocity.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// LaunchVelocity returns the initial velocity for a ball launched with the
// paddle moving at dx. A still paddle sends the ball straight up with the
// same magnitude as a diagonal launch.
func LaunchVelocity(dx, speed float64) core.Vec {
	switch {
	case dx > 0:
		return core.V(speed, -speed)
	case dx < 0:
		return core.V(-speed, -speed)
	default:
		return core.V(0, -speed*math.Sqrt2)
	}
}
