package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// degenerateEps is the length below which a normal or reflection is treated as zero.
const degenerateEps = 1e-4

// Wall identifies which arena boundary a ball touched.
type Wall int

const (
	WallNone Wall = iota
	WallLeft
	WallRight
	WallTop
)

// ResolveWalls clamps the ball inside the side and top walls of arena and
// turns its velocity away from the wall it crossed.
func ResolveWalls(b *Ball, arena core.Rect) Wall {
	hit := WallNone

	switch {
	case b.Pos.X+b.Radius > arena.Right():
		b.Pos.X = arena.Right() - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
		hit = WallRight
	case b.Pos.X-b.Radius < arena.X:
		b.Pos.X = arena.X + b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
		hit = WallLeft
	}

	if b.Pos.Y-b.Radius < arena.Y {
		b.Pos.Y = arena.Y + b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
		hit = WallTop
	}

	return hit
}

// TouchesPaddle reports whether a descending ball has reached the paddle top
// with its center inside the paddle span.
func TouchesPaddle(b Ball, p Paddle) bool {
	if b.Vel.Y <= 0 {
		return false
	}
	r := p.Rect()
	if b.Pos.Y+b.Radius <= r.Y || b.Pos.Y > r.Bottom() {
		return false
	}
	return b.Pos.X > r.X && b.Pos.X < r.Right()
}

// PaddleBounce returns the velocity after a paddle hit.
// The hit position across the paddle maps linearly to an angle in
// [-maxAngle, +maxAngle] from vertical; the speed is kept.
func PaddleBounce(b Ball, p Paddle, maxAngle, minVerticalRatio float64) core.Vec {
	speed := b.Speed()
	hit := core.ClampF((b.Pos.X-p.X)/p.Width, 0, 1)
	angle := (hit*2 - 1) * maxAngle
	v := core.V(math.Sin(angle)*speed, -math.Cos(angle)*speed)
	return ApplyMinVertical(v, speed, minVerticalRatio)
}

// TouchesBrick reports whether the ball overlaps r, using the point of r
// closest to the ball center.
func TouchesBrick(b Ball, r core.Rect) bool {
	d := b.Pos.Sub(r.ClosestPoint(b.Pos))
	return d.Dot(d) <= b.Radius*b.Radius
}

// BrickBounce reflects the ball velocity off r.
//
// The normal points from the closest point of r to the ball center. When the
// center lies on the rectangle the dominant velocity axis is used instead.
// A zero or non-finite reflection falls back to a full inversion, reported
// through the second result.
func BrickBounce(b Ball, r core.Rect, minVerticalRatio float64) (core.Vec, bool) {
	v := b.Vel
	speed := v.Len()
	inverted := v.Scale(-1)

	n := b.Pos.Sub(r.ClosestPoint(b.Pos))
	if math.Abs(n.X) < degenerateEps && math.Abs(n.Y) < degenerateEps {
		if math.Abs(v.X) > math.Abs(v.Y) {
			n = core.V(core.Sign(v.X), 0)
		} else {
			n = core.V(0, core.Sign(v.Y))
		}
	}

	unit, ok := n.Normalize()
	if !ok {
		unit = core.V(0, -core.Sign(v.Y))
	}

	reflected := v.Sub(unit.Scale(2 * v.Dot(unit)))
	if !reflected.Finite() || reflected.Len() < degenerateEps {
		return inverted, true
	}

	dir, ok := reflected.Normalize()
	if !ok {
		return inverted, true
	}
	out := ApplyMinVertical(dir.Scale(speed), speed, minVerticalRatio)
	if !out.Finite() {
		return inverted, true
	}
	return out, false
}

// ApplyMinVertical raises |v.Y| to ratio*speed when it is lower, shrinking
// |v.X| so the magnitude stays at speed. Signs of both components are kept.
func ApplyMinVertical(v core.Vec, speed, ratio float64) core.Vec {
	floor := ratio * speed
	if math.Abs(v.Y) >= floor {
		return v
	}
	vy := core.Sign(v.Y) * floor
	vx := core.Sign(v.X) * math.Sqrt(math.Max(speed*speed-vy*vy, 0))
	return core.V(vx, vy)
}
