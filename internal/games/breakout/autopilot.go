package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// autopilotDeadZone is how far the ball may be from the paddle center
// before the autopilot moves.
const autopilotDeadZone = 20

// Autopilot issues the intents of a simple computer player: follow the
// first moving ball and launch whenever a ball rests on the paddle.
// Headless runs call it once per frame before stepping.
func (g *Game) Autopilot() {
	target := g.paddle.CenterX()
	for _, b := range g.balls {
		if b.Moving {
			target = b.Pos.X
			break
		}
	}
	switch {
	case target < g.paddle.CenterX()-autopilotDeadZone:
		g.MovePaddle(core.DirLeft)
	case target > g.paddle.CenterX()+autopilotDeadZone:
		g.MovePaddle(core.DirRight)
	default:
		g.MovePaddle(core.DirNone)
	}
	g.Launch()
}
