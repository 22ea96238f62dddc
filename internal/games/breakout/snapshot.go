package breakout

import "math"

// Snapshot is a read-only copy of the world for renderers and tests.
// Mutating it never affects the game.
type Snapshot struct {
	Frame     uint64
	Level     int
	MaxLevel  int
	LevelName string
	Score     int
	Paused    bool
	Completed bool

	ComboCount      int
	ComboMultiplier int
	Shake           Shake

	Paddle Paddle
	Balls  []Ball

	Rows, Cols   int
	Bricks       []Brick // Row-major, Rows*Cols entries
	BricksTotal  int
	BricksActive int

	TransitionPhase    Phase
	TransitionProgress float64
	TransitionAlpha    float64
	TransitionFrom     int
	TransitionScore    int
	TransitionMessages [3]float64 // Opacity of the three transition messages
}

// Snapshot returns a copy of the current world state.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]Brick, 0, g.grid.Rows*g.grid.Cols)
	for _, row := range g.grid.Bricks {
		bricks = append(bricks, row...)
	}

	balls := make([]Ball, len(g.balls))
	copy(balls, g.balls)

	var messages [3]float64
	for i := range messages {
		messages[i] = g.transition.MessageOpacity(i)
	}

	return Snapshot{
		Frame:     g.frame,
		Level:     g.level,
		MaxLevel:  g.catalog.Max(),
		LevelName: g.def.Name,
		Score:     g.score,
		Paused:    g.paused,
		Completed: g.completed,

		ComboCount:      g.combo.Count,
		ComboMultiplier: g.combo.Multiplier,
		Shake:           g.shake,

		Paddle: g.paddle,
		Balls:  balls,

		Rows:         g.grid.Rows,
		Cols:         g.grid.Cols,
		Bricks:       bricks,
		BricksTotal:  g.grid.Total,
		BricksActive: g.grid.Active,

		TransitionPhase:    g.transition.Phase(),
		TransitionProgress: g.transition.Progress(),
		TransitionAlpha:    g.transition.Alpha(),
		TransitionFrom:     g.transition.FromLevel(),
		TransitionScore:    g.transition.Score(),
		TransitionMessages: messages,
	}
}

// Brick returns the brick at (row, col) of the snapshot.
func (snap *Snapshot) Brick(row, col int) (Brick, bool) {
	if row < 0 || row >= snap.Rows || col < 0 || col >= snap.Cols {
		return Brick{}, false
	}
	return snap.Bricks[row*snap.Cols+col], true
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(uint64(snap.Level))           //#nosec G115 -- hash computation
	mix(uint64(snap.Score))           //#nosec G115 -- hash computation
	mix(uint64(snap.ComboCount))      //#nosec G115 -- hash computation
	mix(uint64(snap.ComboMultiplier)) //#nosec G115 -- hash computation
	mix(uint64(snap.BricksActive))    //#nosec G115 -- hash computation
	mix(uint64(snap.TransitionPhase)) //#nosec G115 -- hash computation
	mixB(snap.Paused)
	mixB(snap.Completed)

	mixF(snap.Paddle.X)
	mixF(snap.Paddle.DX)

	for _, b := range snap.Balls {
		mixF(b.Pos.X)
		mixF(b.Pos.Y)
		mixF(b.Vel.X)
		mixF(b.Vel.Y)
		mixB(b.Moving)
	}

	for _, b := range snap.Bricks {
		mixB(b.Visible)
	}

	return h
}
