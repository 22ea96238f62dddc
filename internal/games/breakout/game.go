package breakout

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is one play session. All world state is owned by the frame step;
// the only other writer is the combo decay task, which runs from the same
// loop through the timer queue and touches combo fields only.
type Game struct {
	cfg     config.BreakoutConfig
	catalog *Catalog
	arena   core.Rect
	field   core.Rect
	params  LayoutParams

	// World
	paddle Paddle
	balls  []Ball
	grid   *Grid
	def    LevelDef
	level  int

	// Scoring and effects
	score      int
	combo      Combo
	shake      Shake
	transition Transition

	// Session
	paused    bool
	completed bool
	frame     uint64
	lastStep  time.Time
	interval  time.Duration

	clock  Clock
	timers *TimerQueue
	cues   CueSink
	logger *log.Logger
}

// Option customizes a Game.
type Option func(*Game)

// WithClock sets the clock used by Step and for combo timing.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithCueSink sets the audio cue sink.
func WithCueSink(s CueSink) Option {
	return func(g *Game) { g.cues = s }
}

// WithLogger sets the telemetry logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithCatalog replaces the catalog built from the configuration.
func WithCatalog(c *Catalog) Option {
	return func(g *Game) { g.catalog = c }
}

// New creates a session and starts it at the configured start level.
func New(cfg config.BreakoutConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	field, err := FieldFromConfig(cfg.Arena, cfg.Field)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		arena: core.NewRect(0, 0, cfg.Arena.Width, cfg.Arena.Height),
		field: field,
		params: LayoutParams{
			AspectRatio: cfg.Layout.AspectRatio,
			MinPadding:  cfg.Layout.MinPadding,
		},
		combo:      NewCombo(time.Duration(cfg.Combo.WindowMS)*time.Millisecond, cfg.Combo.MaxMultiplier),
		transition: NewTransition(cfg.Transition.DurationFrames, cfg.Transition.SwapAt),
		interval:   time.Second / time.Duration(cfg.Gameplay.FrameRate),
		clock:      SystemClock{},
		timers:     NewTimerQueue(),
		cues:       NopCueSink{},
		logger:     log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.catalog == nil {
		g.catalog, err = NewCatalog(cfg.Levels)
		if err != nil {
			return nil, err
		}
	}

	if err := g.Start(cfg.Gameplay.StartLevel); err != nil {
		return nil, err
	}
	return g, nil
}

// Start (re)starts the session at level n.
// Score and combo are only cleared when starting from level 1.
func (g *Game) Start(n int) error {
	if _, err := g.catalog.Level(n); err != nil {
		return err
	}

	if n == 1 {
		g.score = 0
		g.resetCombo()
	}
	g.transition = NewTransition(g.cfg.Transition.DurationFrames, g.cfg.Transition.SwapAt)
	g.completed = false
	g.paused = false

	return g.loadLevel(n)
}

// loadLevel rebuilds the grid, paddle and balls for level n.
func (g *Game) loadLevel(n int) error {
	def, err := g.catalog.Level(n)
	if err != nil {
		return err
	}
	layout, err := ComputeLayout(def.Rows, def.Cols, g.field, g.params)
	if err != nil {
		return err
	}

	g.def = def
	g.level = n
	g.grid = BuildGrid(def, layout)
	g.shake = Shake{}
	g.paddle = Paddle{
		X:      (g.arena.W - g.cfg.Paddle.Width) / 2,
		Y:      g.arena.Bottom() - g.cfg.Paddle.BottomOffset,
		Width:  g.cfg.Paddle.Width,
		Height: g.cfg.Paddle.Height,
	}
	g.balls = []Ball{g.restingBall()}

	g.logger.Info("level started",
		"level", n,
		"name", def.Name,
		"bricks", g.grid.Total,
		"brick_w", layout.BrickW,
		"brick_h", layout.BrickH,
	)
	return nil
}

func (g *Game) restingBall() Ball {
	return NewRestingBall(g.paddle, g.cfg.Ball.Radius, g.cfg.Ball.RestGap)
}

// Tick is called by the driver once per rendered frame. Due timers always
// run; the physics step only runs once a full frame interval has passed
// since the last performed step. The bool reports whether a step ran.
func (g *Game) Tick(now time.Time) (core.StepResult, bool) {
	g.timers.RunDue(now)
	if !g.lastStep.IsZero() && now.Sub(g.lastStep) < g.interval {
		return core.StepResult{State: g.State()}, false
	}
	g.lastStep = now
	return g.step(now), true
}

// Step runs one physics step at the clock's current time, ignoring frame gating.
func (g *Game) Step() core.StepResult {
	now := g.clock.Now()
	g.timers.RunDue(now)
	return g.step(now)
}

func (g *Game) step(now time.Time) core.StepResult {
	if g.completed || g.paused {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	if g.transition.Active() {
		if g.transition.Update() {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.shake.Decay()
	g.updatePaddle()

	kept := g.balls[:0]
	for _, b := range g.balls {
		if g.updateBall(&b, now) {
			kept = append(kept, b)
		}
	}
	g.balls = kept
	if len(g.balls) == 0 {
		g.balls = append(g.balls, g.restingBall())
		g.logger.Debug("respawned resting ball")
	}

	result := core.StepResult{}
	if g.grid.Complete() {
		g.completeLevel()
		result.LevelCompleted = true
	}
	result.State = g.State()
	return result
}

func (g *Game) updatePaddle() {
	g.paddle.X = core.ClampF(g.paddle.X+g.paddle.DX, g.arena.X, g.arena.Right()-g.paddle.Width)
}

// updateBall advances one ball. It returns false when the ball left the arena.
func (g *Game) updateBall(b *Ball, now time.Time) bool {
	if !b.Moving {
		b.Pos = core.V(g.paddle.CenterX(), g.paddle.Y-g.cfg.Ball.RestGap)
		return true
	}

	b.Pos = b.Pos.Add(b.Vel)

	if wall := ResolveWalls(b, g.arena); wall != WallNone {
		g.cues.OnCollision(CollisionWall, g.combo.Multiplier)
	}

	if TouchesPaddle(*b, g.paddle) {
		b.Vel = PaddleBounce(*b, g.paddle, g.maxBounceAngle(), g.cfg.Ball.MinVerticalRatio)
		g.resetCombo()
		g.cues.OnCollision(CollisionPaddle, g.combo.Multiplier)
		g.logger.Debug("paddle hit", "x", b.Pos.X, "dx", b.Vel.X, "dy", b.Vel.Y)
	}

	if b.Pos.Y-b.Radius > g.arena.Bottom() {
		g.logger.Debug("ball lost", "x", b.Pos.X, "balls", len(g.balls)-1)
		return false
	}

	g.collideBricks(b, now)
	return true
}

// collideBricks resolves at most one brick hit, scanning row by row.
func (g *Game) collideBricks(b *Ball, now time.Time) {
	for row := range g.grid.Bricks {
		for col := range g.grid.Bricks[row] {
			brick := &g.grid.Bricks[row][col]
			if !brick.Visible || !TouchesBrick(*b, brick.Rect) {
				continue
			}

			vel, degenerate := BrickBounce(*b, brick.Rect, g.cfg.Ball.MinVerticalRatio)
			if degenerate {
				g.logger.Warn("degenerate brick bounce, inverting velocity",
					"row", row, "col", col, "dx", b.Vel.X, "dy", b.Vel.Y)
			}
			b.Vel = vel

			g.grid.Destroy(row, col)
			g.scoreHit(now)
			g.cues.OnCollision(CollisionBrick, g.combo.Multiplier)
			g.logger.Debug("brick hit",
				"row", row, "col", col,
				"active", g.grid.Active,
				"score", g.score,
			)
			return
		}
	}
}

func (g *Game) scoreHit(now time.Time) {
	if g.combo.Register(now) {
		g.shake = ShakeForCombo(g.combo.Count)
		g.logger.Debug("shake", "count", g.combo.Count, "intensity", g.shake.Intensity)
	}
	g.score += g.cfg.Combo.BasePoints * g.combo.Multiplier
	g.combo.decay = g.timers.Replace(g.combo.decay, now.Add(g.combo.Window), g.decayCombo)

	if g.combo.Count > 1 {
		g.logger.Debug("combo", "count", g.combo.Count, "multiplier", g.combo.Multiplier)
	}
}

func (g *Game) decayCombo() {
	g.combo.decay = 0
	g.combo.Reset()
	g.logger.Debug("combo expired")
}

func (g *Game) resetCombo() {
	g.timers.Cancel(g.combo.decay)
	g.combo.decay = 0
	g.combo.Reset()
}

func (g *Game) maxBounceAngle() float64 {
	return g.cfg.Ball.MaxBounceAngle * math.Pi / 180
}

func (g *Game) completeLevel() {
	g.logger.Info("level complete", "level", g.level, "score", g.score)
	if g.level < g.catalog.Max() {
		g.transition.Start(g.level, g.score)
		return
	}
	g.completed = true
	g.logger.Info("all levels cleared", "score", g.score)
}

func (g *Game) advanceLevel() {
	if err := g.loadLevel(g.level + 1); err != nil {
		g.logger.Error("could not load next level", "level", g.level+1, "error", err)
		g.completed = true
	}
}

// MovePaddle sets the paddle velocity from a direction intent.
// Ignored while a transition runs.
func (g *Game) MovePaddle(dir core.Direction) {
	if g.transition.Active() || g.completed {
		return
	}
	switch dir {
	case core.DirLeft:
		g.paddle.DX = -g.cfg.Paddle.Speed
	case core.DirRight:
		g.paddle.DX = g.cfg.Paddle.Speed
	default:
		g.paddle.DX = 0
	}
}

// Launch sends a resting ball off the paddle. In multi-ball mode every
// launch adds a new ball instead. Returns false if nothing was launched.
func (g *Game) Launch() bool {
	if g.paused || g.completed || g.transition.Active() {
		return false
	}

	vel := LaunchVelocity(g.paddle.DX, g.cfg.Ball.Speed)
	if g.cfg.Gameplay.MultiBall {
		b := g.restingBall()
		b.Vel = vel
		b.Moving = true
		g.balls = append(g.balls, b)
		g.logger.Debug("ball launched", "balls", len(g.balls), "dx", vel.X, "dy", vel.Y)
		return true
	}

	for i := range g.balls {
		if !g.balls[i].Moving {
			g.balls[i].Vel = vel
			g.balls[i].Moving = true
			g.logger.Debug("ball launched", "dx", vel.X, "dy", vel.Y)
			return true
		}
	}
	return false
}

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(p bool) {
	if g.completed {
		return
	}
	g.paused = p
}

// Apply translates an input frame into intents.
func (g *Game) Apply(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.SetPaused(!g.paused)
	}
	if dir, ok := in.Direction(); ok {
		g.MovePaddle(dir)
	}
	if in.Has(core.ActionLaunch) {
		g.Launch()
	}
}

// IsLevelComplete reports whether every brick of the current level is gone.
func (g *Game) IsLevelComplete() bool {
	return g.grid.Complete()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Level:     g.level,
		Completed: g.completed,
		Paused:    g.paused,
	}
}

// Level returns the current level definition.
func (g *Game) Level() LevelDef {
	return g.def
}

// Catalog returns the level catalog.
func (g *Game) Catalog() *Catalog {
	return g.catalog
}

// Field returns the brick field bounds.
func (g *Game) Field() core.Rect {
	return g.field
}

// Arena returns the full arena bounds.
func (g *Game) Arena() core.Rect {
	return g.arena
}

// Transition returns the current transition state.
func (g *Game) Transition() Transition {
	return g.transition
}

// Combo returns the current combo state.
func (g *Game) Combo() Combo {
	return g.combo
}

// FrameInterval returns the minimum time between performed steps.
func (g *Game) FrameInterval() time.Duration {
	return g.interval
}
