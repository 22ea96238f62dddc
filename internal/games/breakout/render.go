package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
	HUDSepChar = '─'
)

// Minimum terminal size for a playable view
const (
	MinScreenW = 30
	MinScreenH = 12
)

// view maps arena units to screen cells.
type view struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

func (v view) col(x float64) int {
	return v.x0 + int(math.Floor(x*v.sx))
}

func (v view) row(y float64) int {
	return v.y0 + int(math.Floor(y*v.sy))
}

// span converts [from, to) in arena units to an inclusive cell range of at least one cell.
func span(from, to, scale float64, origin int) (int, int) {
	a := origin + int(math.Round(from*scale))
	b := origin + int(math.Round(to*scale)) - 1
	return a, max(a, b)
}

// Render draws the current state to dst.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap, g.arena)
}

// RenderSnapshot draws snap onto dst, scaling arena to the screen.
// Row 0 is the HUD, row 1 a separator and the last row a hint line.
func RenderSnapshot(dst *core.Screen, snap *Snapshot, arena core.Rect) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorWhite)
		return
	}

	v := view{
		x0: 0,
		y0: 2,
		w:  dst.Width(),
		h:  dst.Height() - 3,
	}
	v.sx = float64(v.w) / arena.W
	v.sy = float64(v.h) / arena.H

	if snap.Shake.Active() {
		if snap.Frame%2 == 0 {
			v.x0++
		} else {
			v.x0--
		}
	}

	renderHUD(dst, snap)

	if snap.TransitionAlpha >= 0.5 {
		renderTransition(dst, snap, v)
		return
	}

	renderBricks(dst, snap, v)
	renderPaddle(dst, snap, v)
	renderBalls(dst, snap, v)
	renderOverlay(dst, snap)
}

func renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)

	if snap.ComboCount > 1 {
		combo := fmt.Sprintf("Combo x%d (%d)", snap.ComboMultiplier, snap.ComboCount)
		dst.DrawTextCentered(0, combo, core.ColorYellow)
	}

	levelText := fmt.Sprintf("Level %d/%d", snap.Level, snap.MaxLevel)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText, core.ColorWhite)

	for x := range dst.Width() {
		dst.Set(x, 1, HUDSepChar, core.ColorGray)
	}
}

func renderBricks(dst *core.Screen, snap *Snapshot, v view) {
	for _, b := range snap.Bricks {
		if !b.Visible {
			continue
		}
		x1, x2 := span(b.Rect.X, b.Rect.Right(), v.sx, v.x0)
		y1, y2 := span(b.Rect.Y, b.Rect.Bottom(), v.sy, v.y0)
		color := core.BrickPalette[b.Row%len(core.BrickPalette)]
		dst.FillRect(x1, y1, x2-x1+1, y2-y1+1, BrickChar, color)
	}
}

func renderPaddle(dst *core.Screen, snap *Snapshot, v view) {
	r := snap.Paddle.Rect()
	x1, x2 := span(r.X, r.Right(), v.sx, v.x0)
	y := v.row(r.Y)
	for x := x1; x <= x2; x++ {
		dst.Set(x, y, PaddleChar, core.ColorCyan)
	}
}

func renderBalls(dst *core.Screen, snap *Snapshot, v view) {
	for _, b := range snap.Balls {
		y := v.row(b.Pos.Y)
		if y < v.y0 || y >= v.y0+v.h {
			continue
		}
		dst.Set(v.col(b.Pos.X), y, BallChar, core.ColorYellow)
	}
}

func renderTransition(dst *core.Screen, snap *Snapshot, v view) {
	lines := []string{
		fmt.Sprintf("Level %d Complete!", snap.TransitionFrom),
		fmt.Sprintf("Score: %d", snap.TransitionScore),
		fmt.Sprintf("Get Ready for Level %d", snap.TransitionFrom+1),
	}
	colors := []core.Color{core.ColorGreen, core.ColorWhite, core.ColorYellow}

	mid := v.y0 + v.h/2 - 2
	for i, line := range lines {
		if snap.TransitionMessages[i] < 0.5 {
			continue
		}
		dst.DrawTextCentered(mid+i*2, line, colors[i])
	}
}

func renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch {
	case snap.Completed:
		drawCenteredBox(dst, "ALL LEVELS CLEARED", fmt.Sprintf("Final Score: %d", snap.Score))
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	default:
		for _, b := range snap.Balls {
			if !b.Moving {
				dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch", core.ColorGray)
				break
			}
		}
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorGray)
}
