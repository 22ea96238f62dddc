package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// LayoutParams are the fixed sizing rules for a brick grid.
type LayoutParams struct {
	AspectRatio float64 // Brick width divided by brick height
	MinPadding  float64 // Smallest gap between bricks and around the grid
}

// BrickLayout is the computed brick geometry for one grid size.
type BrickLayout struct {
	Rows, Cols int
	BrickW     float64
	BrickH     float64
	Padding    float64
	OffsetX    float64 // Absolute x of the first column
	OffsetY    float64 // Absolute y of the first row
}

// BrickRect returns the rectangle of the brick at (row, col).
func (l BrickLayout) BrickRect(row, col int) core.Rect {
	return core.NewRect(
		float64(col)*(l.BrickW+l.Padding)+l.OffsetX,
		float64(row)*(l.BrickH+l.Padding)+l.OffsetY,
		l.BrickW,
		l.BrickH,
	)
}

// GridRect returns the bounding rectangle of the whole grid.
func (l BrickLayout) GridRect() core.Rect {
	return core.NewRect(
		l.OffsetX,
		l.OffsetY,
		float64(l.Cols)*l.BrickW+float64(l.Cols-1)*l.Padding,
		float64(l.Rows)*l.BrickH+float64(l.Rows-1)*l.Padding,
	)
}

// FieldFromConfig derives the brick field from the arena and its margins.
func FieldFromConfig(arena config.ArenaConfig, field config.FieldConfig) (core.Rect, error) {
	w := arena.Width - 2*field.MarginX
	h := (arena.Height - field.MarginTop - field.MarginBottom) * field.HeightRatio
	if w <= 0 || h <= 0 {
		return core.Rect{}, fmt.Errorf("%w: field %.1fx%.1f", ErrFieldTooSmall, w, h)
	}
	return core.NewRect(field.MarginX, field.MarginTop, w, h), nil
}

// ComputeLayout sizes and centers a rows x cols brick grid inside field.
//
// The tighter axis sets the brick size, the other dimension follows from the
// aspect ratio. Padding is then spread along the looser axis, capped so the
// tighter axis still fits inside the field.
func ComputeLayout(rows, cols int, field core.Rect, p LayoutParams) (BrickLayout, error) {
	if rows < 1 || cols < 1 {
		return BrickLayout{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	if p.AspectRatio <= 0 {
		return BrickLayout{}, fmt.Errorf("breakout: aspect ratio must be positive, got %v", p.AspectRatio)
	}

	r, c := float64(rows), float64(cols)
	maxW := (field.W - (c+1)*p.MinPadding) / c
	maxH := (field.H - (r+1)*p.MinPadding) / r
	if maxW <= 0 || maxH <= 0 {
		return BrickLayout{}, fmt.Errorf("%w: %dx%d in %.1fx%.1f", ErrFieldTooSmall, rows, cols, field.W, field.H)
	}

	var bw, bh, pad float64
	if maxW/maxH > p.AspectRatio {
		// Height-limited: spread the spare width
		bh = maxH
		bw = bh * p.AspectRatio
		pad = (field.W - c*bw) / (c + 1)
		if rows > 1 {
			pad = min(pad, (field.H-r*bh)/(r-1))
		}
	} else {
		// Width-limited: spread the spare height
		bw = maxW
		bh = bw / p.AspectRatio
		pad = (field.H - r*bh) / (r + 1)
		if cols > 1 {
			pad = min(pad, (field.W-c*bw)/(c-1))
		}
	}
	pad = max(pad, 0)

	gridW := c*bw + (c-1)*pad
	gridH := r*bh + (r-1)*pad

	return BrickLayout{
		Rows:    rows,
		Cols:    cols,
		BrickW:  bw,
		BrickH:  bh,
		Padding: pad,
		OffsetX: field.X + (field.W-gridW)/2,
		OffsetY: field.Y + (field.H-gridH)/2,
	}, nil
}
