package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Brick is one cell of the grid.
// Gap cells never exist and are never visible.
type Brick struct {
	Row, Col int
	Rect     core.Rect
	Exists   bool // Placed by the level pattern
	Visible  bool // Not yet destroyed
}

// Grid is the brick grid of the running level, indexed [row][col].
type Grid struct {
	Rows, Cols int
	Layout     BrickLayout
	Bricks     [][]Brick
	Total      int // Bricks placed by the pattern
	Active     int // Bricks still visible
}

// BuildGrid creates a fresh grid for def using layout.
// Every call starts from scratch, so rebuilding a level is idempotent.
func BuildGrid(def LevelDef, layout BrickLayout) *Grid {
	g := &Grid{
		Rows:   def.Rows,
		Cols:   def.Cols,
		Layout: layout,
		Bricks: make([][]Brick, def.Rows),
	}

	for row := range def.Rows {
		g.Bricks[row] = make([]Brick, def.Cols)
		for col := range def.Cols {
			included := def.Includes(row, col)
			g.Bricks[row][col] = Brick{
				Row:     row,
				Col:     col,
				Rect:    layout.BrickRect(row, col),
				Exists:  included,
				Visible: included,
			}
			if included {
				g.Total++
				g.Active++
			}
		}
	}

	return g
}

// Destroy hides the brick at (row, col).
// Returns false if the brick was already gone or is a gap.
func (g *Grid) Destroy(row, col int) bool {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return false
	}
	b := &g.Bricks[row][col]
	if !b.Visible {
		return false
	}
	b.Visible = false
	g.Active--
	return true
}

// Complete reports whether every brick has been destroyed.
func (g *Grid) Complete() bool {
	return g.Active == 0
}

// CountVisible recounts visible bricks by scanning the grid.
func (g *Grid) CountVisible() int {
	n := 0
	for _, row := range g.Bricks {
		for _, b := range row {
			if b.Visible {
				n++
			}
		}
	}
	return n
}
