// Package breakout implements the simulation core of a brick breaker:
// layout geometry, the level catalog, ball physics, combo scoring and the
// timed transition between levels.
package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Pattern decides whether the cell (row, col) of a rows x cols grid holds a brick.
// Patterns must be pure: the same arguments always give the same answer.
type Pattern func(row, col, rows, cols int) bool

// LevelDef describes one level of the catalog.
type LevelDef struct {
	Number  int
	Name    string
	Rows    int
	Cols    int
	Pattern Pattern // nil means a full grid
}

// Includes reports whether (row, col) holds a brick.
// Cells outside the grid are never included.
func (d LevelDef) Includes(row, col int) bool {
	if row < 0 || col < 0 || row >= d.Rows || col >= d.Cols {
		return false
	}
	if d.Pattern == nil {
		return true
	}
	return d.Pattern(row, col, d.Rows, d.Cols)
}

// BrickCount returns the number of cells the pattern fills.
func (d LevelDef) BrickCount() int {
	n := 0
	for row := range d.Rows {
		for col := range d.Cols {
			if d.Includes(row, col) {
				n++
			}
		}
	}
	return n
}

// Catalog maps level numbers (1..Max) to level definitions.
type Catalog struct {
	levels []LevelDef
}

// NewCatalog builds the catalog from the built-in levels followed by the
// custom levels from configuration.
func NewCatalog(custom []config.LevelSpec) (*Catalog, error) {
	levels := BuiltinLevels()
	for _, spec := range custom {
		def, err := ParseLevel(spec.Name, spec.Rows)
		if err != nil {
			return nil, err
		}
		def.Number = len(levels) + 1
		levels = append(levels, def)
	}
	return &Catalog{levels: levels}, nil
}

// Level returns the definition for level n.
func (c *Catalog) Level(n int) (LevelDef, error) {
	if n < 1 || n > len(c.levels) {
		return LevelDef{}, fmt.Errorf("%w: %d not in [1, %d]", ErrLevelOutOfRange, n, len(c.levels))
	}
	return c.levels[n-1], nil
}

// Max returns the highest level number.
func (c *Catalog) Max() int {
	return len(c.levels)
}

// Levels returns all definitions in order.
func (c *Catalog) Levels() []LevelDef {
	out := make([]LevelDef, len(c.levels))
	copy(out, c.levels)
	return out
}

// BuiltinLevels returns the six standard levels.
func BuiltinLevels() []LevelDef {
	return []LevelDef{
		{Number: 1, Name: "Full Wall", Rows: 8, Cols: 10},
		{Number: 2, Name: "Checkerboard", Rows: 8, Cols: 10, Pattern: checkerboard},
		{Number: 3, Name: "Diamond", Rows: 8, Cols: 11, Pattern: diamond},
		{Number: 4, Name: "Pyramid", Rows: 8, Cols: 12, Pattern: pyramid},
		{Number: 5, Name: "Spiral", Rows: 8, Cols: 13, Pattern: spiral},
		{Number: 6, Name: "Staircase", Rows: 8, Cols: 14, Pattern: staircase},
	}
}

func inGrid(row, col, rows, cols int) bool {
	return row >= 0 && col >= 0 && row < rows && col < cols
}

func checkerboard(row, col, rows, cols int) bool {
	if !inGrid(row, col, rows, cols) {
		return false
	}
	return col%2 == row%2
}

func diamond(row, col, rows, cols int) bool {
	if !inGrid(row, col, rows, cols) {
		return false
	}
	return core.Abs(col-cols/2)+core.Abs(row-rows/2) < 5
}

func pyramid(row, col, rows, cols int) bool {
	if !inGrid(row, col, rows, cols) {
		return false
	}
	maxWidth := min(row+1, rows-row) * 2
	return core.Abs(col-cols/2) < maxWidth/2
}

func spiral(row, col, rows, cols int) bool {
	if !inGrid(row, col, rows, cols) || col == 0 {
		return false
	}
	dx := float64(col - cols/2)
	dy := float64(row - rows/2)
	angle := math.Atan2(dy, dx)
	dist := math.Hypot(dx, dy)
	return dist < 4+(angle+math.Pi)/(2*math.Pi)*3
}

func staircase(row, col, rows, cols int) bool {
	if !inGrid(row, col, rows, cols) || col == 0 {
		return false
	}
	return (row+col)%2 == 0 && row >= rows-(row/2)*2
}

// ParseLevel compiles an ASCII mask into a level definition.
// '#' marks a brick, any other character a gap. Short rows are padded with gaps.
func ParseLevel(name string, lines []string) (LevelDef, error) {
	if len(lines) == 0 {
		return LevelDef{}, fmt.Errorf("%w: %q has no rows", ErrInvalidLevel, name)
	}

	cols := 0
	for _, line := range lines {
		cols = max(cols, len(line))
	}

	mask := make([][]bool, len(lines))
	bricks := 0
	for row, line := range lines {
		mask[row] = make([]bool, cols)
		for col := range len(line) {
			if line[col] == '#' {
				mask[row][col] = true
				bricks++
			}
		}
	}
	if bricks == 0 {
		return LevelDef{}, fmt.Errorf("%w: %q has no bricks", ErrInvalidLevel, name)
	}

	if strings.TrimSpace(name) == "" {
		name = "Custom"
	}

	return LevelDef{
		Name: name,
		Rows: len(lines),
		Cols: cols,
		Pattern: func(row, col, rows, cols int) bool {
			if !inGrid(row, col, rows, cols) || row >= len(mask) || col >= len(mask[row]) {
				return false
			}
			return mask[row][col]
		},
	}, nil
}
