package breakout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func defaultField(t *testing.T) core.Rect {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	field, err := FieldFromConfig(cfg.Arena, cfg.Field)
	require.NoError(t, err)
	return field
}

var defaultParams = LayoutParams{AspectRatio: 2.5, MinPadding: 4}

func TestFieldFromConfig(t *testing.T) {
	field := defaultField(t)
	assert.Equal(t, core.NewRect(40, 80, 720, 315), field)

	cfg := config.DefaultBreakoutConfig()
	cfg.Field.MarginX = 400
	_, err := FieldFromConfig(cfg.Arena, cfg.Field)
	assert.ErrorIs(t, err, ErrFieldTooSmall)
}

func TestComputeLayoutDefaultLevel(t *testing.T) {
	layout, err := ComputeLayout(8, 10, defaultField(t), defaultParams)
	require.NoError(t, err)

	// 720 wide field, 11 gaps of 4 -> 67.6 wide bricks
	assert.InDelta(t, 67.6, layout.BrickW, 1e-9)
	assert.InDelta(t, 67.6/2.5, layout.BrickH, 1e-9)
	assert.GreaterOrEqual(t, layout.Padding, 4.0)
}

func TestComputeLayoutCentered(t *testing.T) {
	fields := []core.Rect{
		defaultField(t),
		core.NewRect(0, 0, 100, 400),
		core.NewRect(10, 20, 1000, 50),
	}

	for _, field := range fields {
		for rows := 1; rows <= 9; rows++ {
			for cols := 1; cols <= 15; cols++ {
				layout, err := ComputeLayout(rows, cols, field, defaultParams)
				if err != nil {
					require.ErrorIs(t, err, ErrFieldTooSmall, "rows=%d cols=%d", rows, cols)
					continue
				}

				grid := layout.GridRect()
				assert.InDelta(t, grid.X-field.X, field.Right()-grid.Right(), 1e-9,
					"horizontal centering rows=%d cols=%d", rows, cols)
				assert.InDelta(t, grid.Y-field.Y, field.Bottom()-grid.Bottom(), 1e-9,
					"vertical centering rows=%d cols=%d", rows, cols)
				assert.True(t, field.ContainsRect(grid, 1e-9),
					"grid %+v escapes field %+v (rows=%d cols=%d)", grid, field, rows, cols)
				assert.GreaterOrEqual(t, layout.Padding, 0.0)
				assert.InDelta(t, 2.5, layout.BrickW/layout.BrickH, 1e-9)
			}
		}
	}
}

func TestComputeLayoutNoOverlap(t *testing.T) {
	layout, err := ComputeLayout(8, 14, defaultField(t), defaultParams)
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	for row := range 8 {
		for col := range 13 {
			a := layout.BrickRect(row, col)
			b := layout.BrickRect(row, col+1)
			if a.Intersects(b) {
				t.Errorf("bricks (%d,%d) and (%d,%d) overlap", row, col, row, col+1)
			}
		}
	}
}

func TestComputeLayoutSingleRowAndColumn(t *testing.T) {
	field := defaultField(t)

	layout, err := ComputeLayout(1, 1, field, defaultParams)
	require.NoError(t, err)
	assert.True(t, field.ContainsRect(layout.GridRect(), 1e-9))
	assert.True(t, layout.Padding >= 0)

	layout, err = ComputeLayout(1, 12, field, defaultParams)
	require.NoError(t, err)
	assert.True(t, field.ContainsRect(layout.GridRect(), 1e-9))
}

func TestComputeLayoutErrors(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		field      core.Rect
		want       error
	}{
		{"zero rows", 0, 10, core.NewRect(0, 0, 100, 100), ErrInvalidGrid},
		{"negative cols", 5, -1, core.NewRect(0, 0, 100, 100), ErrInvalidGrid},
		{"field too narrow", 1, 30, core.NewRect(0, 0, 100, 100), ErrFieldTooSmall},
		{"field too short", 30, 1, core.NewRect(0, 0, 100, 100), ErrFieldTooSmall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeLayout(tc.rows, tc.cols, tc.field, defaultParams)
			if !errors.Is(err, tc.want) {
				t.Errorf("ComputeLayout() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestComputeLayoutDeterministic(t *testing.T) {
	a, errA := ComputeLayout(8, 13, defaultField(t), defaultParams)
	b, errB := ComputeLayout(8, 13, defaultField(t), defaultParams)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}
