package breakout

import (
	"reflect"
	"testing"
)

func buildLevel(t *testing.T, n int) *Grid {
	t.Helper()
	def := BuiltinLevels()[n-1]
	layout, err := ComputeLayout(def.Rows, def.Cols, defaultField(t), defaultParams)
	if err != nil {
		t.Fatalf("ComputeLayout() failed: %v", err)
	}
	return BuildGrid(def, layout)
}

func TestBuildGridCounts(t *testing.T) {
	for _, def := range BuiltinLevels() {
		g := buildLevel(t, def.Number)
		want := def.BrickCount()
		if g.Total != want || g.Active != want {
			t.Errorf("level %d: Total=%d Active=%d, expected %d", def.Number, g.Total, g.Active, want)
		}
		if g.CountVisible() != g.Active {
			t.Errorf("level %d: CountVisible()=%d, Active=%d", def.Number, g.CountVisible(), g.Active)
		}
	}
}

func TestBuildGridPositions(t *testing.T) {
	g := buildLevel(t, 2)
	l := g.Layout

	for row := range g.Rows {
		for col := range g.Cols {
			b := g.Bricks[row][col]
			wantX := float64(col)*(l.BrickW+l.Padding) + l.OffsetX
			wantY := float64(row)*(l.BrickH+l.Padding) + l.OffsetY
			if b.Rect.X != wantX || b.Rect.Y != wantY {
				t.Errorf("brick (%d,%d) at (%v,%v), expected (%v,%v)", row, col, b.Rect.X, b.Rect.Y, wantX, wantY)
			}
			if b.Exists != (col%2 == row%2) {
				t.Errorf("brick (%d,%d) Exists=%v", row, col, b.Exists)
			}
			if b.Visible != b.Exists {
				t.Errorf("fresh brick (%d,%d) Visible=%v, Exists=%v", row, col, b.Visible, b.Exists)
			}
		}
	}
}

func TestBuildGridIdempotent(t *testing.T) {
	a := buildLevel(t, 4)
	a.Destroy(0, 6)

	b := buildLevel(t, 4)
	c := buildLevel(t, 4)
	if !reflect.DeepEqual(b, c) {
		t.Error("rebuilding the same level should give identical grids")
	}
	if b.Active != b.Total {
		t.Error("rebuilt grid should start fully visible")
	}
}

func TestGridDestroy(t *testing.T) {
	g := buildLevel(t, 2)
	total := g.Total

	if !g.Destroy(0, 0) {
		t.Fatal("Destroy(0,0) should hit a visible brick")
	}
	if g.Active != total-1 {
		t.Errorf("Active = %d, expected %d", g.Active, total-1)
	}
	if g.Destroy(0, 0) {
		t.Error("destroying the same brick twice should fail")
	}
	if g.Destroy(0, 1) {
		t.Error("destroying a gap should fail")
	}
	if g.Destroy(-1, 0) || g.Destroy(0, 99) {
		t.Error("destroying outside the grid should fail")
	}
	if g.Active != total-1 {
		t.Errorf("failed destroys changed Active to %d", g.Active)
	}
	if g.Total != total {
		t.Errorf("Total changed to %d", g.Total)
	}
}

func TestGridCompleteIffNoVisible(t *testing.T) {
	g := buildLevel(t, 3)
	prev := g.Active

	for row := range g.Rows {
		for col := range g.Cols {
			g.Destroy(row, col)
			if g.Active > prev {
				t.Fatalf("Active increased from %d to %d", prev, g.Active)
			}
			prev = g.Active
			if g.Complete() != (g.CountVisible() == 0) {
				t.Fatalf("Complete()=%v with %d visible bricks", g.Complete(), g.CountVisible())
			}
		}
	}

	if !g.Complete() {
		t.Error("grid should be complete after destroying every brick")
	}
}
