package breakout

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestPitch(t *testing.T) {
	tests := []struct {
		kind       CollisionKind
		multiplier int
		want       float64
	}{
		{CollisionPaddle, 1, 0.8},
		{CollisionWall, 3, 1.2},
		{CollisionBrick, 1, 1.1},
		{CollisionBrick, 5, 1.5},
		{CollisionBrick, 8, 1.8},
		{CollisionBrick, 20, 2.0},
	}

	for _, tc := range tests {
		if got := Pitch(tc.kind, tc.multiplier); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Pitch(%v, %d) = %v, expected %v", tc.kind, tc.multiplier, got, tc.want)
		}
	}
}

func TestLogCueSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	LogCueSink{Logger: logger}.OnCollision(CollisionBrick, 3)

	out := buf.String()
	if !strings.Contains(out, "cue") || !strings.Contains(out, "brick") {
		t.Errorf("log output missing cue details: %q", out)
	}

	// A sink without a logger is a no-op
	LogCueSink{}.OnCollision(CollisionWall, 1)
}
