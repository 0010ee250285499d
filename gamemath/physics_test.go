package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 16.0, ClampSpeed(20, 16))
	assert.Equal(t, -16.0, ClampSpeed(-20, 16))
	assert.Equal(t, 3.5, ClampSpeed(3.5, 16))
}

func TestRects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name     string
		b        Rect
		overlaps bool
		touches  bool
	}{
		{"Inside", Rect{2, 2, 2, 2}, true, true},
		{"Partial", Rect{5, 5, 10, 10}, true, true},
		{"Flush right", Rect{10, 0, 5, 5}, false, true},
		{"Flush below", Rect{0, 10, 5, 5}, false, true},
		{"Within slop", Rect{0, 10.005, 5, 5}, false, true},
		{"Apart", Rect{20, 20, 5, 5}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, Overlaps(a, tt.b))
			assert.Equal(t, tt.overlaps, Overlaps(tt.b, a))
			assert.Equal(t, tt.touches, Touches(a, tt.b, 0.01))
			assert.Equal(t, tt.touches, Touches(tt.b, a, 0.01))
		})
	}

	assert.True(t, OverlapsX(a, Rect{5, 100, 10, 10}))
	assert.False(t, OverlapsX(a, Rect{10, 0, 10, 10}))
}
