package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b share interior area. Flush edges don't count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Touches reports whether a and b overlap or are within slop of each other.
func Touches(a, b Rect, slop float64) bool {
	return a.X <= b.X+b.W+slop && b.X <= a.X+a.W+slop &&
		a.Y <= b.Y+b.H+slop && b.Y <= a.Y+a.H+slop
}

// OverlapsX reports whether a and b overlap horizontally.
func OverlapsX(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}
