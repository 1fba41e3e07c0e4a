package slider

import "math"

// Point is a touch position in CSS pixels
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Direction is the outcome of a swipe
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

// Wrap maps any integer onto [0, n). It returns 0 when n is not positive.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// NextIndex returns the index after i in a ring of n
func NextIndex(i, n int) int {
	return Wrap(i+1, n)
}

// PrevIndex returns the index before i in a ring of n
func PrevIndex(i, n int) int {
	return Wrap(i-1, n)
}

// SwipeDirection classifies a gesture. The horizontal travel must beat
// both the vertical travel and the threshold; a leftward swipe advances.
func SwipeDirection(start, end Point, threshold float64) Direction {
	dx := start.X - end.X
	dy := start.Y - end.Y

	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= threshold {
		return None
	}
	if dx > 0 {
		return Forward
	}
	return Backward
}
