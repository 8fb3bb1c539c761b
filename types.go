package cosmic

import "math"

// Point is a position in the host surface's coordinate space.
type Point struct {
	X, Y float32
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float32 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return float32(math.Hypot(dx, dy))
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H float32
}

// Rect is a rectangle with top-left position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Position returns the rectangle's top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}
