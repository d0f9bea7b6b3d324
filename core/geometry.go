package core

// Point is a position in sprite pixel space
type Point struct {
	X, Y float64
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rect is an axis-aligned box in sprite pixel space
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Contains reports whether p lies inside r, right and bottom edges exclusive
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether two rects share any area
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
