package core

// Area represents a rectangular block of grid cells
type Area struct {
	// Origin corner (lowest coordinates)
	X int `json:"x"`
	Y int `json:"y"`

	// Dimensions (minimum 1x1)
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Min returns the origin cell
func (a Area) Min() Point {
	return Point{X: a.X, Y: a.Y}
}

// Max returns the last cell inside the area
func (a Area) Max() Point {
	return Point{X: a.X + a.Width - 1, Y: a.Y + a.Height - 1}
}

// Contains checks if point is within area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Overlaps reports whether two areas share at least one cell
func (a Area) Overlaps(b Area) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// Each calls fn for every cell, X-major then Y, matching room scan order
func (a Area) Each(fn func(p Point)) {
	for x := a.X; x < a.X+a.Width; x++ {
		for y := a.Y; y < a.Y+a.Height; y++ {
			fn(Point{X: x, Y: y})
		}
	}
}
