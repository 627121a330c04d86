package world

import "math"

// Room is an axis-aligned rectangle of floor given by two inclusive corners.
// Rooms are plain values; two rooms are equal when their corners are equal.
type Room struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner (inclusive)
}

// NewRoom creates a room from its top-left corner and dimensions.
func NewRoom(x, y, width, height int) Room {
	return Room{X1: x, Y1: y, X2: x + width - 1, Y2: y + height - 1}
}

// Width returns the number of columns covered by the room.
func (r Room) Width() int {
	return r.X2 - r.X1 + 1
}

// Height returns the number of rows covered by the room.
func (r Room) Height() int {
	return r.Y2 - r.Y1 + 1
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Intersects returns true if this room shares at least one cell with another room.
// The test is symmetric: a.Intersects(b) == b.Intersects(a).
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}

// DistanceTo returns the Euclidean distance between the two room centers.
func (r Room) DistanceTo(other Room) float64 {
	x1, y1 := r.Center()
	x2, y2 := other.Center()
	return math.Hypot(float64(x2-x1), float64(y2-y1))
}
