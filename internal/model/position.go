package model

// Position is a tile coordinate inside a room grid.
// Value type, passed by value (immutable).
type Position struct {
	X int32
	Y int32
}

// NewPosition creates a Position with the given coordinates.
func NewPosition(x, y int32) Position {
	return Position{X: x, Y: y}
}

// Translate returns a new Position shifted by (dx, dy).
func (p Position) Translate(dx, dy int32) Position {
	p.X += dx
	p.Y += dy
	return p
}

// ManhattanDistance returns |dx| + |dy| between p and other.
func (p Position) ManhattanDistance(other Position) int32 {
	return abs32(p.X-other.X) + abs32(p.Y-other.Y)
}

// IsNeighbor reports whether other is one of the 8 cells adjacent to p.
func (p Position) IsNeighbor(other Position) bool {
	if p == other {
		return false
	}
	return abs32(p.X-other.X) <= 1 && abs32(p.Y-other.Y) <= 1
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
