package pathfinding

import "fmt"

// Position is a board cell. The origin is the bottom-left cell; y grows upward.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Add returns the neighbouring cell in direction d. It does not check bounds.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Less orders positions by x, then y.
func (p Position) Less(other Position) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Position) Manhattan(other Position) uint32 {
	return uint32(abs(p.X-other.X) + abs(p.Y-other.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
