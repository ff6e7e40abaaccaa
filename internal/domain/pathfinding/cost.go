package pathfinding

import "math"

// Cost is the A* score of a cell: G moves from the head, H estimated moves to
// the target, F = G + H.
type Cost struct {
	F uint32
	G uint32
	H uint32
}

// UnvisitedCost compares greater than any reachable cost.
var UnvisitedCost = Cost{F: math.MaxUint32, G: math.MaxUint32, H: math.MaxUint32}

func ComputeCost(g uint32, pos, target Position) Cost {
	h := pos.Manhattan(target)
	return Cost{F: g + h, G: g, H: h}
}

func (c Cost) Visited() bool {
	return c != UnvisitedCost
}

// Less orders by F, then G, then H.
func (c Cost) Less(other Cost) bool {
	if c.F != other.F {
		return c.F < other.F
	}
	if c.G != other.G {
		return c.G < other.G
	}
	return c.H < other.H
}
