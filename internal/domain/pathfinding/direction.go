package pathfinding

import (
	"errors"
	"strings"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Directions is the neighbour expansion order used by the search.
var Directions = [4]Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown}

var ErrUnknownDirection = errors.New("unknown direction")

func ParseDirection(raw string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(raw))); d {
	case DirectionLeft, DirectionRight, DirectionUp, DirectionDown:
		return d, nil
	default:
		return "", ErrUnknownDirection
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	default:
		return d
	}
}

func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	case DirectionUp:
		return 0, 1
	case DirectionDown:
		return 0, -1
	default:
		return 0, 0
	}
}
