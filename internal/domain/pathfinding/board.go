package pathfinding

import (
	"errors"
	"fmt"
)

type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellOccupied
	CellTarget
)

func (k CellKind) String() string {
	switch k {
	case CellOccupied:
		return "occupied"
	case CellTarget:
		return "target"
	default:
		return "empty"
	}
}

// Node is the per-cell search record. Back, once set, is the direction that
// leads from this cell to its predecessor on the best known path.
type Node struct {
	Kind CellKind
	Cost Cost
	Back *Direction
}

var ErrOutOfBounds = errors.New("position out of bounds")

type OutOfBoundsError struct {
	Pos    Position
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %s on %dx%d board", ErrOutOfBounds.Error(), e.Pos, e.Width, e.Height)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Board is a dense grid of nodes built for a single search.
type Board struct {
	width  int
	height int
	nodes  []Node
}

// NewBoard marks every occupied cell, then the target. A target that overlaps
// the body is a target.
func NewBoard(width, height int, occupied []Position, target Position) *Board {
	b := &Board{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
	}
	for i := range b.nodes {
		b.nodes[i].Cost = UnvisitedCost
	}
	for _, pos := range occupied {
		b.At(pos).Kind = CellOccupied
	}
	b.At(target).Kind = CellTarget
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(pos Position) bool {
	return pos.InBounds(b.width, b.height)
}

// At returns the node at pos. It panics with *OutOfBoundsError when pos is
// off the board.
func (b *Board) At(pos Position) *Node {
	if !b.InBounds(pos) {
		panic(&OutOfBoundsError{Pos: pos, Width: b.width, Height: b.height})
	}
	return &b.nodes[pos.Y*b.width+pos.X]
}
