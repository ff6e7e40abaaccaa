package pathfinding

import (
	"errors"
	"slices"

	"github.com/zyedidia/generic/heap"
)

const (
	DefaultWidth  = 30
	DefaultHeight = 30
)

var ErrEmptyBody = errors.New("body must contain at least the head")

type Config struct {
	Width  int
	Height int
}

func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

// Planner finds shortest move sequences on a fixed-size board. It holds no
// mutable state, so one value can serve concurrent callers.
type Planner struct {
	width  int
	height int
}

func NewPlanner(cfg Config) Planner {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	return Planner{width: cfg.Width, height: cfg.Height}
}

func (p Planner) Width() int  { return p.width }
func (p Planner) Height() int { return p.height }

// FindPath plans on the default board.
func FindPath(body []Position, target Position) ([]Direction, error) {
	return NewPlanner(DefaultConfig()).FindPath(body, target)
}

type frontierEntry struct {
	cost Cost
	pos  Position
}

func frontierLess(a, b frontierEntry) bool {
	if a.cost != b.cost {
		return a.cost.Less(b.cost)
	}
	return a.pos.Less(b.pos)
}

// FindPath returns the moves that take body[0] to target without entering any
// body cell. The result is empty when the target is unreachable or already
// under the head. Out-of-bounds input is rejected with *OutOfBoundsError.
func (p Planner) FindPath(body []Position, target Position) ([]Direction, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	if err := p.validate(body, target); err != nil {
		return nil, err
	}
	head := body[0]
	if head == target {
		return []Direction{}, nil
	}

	board := NewBoard(p.width, p.height, body, target)
	board.At(head).Cost = ComputeCost(0, head, target)

	frontier := heap.New[frontierEntry](frontierLess)
	frontier.Push(frontierEntry{cost: board.At(head).Cost, pos: head})

	for frontier.Size() > 0 {
		cur, _ := frontier.Pop()
		for _, dir := range Directions {
			next := cur.pos.Add(dir)
			if !board.InBounds(next) {
				continue
			}
			node := board.At(next)
			if node.Kind == CellOccupied {
				continue
			}
			if node.Cost.G <= cur.cost.G+1 {
				continue
			}
			back := dir.Opposite()
			node.Back = &back
			if node.Kind == CellTarget {
				return reconstruct(board, next), nil
			}
			node.Cost = ComputeCost(cur.cost.G+1, next, target)
			frontier.Push(frontierEntry{cost: node.Cost, pos: next})
		}
	}
	return []Direction{}, nil
}

func (p Planner) validate(body []Position, target Position) error {
	for _, pos := range body {
		if !pos.InBounds(p.width, p.height) {
			return &OutOfBoundsError{Pos: pos, Width: p.width, Height: p.height}
		}
	}
	if !target.InBounds(p.width, p.height) {
		return &OutOfBoundsError{Pos: target, Width: p.width, Height: p.height}
	}
	return nil
}

// reconstruct walks back pointers from the target to the head.
func reconstruct(board *Board, target Position) []Direction {
	path := make([]Direction, 0, board.Width()+board.Height())
	pos := target
	for {
		back := board.At(pos).Back
		if back == nil {
			break
		}
		path = append(path, back.Opposite())
		pos = pos.Add(*back)
	}
	slices.Reverse(path)
	return path
}
