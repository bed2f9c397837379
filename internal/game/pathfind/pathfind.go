// Package pathfind implements grid-based A* routing for room avatars.
package pathfind

import (
	"errors"
	"fmt"

	"github.com/vleezy/habgo/internal/model"
)

// ErrOutOfBounds is returned when a start or end coordinate does not
// address a tile of the searched grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// Movement costs, fixed-point so the hot path stays integer-only:
// 10 per orthogonal step, 14 (~10*sqrt2) per diagonal step.
const (
	CostOrthogonal int32 = 10
	CostDiagonal   int32 = 14
)

const (
	// DefaultMaxIterations caps node expansions per call so a search over a
	// degenerate grid cannot spin forever. Room grids stay far below it.
	DefaultMaxIterations = 7000

	// initialCapacity pre-sizes node storage to avoid reallocation churn
	// during expansion.
	initialCapacity = 200
)

// Grid is the walkability surface the engine searches over. The room
// subsystem supplies it; the engine only ever reads walkability.
type Grid interface {
	// InBounds reports whether pos addresses a tile of the grid.
	InBounds(pos model.Position) bool
	// IsWalkable reports whether an actor may step onto pos right now.
	// Must return false for out-of-bounds positions.
	IsWalkable(pos model.Position) bool
}

// The 8 directions an avatar can move in: orthogonal first, diagonals after.
var directions = [8]struct{ dx, dy int32 }{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{-1, -1}, {1, 1}, {-1, 1}, {1, -1},
}

// noParent marks the root node of a search.
const noParent int32 = -1

// node is the transient search-state record. Parents are indexes into the
// call-local arena, never pointers, so nothing can outlive the call.
type node struct {
	pos    model.Position
	parent int32
	gCost  int32 // accumulated cost from start
	hCost  int32 // heuristic estimate to the goal
}

func (n node) totalCost() int32 {
	return n.gCost + n.hCost
}

// Engine runs A* searches. Stateless per invocation: every CalculatePath
// call owns its node arena, so one Engine may serve any number of
// concurrent callers.
type Engine struct {
	maxIterations int
}

// New creates an engine with the default expansion cap.
func New() *Engine {
	return NewWithMaxIterations(DefaultMaxIterations)
}

// NewWithMaxIterations creates an engine with a custom expansion cap.
// Values below 1 fall back to the default.
func NewWithMaxIterations(maxIterations int) *Engine {
	if maxIterations < 1 {
		maxIterations = DefaultMaxIterations
	}
	return &Engine{maxIterations: maxIterations}
}

// CalculatePath finds a route from start to end across grid.
//
// The returned path runs start to end inclusive; consecutive positions
// always differ by one of the 8 direction vectors. An unreachable end
// yields a nil path and no error. Out-of-bounds start or end yields
// ErrOutOfBounds. start == end yields a single-element path.
func (e *Engine) CalculatePath(grid Grid, start, end model.Position) ([]model.Position, error) {
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, start.X, start.Y)
	}
	if !grid.InBounds(end) {
		return nil, fmt.Errorf("%w: end (%d,%d)", ErrOutOfBounds, end.X, end.Y)
	}
	if start == end {
		return []model.Position{start}, nil
	}

	s := newSearch(end)
	s.push(start, noParent, 0)

	for iter := 0; iter < e.maxIterations; iter++ {
		if len(s.open) == 0 {
			return nil, nil
		}

		cur := s.popLowest()
		curPos := s.arena[cur].pos
		if curPos == end {
			return s.reconstruct(cur), nil
		}
		s.closed[curPos] = struct{}{}

		for i, d := range directions {
			next := curPos.Translate(d.dx, d.dy)
			if !grid.IsWalkable(next) {
				continue
			}
			if _, done := s.closed[next]; done {
				continue
			}

			step := CostOrthogonal
			if i >= 4 {
				step = CostDiagonal
			}
			s.relax(cur, next, step)
		}
	}

	// Expansion cap hit: treat like an exhausted open set.
	return nil, nil
}

// search holds the per-call state. The arena exclusively owns every node of
// one CalculatePath call; only the reconstructed positions escape.
type search struct {
	end     model.Position
	arena   []node
	open    []int32                       // arena indexes, insertion-ordered
	openIdx map[model.Position]int32      // position → arena index, open nodes only
	closed  map[model.Position]struct{}   // positions already expanded
}

func newSearch(end model.Position) *search {
	return &search{
		end:     end,
		arena:   make([]node, 0, initialCapacity),
		open:    make([]int32, 0, initialCapacity),
		openIdx: make(map[model.Position]int32, initialCapacity),
		closed:  make(map[model.Position]struct{}, initialCapacity),
	}
}

// push creates a node for pos and inserts it into the open set.
// The caller must ensure pos has no node yet; together with relax this
// keeps at most one node per position across the open and closed sets.
func (s *search) push(pos model.Position, parent, gCost int32) int32 {
	idx := int32(len(s.arena))
	s.arena = append(s.arena, node{
		pos:    pos,
		parent: parent,
		gCost:  gCost,
		hCost:  heuristic(pos, s.end),
	})
	s.open = append(s.open, idx)
	s.openIdx[pos] = idx
	return idx
}

// popLowest removes and returns the open node with the lowest total cost.
// Linear scan; replacement only on strictly lower cost, so ties keep the
// earliest-inserted candidate and results stay reproducible.
func (s *search) popLowest() int32 {
	best := 0
	for i := 1; i < len(s.open); i++ {
		if s.arena[s.open[i]].totalCost() < s.arena[s.open[best]].totalCost() {
			best = i
		}
	}
	idx := s.open[best]
	s.open = append(s.open[:best], s.open[best+1:]...)
	delete(s.openIdx, s.arena[idx].pos)
	return idx
}

// relax offers pos a route through the node at cur. If pos is already in
// the open set the candidate cost is compared against the neighbor's own
// stored gCost, and a cheaper route reparents it; otherwise a new node is
// pushed.
func (s *search) relax(cur int32, pos model.Position, stepCost int32) {
	gCost := s.arena[cur].gCost + stepCost
	if idx, ok := s.openIdx[pos]; ok {
		if gCost < s.arena[idx].gCost {
			s.arena[idx].gCost = gCost
			s.arena[idx].parent = cur
		}
		return
	}
	s.push(pos, cur, gCost)
}

// reconstruct accumulates positions along the parent chain from idx back to
// the root and reverses them so the path runs start to end.
func (s *search) reconstruct(idx int32) []model.Position {
	path := make([]model.Position, 0, 16)
	for i := idx; i != noParent; i = s.arena[i].parent {
		path = append(path, s.arena[i].pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// heuristic is the scaled Manhattan distance from pos to the goal.
func heuristic(pos, end model.Position) int32 {
	return CostOrthogonal * pos.ManhattanDistance(end)
}
