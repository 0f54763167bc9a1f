package route

import "kitchenbot.ai/internal/sim/kitchen"

type StepKind uint8

const (
	Unreachable StepKind = iota
	Arrived
	Move
)

func (k StepKind) String() string {
	switch k {
	case Arrived:
		return "ARRIVED"
	case Move:
		return "MOVE"
	default:
		return "UNREACHABLE"
	}
}

// Step is the router's answer: stay (Arrived), take one unit move, or give up.
type Step struct {
	Kind StepKind
	DX   int
	DY   int
}

// Fixed neighbor order: right, left, down, up. Among equal-length paths the
// first one expanded under this order wins.
var dirs = [4]kitchen.Pos{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// NextStep runs a breadth-first search from start over walkable cells inside
// a width x height grid and returns the first move toward the nearest cell
// accepted by goal. start is goal-tested before anything else and does not
// itself need to be walkable.
//
// The search is recomputed on every call.
func NextStep(start kitchen.Pos, width, height int, walkable, goal func(kitchen.Pos) bool) Step {
	if goal(start) {
		return Step{Kind: Arrived}
	}

	type qItem struct {
		p     kitchen.Pos
		first kitchen.Pos // offset of the first move out of start
	}

	inBounds := func(p kitchen.Pos) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
	}

	visited := make(map[kitchen.Pos]bool, 256)
	visited[start] = true
	queue := make([]qItem, 0, 256)
	queue = append(queue, qItem{p: start})

	for head := 0; head < len(queue); head++ {
		it := queue[head]
		if head > 0 && goal(it.p) {
			return Step{Kind: Move, DX: it.first.X, DY: it.first.Y}
		}
		for _, d := range dirs {
			np := kitchen.Pos{X: it.p.X + d.X, Y: it.p.Y + d.Y}
			if visited[np] || !inBounds(np) || !walkable(np) {
				continue
			}
			visited[np] = true
			first := it.first
			if head == 0 {
				first = d
			}
			queue = append(queue, qItem{p: np, first: first})
		}
	}
	return Step{Kind: Unreachable}
}

// Within returns a goal accepting every cell at Chebyshev distance <= r of
// target, so r=1 stops on any cell that can interact with target.
func Within(target kitchen.Pos, r int) func(kitchen.Pos) bool {
	return func(p kitchen.Pos) bool {
		return kitchen.Chebyshev(p, target) <= r
	}
}

// OnMap adapts NextStep to a kitchen map's bounds and walkability.
func OnMap(m *kitchen.Map, start kitchen.Pos, goal func(kitchen.Pos) bool) Step {
	return NextStep(start, m.Width, m.Height, m.Walkable, goal)
}
