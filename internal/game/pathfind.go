package game

import (
	"container/heap"
	"math"
)

// Cell is a grid coordinate pair used by the path finder.
type Cell struct {
	X, Y int
}

type pathNode struct {
	cell   Cell
	g, h   float64
	order  int // insertion order, breaks f then g ties
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	fi := ol[i].g + ol[i].h
	fj := ol[j].g + ol[j].h
	if fi != fj {
		return fi < fj
	}
	if ol[i].g != ol[j].g {
		return ol[i].g < ol[j].g
	}
	return ol[i].order < ol[j].order
}
func (ol openList) Swap(i, j int) { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x any)   { n := x.(*pathNode); n.index = len(*ol); *ol = append(*ol, n) }
func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

var pathDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func pathHeuristic(a, b Cell) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// FindPath runs A* from start to goal over the grid's free cells, 8-connected
// with Euclidean step costs (1 for cardinal, √2 for diagonal). maxExpansions
// bounds the number of nodes popped from the open list; when it is exceeded
// the search aborts and returns nil. A nil result means "no path found this
// attempt": blocked or out-of-bounds endpoints and exhausted budgets look the
// same to the caller, which falls back to direct-vector steering until the
// next scheduled retry.
func FindPath(ng *NavGrid, start, goal Cell, maxExpansions int) []Cell {
	if start == goal {
		return []Cell{start}
	}
	if ng.IsBlocked(start.X, start.Y) || ng.IsBlocked(goal.X, goal.Y) {
		return nil
	}

	key := func(c Cell) int { return c.Y*ng.cols + c.X }

	order := 0
	startNode := &pathNode{cell: start, h: pathHeuristic(start, goal)}
	ol := &openList{startNode}
	heap.Init(ol)

	best := make(map[int]float64, 64)
	best[key(start)] = 0

	expanded := 0
	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		expanded++
		if expanded > maxExpansions {
			return nil
		}
		if cur.cell == goal {
			return reconstruct(cur)
		}
		// A stale duplicate: a cheaper route to this cell was already expanded.
		if g, ok := best[key(cur.cell)]; ok && cur.g > g {
			continue
		}

		for _, d := range pathDirs {
			next := Cell{cur.cell.X + d[0], cur.cell.Y + d[1]}
			if ng.IsBlocked(next.X, next.Y) {
				continue
			}
			cost := 1.0
			if d[0] != 0 && d[1] != 0 {
				cost = math.Sqrt2
			}
			tentative := cur.g + cost
			if g, ok := best[key(next)]; ok && tentative >= g {
				continue
			}
			best[key(next)] = tentative
			order++
			heap.Push(ol, &pathNode{
				cell:   next,
				g:      tentative,
				h:      pathHeuristic(next, goal),
				order:  order,
				parent: cur,
			})
		}
	}
	return nil
}

func reconstruct(end *pathNode) []Cell {
	var cells []Cell
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// simplifyDotThreshold: consecutive segment directions with a dot product at
// or above this are treated as colinear and the middle point is dropped.
const simplifyDotThreshold = 0.999

// Simplify converts a cell path to world-space waypoints at cell centers,
// dropping interior points where the direction does not change. First and
// last points are always kept, as are points adjacent to zero-length
// segments. Simplifying an already simplified path is a no-op.
func Simplify(ng *NavGrid, cells []Cell) []Vec {
	if len(cells) == 0 {
		return nil
	}
	points := make([]Vec, len(cells))
	for i, c := range cells {
		points[i] = ng.CenterOf(c.X, c.Y)
	}
	return SimplifyPoints(points)
}

// SimplifyPoints is the point-level core of Simplify, usable on any polyline.
func SimplifyPoints(points []Vec) []Vec {
	if len(points) <= 2 {
		return points
	}
	out := make([]Vec, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points)-1; i++ {
		in := points[i].Sub(points[i-1])
		outDir := points[i+1].Sub(points[i])
		if in.LenSq() == 0 || outDir.LenSq() == 0 {
			out = append(out, points[i])
			continue
		}
		if in.Normalized().Dot(outDir.Normalized()) < simplifyDotThreshold {
			out = append(out, points[i])
		}
	}
	out = append(out, points[len(points)-1])
	return out
}
