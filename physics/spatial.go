package physics

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/lixenwraith/botball/core"
)

// minExtent keeps degenerate boxes valid for the R-tree, which rejects zero lengths
const minExtent = 1e-6

// obstacleEntry is an R-tree leaf pointing back into the obstacle slice
type obstacleEntry struct {
	index int
	rect  rtreego.Rect
}

func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.rect
}

// ObstacleIndex is a broad-phase R-tree over obstacle bounding boxes
// Immutable after construction; rebuild when obstacles change
type ObstacleIndex struct {
	tree  *rtreego.Rtree
	count int
}

// NewObstacleIndex bulk-loads obstacle bounds
func NewObstacleIndex(obstacles []core.Obstacle) *ObstacleIndex {
	entries := make([]rtreego.Spatial, 0, len(obstacles))
	for i := range obstacles {
		rect, err := areaRect(obstacles[i].Bounds())
		if err != nil {
			continue
		}
		entries = append(entries, &obstacleEntry{index: i, rect: rect})
	}
	return &ObstacleIndex{
		tree:  rtreego.NewTree(2, 2, 8, entries...),
		count: len(entries),
	}
}

// Len returns the number of indexed obstacles
func (ix *ObstacleIndex) Len() int {
	if ix == nil {
		return 0
	}
	return ix.count
}

// Query returns indices of obstacles whose bounds intersect area, ascending
func (ix *ObstacleIndex) Query(area core.Area) []int {
	if ix == nil || ix.count == 0 {
		return nil
	}
	rect, err := areaRect(area)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		if e, ok := h.(*obstacleEntry); ok {
			out = append(out, e.index)
		}
	}
	sort.Ints(out)
	return out
}

func areaRect(a core.Area) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{a.X, a.Y},
		[]float64{max(a.Width, minExtent), max(a.Height, minExtent)},
	)
}

// candidates returns obstacle indices near area, all of them without an index
func candidates(w *World, area core.Area) []int {
	if w.Index != nil {
		return w.Index.Query(area)
	}
	out := make([]int, len(w.Obstacles))
	for i := range out {
		out[i] = i
	}
	return out
}
