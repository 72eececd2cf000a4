package nav

import (
	"container/heap"
)

// pathNode is one A* search record.
type pathNode struct {
	id     int
	parent *pathNode
	gCost  float64 // actual cost from start
	fCost  float64 // gCost + heuristic
	index  int     // heap index
}

type nodeHeap []*pathNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].fCost < h[j].fCost }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)        { n := x.(*pathNode); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

// FindPath runs A* from one node to another and returns the node-id path
// including both endpoints, or nil when the nodes are disconnected. Callers
// treat nil as a recoverable degradation (stand still / direct chase), not
// an error. Graphs are tens of nodes per house, so no iteration cap is
// needed.
func (g *Graph) FindPath(from, to int) []int {
	if from < 0 || to < 0 || from >= len(g.Nodes) || to >= len(g.Nodes) {
		return nil
	}
	if from == to {
		return []int{from}
	}

	goal := g.Nodes[to].Centroid
	start := &pathNode{id: from}
	start.fCost = g.Nodes[from].Centroid.Dist(goal)

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, start)

	bestG := map[int]float64{from: 0}
	closed := map[int]struct{}{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if cur.id == to {
			return reversePath(cur)
		}
		if _, ok := closed[cur.id]; ok {
			continue
		}
		closed[cur.id] = struct{}{}

		for _, e := range g.adj[cur.id] {
			next := e.B
			if _, ok := closed[next]; ok {
				continue
			}
			gCost := cur.gCost + e.Cost
			if prev, ok := bestG[next]; ok && gCost >= prev {
				continue
			}
			bestG[next] = gCost
			heap.Push(open, &pathNode{
				id:     next,
				parent: cur,
				gCost:  gCost,
				fCost:  gCost + g.Nodes[next].Centroid.Dist(goal),
			})
		}
	}
	return nil
}

// reversePath unwinds the parent chain into start→goal order.
func reversePath(n *pathNode) []int {
	var path []int
	for ; n != nil; n = n.parent {
		path = append(path, n.id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
