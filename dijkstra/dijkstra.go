// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative arc weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing arcs and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - The graph is implicit: vertices are discovered through Arcs, so only
//     reachable vertices ever appear in the result.
//   - We treat any arc with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from source to every vertex reachable in g.
//
// Returns:
//
//   - dist: map from reachable vertex to its minimum distance; source maps to 0.
//     Unreachable vertices are absent.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; source has no entry.
//   - err:  ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight, or a wrapped Arcs error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V comparable](g WeightedGraph[V], source V, opts ...Option) (map[V]int64, map[V]V, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Prepare runner state.
	r := &runner[V]{
		g:       g,
		options: cfg,
		dist:    make(map[V]int64),
		visited: make(map[V]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V)
	}

	// 4) Seed and run.
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       WeightedGraph[V] // The input graph; read-only within Dijkstra.
	options Options          // Configuration options.
	dist    map[V]int64      // Maps vertex → current best distance from source.
	prev    map[V]V          // Maps vertex → predecessor on the shortest path (nil unless ReturnPath).
	visited map[V]bool       // Tracks if a vertex's distance is finalized.
	pq      nodePQ[V]        // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it into the heap.
func (r *runner[V]) init(source V) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V])

		// Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving u and attempts to improve distances to its targets.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner[V]) relax(u V) error {
	arcs, err := r.g.Arcs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get arcs of %v: %w", u, err)
	}

	for _, a := range arcs {
		if a.Weight < 0 {
			return fmt.Errorf("%w: arc %v→%v weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
		}
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if cur, seen := r.dist[a.To]; seen && newDist >= cur {
			continue
		}

		r.dist[a.To] = newDist
		if r.prev != nil {
			r.prev[a.To] = u
		}
		heap.Push(&r.pq, &nodeItem[V]{id: a.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem[V comparable] struct {
	id   V     // vertex
	dist int64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries remain in the heap and are ignored when popped (checked via visited).
type nodePQ[V comparable] []*nodeItem[V]

// Len returns the number of items in the heap.
func (pq nodePQ[V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
