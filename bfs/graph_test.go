package bfs_test

import "errors"

// adjGraph is an undirected adjacency list keyed by string.
// Neighbor order is insertion order.
type adjGraph map[string][]string

func (g adjGraph) HasVertex(v string) bool { _, ok := g[v]; return ok }

func (g adjGraph) NeighborIDs(v string) ([]string, error) { return g[v], nil }

// addVertex registers v without edges.
func (g adjGraph) addVertex(v string) {
	if _, ok := g[v]; !ok {
		g[v] = nil
	}
}

// addEdge links u and v in both directions.
func (g adjGraph) addEdge(u, v string) {
	g[u] = append(g[u], v)
	g[v] = append(g[v], u)
}

// addArc links u to v only.
func (g adjGraph) addArc(u, v string) {
	g[u] = append(g[u], v)
	g.addVertex(v)
}

var errBroken = errors.New("broken adjacency")

// brokenGraph knows every vertex but cannot list neighbors.
type brokenGraph struct{}

func (brokenGraph) HasVertex(string) bool                { return true }
func (brokenGraph) NeighborIDs(string) ([]string, error) { return nil, errBroken }
