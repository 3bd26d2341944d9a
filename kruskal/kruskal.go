// Package kruskal provides the sequential Kruskal minimum spanning forest.
package kruskal

import (
	"sort"

	"github.com/katalvlaran/msf/boruvka"
)

// disjointSet is a sequential union-find with union by rank and iterative
// path compression.
type disjointSet struct {
	parent []int
	rank   []int
	sets   int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find walks to the root, halving the path on the way.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		// Path compression: make u point to its grandparent.
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if ds.rank[rootU] < ds.rank[rootV] {
		ds.parent[rootU] = rootV
	} else {
		ds.parent[rootV] = rootU
		if ds.rank[rootU] == ds.rank[rootV] {
			ds.rank[rootU]++
		}
	}
	ds.sets--

	return true
}

// Forest computes the minimum spanning forest of the graph with n vertices.
//
// Steps:
//  1. Validate with boruvka.Validate.
//  2. Sort edge indices by ascending Cost (stable: equal costs keep input order).
//  3. Scan in that order; keep each edge whose endpoints are still disjoint.
//  4. Stop early once n-1 edges were kept.
//
// Self-loops never join two sets and are skipped naturally.
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Forest(edges []boruvka.Edge, n int) ([]boruvka.Edge, int64, error) {
	if err := boruvka.Validate(edges, n); err != nil {
		return nil, 0, err
	}

	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edges[order[a]].Cost < edges[order[b]].Cost
	})

	var (
		ds     = newDisjointSet(n)
		forest = make([]boruvka.Edge, 0, max(n-1, 0))
		total  int64
	)
	for _, i := range order {
		e := edges[i]
		if ds.union(e.From, e.To) {
			forest = append(forest, e)
			total += e.Cost
			if len(forest) == n-1 {
				break
			}
		}
	}

	return forest, total, nil
}

// Components returns the number of connected components of the graph.
func Components(edges []boruvka.Edge, n int) (int, error) {
	if err := boruvka.Validate(edges, n); err != nil {
		return 0, err
	}
	ds := newDisjointSet(n)
	for _, e := range edges {
		ds.union(e.From, e.To)
	}

	return ds.sets, nil
}

// IsForest reports whether edges form an acyclic graph over n vertices.
// Invalid input is never a forest.
func IsForest(edges []boruvka.Edge, n int) bool {
	if boruvka.Validate(edges, n) != nil {
		return false
	}
	ds := newDisjointSet(n)
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			return false
		}
	}

	return true
}
