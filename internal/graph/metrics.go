package graph

import "slices"

// NodeRank pairs a node with one of its degree values. Degree on
// MostInfluential is an in-degree (followers); on MostActive an out-degree.
type NodeRank struct {
	ID     string
	Name   string
	Degree int
}

// Metrics are recomputed on demand from a built graph and are stale the
// moment a new document is loaded.
type Metrics struct {
	NumNodes     int
	NumEdges     int
	Density      float64
	AvgInDegree  float64
	AvgOutDegree float64
	InDegree     map[string]int
	OutDegree    map[string]int

	MostInfluential NodeRank // max in-degree, earliest node wins ties
	MostActive      NodeRank // max out-degree, earliest node wins ties
}

// CalculateMetrics computes degree metrics over the built graph. Density is
// edges / (nodes * (nodes-1)) and defined as 0 below two nodes.
func (g *Graph) CalculateMetrics() *Metrics {
	m := &Metrics{
		NumNodes:  len(g.Order),
		NumEdges:  len(g.Edges),
		InDegree:  make(map[string]int, len(g.Order)),
		OutDegree: make(map[string]int, len(g.Order)),
	}

	for _, id := range g.Order {
		m.InDegree[id] = 0
		m.OutDegree[id] = 0
	}
	for _, e := range g.Edges {
		m.OutDegree[e.From]++
		m.InDegree[e.To]++
	}

	if m.NumNodes >= 2 {
		m.Density = float64(m.NumEdges) / float64(m.NumNodes*(m.NumNodes-1))
	}
	if m.NumNodes > 0 {
		var inSum, outSum int
		for _, id := range g.Order {
			inSum += m.InDegree[id]
			outSum += m.OutDegree[id]
		}
		m.AvgInDegree = float64(inSum) / float64(m.NumNodes)
		m.AvgOutDegree = float64(outSum) / float64(m.NumNodes)
	}

	m.MostInfluential = g.topBy(m.InDegree)
	m.MostActive = g.topBy(m.OutDegree)

	return m
}

// topBy returns the node with the maximum degree; ties go to the node that
// appears first in insertion order.
func (g *Graph) topBy(degrees map[string]int) NodeRank {
	var best NodeRank
	for i, id := range g.Order {
		if i == 0 || degrees[id] > best.Degree {
			best = NodeRank{ID: id, Name: g.Nodes[id], Degree: degrees[id]}
		}
	}
	return best
}

// Ranked returns every node paired with its degree from the given map,
// sorted descending with insertion order breaking ties.
func (g *Graph) Ranked(degrees map[string]int) []NodeRank {
	ranks := make([]NodeRank, 0, len(g.Order))
	for _, id := range g.Order {
		ranks = append(ranks, NodeRank{ID: id, Name: g.Nodes[id], Degree: degrees[id]})
	}
	slices.SortStableFunc(ranks, func(a, b NodeRank) int {
		return b.Degree - a.Degree
	})
	return ranks
}
