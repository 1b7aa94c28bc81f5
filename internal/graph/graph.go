// Package graph builds a directed follow graph over normalized users and
// computes degree-based metrics.
package graph

import (
	"errors"

	"github.com/youssefmaged/snxml/internal/social"
)

// ErrNoUsersFound reports a document that parsed but yielded zero users
// with resolvable ids. Contrast with statistics, which treat an empty
// document as all-zero totals rather than a failure.
var ErrNoUsersFound = errors.New("no users found in XML data")

// Graph is a simple directed graph: edges are deduplicated per ordered
// pair, and an edge is only materialized when both endpoints are nodes.
// Order records node insertion order (document order) and is the
// deterministic iteration order for metrics and tie-breaks.
type Graph struct {
	Nodes map[string]string // id -> display name
	Order []string
	Edges []social.Edge
}

// Build constructs the graph from a normalized document. Edges referencing
// an unknown endpoint are dropped silently here; the validator is the layer
// that reports them as warnings.
func Build(doc *social.Document) (*Graph, error) {
	if doc == nil {
		return nil, social.ErrNoDataLoaded
	}
	if len(doc.Order) == 0 {
		return nil, ErrNoUsersFound
	}

	g := &Graph{
		Nodes: make(map[string]string, len(doc.Order)),
		Order: make([]string, 0, len(doc.Order)),
	}
	for _, id := range doc.Order {
		name := doc.Users[id].Name
		if name == "" {
			name = "User " + id
		}
		g.Nodes[id] = name
		g.Order = append(g.Order, id)
	}

	seen := make(map[social.Edge]bool, len(doc.Edges))
	for _, e := range doc.Edges {
		if seen[e] {
			continue
		}
		if _, ok := g.Nodes[e.From]; !ok {
			continue
		}
		if _, ok := g.Nodes[e.To]; !ok {
			continue
		}
		seen[e] = true
		g.Edges = append(g.Edges, e)
	}

	return g, nil
}
