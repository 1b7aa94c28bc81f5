package social

import (
	"fmt"

	"github.com/youssefmaged/snxml/internal/xmldoc"
)

// Validate checks referential integrity against the original element list,
// re-resolving ids per element rather than trusting normalized output, so
// the report mirrors what a reader of the raw document would flag.
//
// Errors are structural (missing id, missing name); warnings are suspicious
// but tolerated (post without id, follower target absent from the network).
// Both lists follow document order and either may be empty.
func Validate(root *xmldoc.Element) (errs, warnings []string, err error) {
	if root == nil {
		return nil, nil, ErrNoDataLoaded
	}

	users := root.FindAll("user")

	// First pass: collect every resolvable id so dangling targets can be
	// detected regardless of declaration order.
	validIDs := make(map[string]bool, len(users))
	for _, el := range users {
		if id := resolveID(el); id != "" {
			validIDs[id] = true
		}
	}

	for i, el := range users {
		id := resolveID(el)
		if id == "" {
			errs = append(errs, fmt.Sprintf("User #%d: Missing user ID", i+1))
			continue
		}

		if el.ChildText("name") == "" {
			errs = append(errs, fmt.Sprintf("User %s: Missing name", id))
		}

		for _, post := range el.FindAll("post") {
			if post.Attr["id"] == "" {
				warnings = append(warnings, fmt.Sprintf("User %s: Post missing ID", id))
			}
		}

		targets := followerEdges(el, id)
		targets = append(targets, connectionEdges(el, id)...)
		for _, edge := range targets {
			if !validIDs[edge.To] {
				warnings = append(warnings,
					fmt.Sprintf("User %s: Follower ID %s does not exist in network", id, edge.To))
			}
		}
	}

	return errs, warnings, nil
}
