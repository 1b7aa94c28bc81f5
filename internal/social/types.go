// Package social normalizes the tolerated social-network XML schemas into a
// canonical record set and implements the consumers that read it: integrity
// validation, statistics, and JSON export.
package social

// AgeUnknown marks a user whose <age> was absent or unparsable. Unknown ages
// are excluded from averaging rather than counted as zero.
const AgeUnknown = -1

// User is one normalized <user> record. FollowersCount and FollowingCount
// are the scalar counts supplied by the document; they are independent of
// the edge list and may disagree with edge-derived degrees. Both readings
// are preserved and never reconciled.
type User struct {
	ID             string
	Name           string // "" when the document carries no usable <name>
	Age            int
	FollowersCount int
	FollowingCount int
	Posts          []Post
}

// Post belongs to exactly one User. A missing id is tolerated here and
// surfaced as a validation warning.
type Post struct {
	ID        string
	Content   string
	Timestamp string
	Likes     int
}

// Edge records that From follows To.
//
// Direction convention: when a target id appears inside U's <followers> or
// <connections> block, the edge is U -> target ("U follows target"). The
// source tag name reads inverted relative to this, but every consumer
// (validator, graph, export) relies on the same convention; do not flip it
// in isolation.
type Edge struct {
	From string
	To   string
}

// Document is the canonical record set produced by one normalization pass.
// Order lists user ids as first encountered in the source document. A
// Document is never mutated after Normalize returns; loading new data means
// building a fresh Document and swapping the reference.
type Document struct {
	Users map[string]*User
	Order []string
	Edges []Edge
}
