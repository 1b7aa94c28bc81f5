package social

import (
	"github.com/youssefmaged/snxml/internal/xmldoc"
)

// Normalize walks the parsed tree and extracts the canonical record set.
//
// Users are matched at any depth. A user without a resolvable id is skipped
// silently; the validator re-resolves ids itself and reports the omission
// there. Malformed numeric fields degrade to defaults, so normalization only
// fails when there is no tree at all.
func Normalize(root *xmldoc.Element) (*Document, error) {
	if root == nil {
		return nil, ErrNoDataLoaded
	}

	doc := &Document{Users: make(map[string]*User)}

	for _, el := range root.FindAll("user") {
		id := resolveID(el)
		if id == "" {
			continue
		}

		u := &User{ID: id, Age: AgeUnknown}
		u.Name = el.ChildText("name")
		if age, ok := childInt(el, "age"); ok {
			u.Age = age
		}
		// Scalar counts read the direct text of <followers>/<following>.
		// When <followers> wraps <follower> children instead, its own text
		// is empty and the count stays 0; the two readings never conflict.
		if n, ok := childInt(el, "followers"); ok {
			u.FollowersCount = n
		}
		if n, ok := childInt(el, "following"); ok {
			u.FollowingCount = n
		}
		u.Posts = extractPosts(el)

		if _, seen := doc.Users[id]; !seen {
			doc.Order = append(doc.Order, id)
		}
		doc.Users[id] = u

		// Both edge shapes contribute; duplicates across them are kept.
		doc.Edges = append(doc.Edges, followerEdges(el, id)...)
		doc.Edges = append(doc.Edges, connectionEdges(el, id)...)
	}

	return doc, nil
}

func extractPosts(user *xmldoc.Element) []Post {
	var posts []Post
	for _, el := range user.FindAll("post") {
		p := Post{
			ID:        el.Attr["id"],
			Content:   el.ChildText("content"),
			Timestamp: el.ChildText("timestamp"),
		}
		if likes, ok := childInt(el, "likes"); ok {
			p.Likes = likes
		}
		posts = append(posts, p)
	}
	return posts
}

// followerEdges extracts Shape A targets:
// <followers><follower><id>T</id></follower></followers>.
func followerEdges(user *xmldoc.Element, from string) []Edge {
	followers := user.Find("followers")
	if followers == nil {
		return nil
	}
	var edges []Edge
	for _, f := range followers.Children {
		if f.Tag != "follower" {
			continue
		}
		if target := f.ChildText("id"); target != "" {
			edges = append(edges, Edge{From: from, To: target})
		}
	}
	return edges
}

// connectionEdges extracts Shape B targets:
// <connections><friend user_id="T"/></connections>.
func connectionEdges(user *xmldoc.Element, from string) []Edge {
	connections := user.Find("connections")
	if connections == nil {
		return nil
	}
	var edges []Edge
	for _, f := range connections.Children {
		if f.Tag != "friend" {
			continue
		}
		if target := f.Attr["user_id"]; target != "" {
			edges = append(edges, Edge{From: from, To: target})
		}
	}
	return edges
}
