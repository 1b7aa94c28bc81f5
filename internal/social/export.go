package social

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExportDocument is the reduced projection written by the json command.
// The object shape is a compatibility contract; formatting is not.
type ExportDocument struct {
	Users []ExportUser `json:"users"`
}

type ExportUser struct {
	ID        string       `json:"id"`
	Name      *string      `json:"name"`
	Posts     []ExportPost `json:"posts"`
	Followers []string     `json:"followers"`
}

type ExportPost struct {
	ID        *string `json:"id"`
	Content   string  `json:"content"`
	Timestamp string  `json:"timestamp"`
	Likes     int     `json:"likes"`
}

// Export builds the reduced projection. Users without a resolvable id were
// already dropped during normalization, so every exported user carries one.
// Followers are the union of both edge shapes in extraction order,
// duplicates included. Returns the projection plus a human-readable summary.
func Export(doc *Document) (*ExportDocument, string, error) {
	if doc == nil {
		return nil, "", ErrNoDataLoaded
	}

	out := &ExportDocument{Users: make([]ExportUser, 0, len(doc.Order))}

	followersByUser := make(map[string][]string, len(doc.Order))
	for _, e := range doc.Edges {
		followersByUser[e.From] = append(followersByUser[e.From], e.To)
	}

	for _, id := range doc.Order {
		u := doc.Users[id]

		eu := ExportUser{
			ID:        u.ID,
			Posts:     make([]ExportPost, 0, len(u.Posts)),
			Followers: []string{},
		}
		if u.Name != "" {
			name := u.Name
			eu.Name = &name
		}
		for _, p := range u.Posts {
			ep := ExportPost{Content: p.Content, Timestamp: p.Timestamp, Likes: p.Likes}
			if p.ID != "" {
				postID := p.ID
				ep.ID = &postID
			}
			eu.Posts = append(eu.Posts, ep)
		}
		if targets := followersByUser[id]; targets != nil {
			eu.Followers = targets
		}

		out.Users = append(out.Users, eu)
	}

	summary := fmt.Sprintf("Successfully exported %d users to JSON", len(out.Users))
	return out, summary, nil
}

// WriteJSON exports doc and writes the projection to path as indented
// UTF-8 JSON. Write failures are surfaced wrapped, never retried.
func WriteJSON(doc *Document, path string) (string, error) {
	export, _, err := Export(doc)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to export to JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to export to JSON: %w", err)
	}

	return fmt.Sprintf("Successfully exported %d users to JSON. File saved: %s",
		len(export.Users), path), nil
}
