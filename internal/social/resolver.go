package social

import (
	"strconv"

	"github.com/youssefmaged/snxml/internal/xmldoc"
)

// resolveID resolves a user id with the tolerated fallback order: the id
// attribute first, then the text of a child <id> element. "" means the
// element has no resolvable id.
func resolveID(el *xmldoc.Element) string {
	if v := el.Attr["id"]; v != "" {
		return v
	}
	return el.ChildText("id")
}

// childInt parses the trimmed text of a direct child as an integer. Absent
// or unparsable values report ok=false; this never fails.
func childInt(el *xmldoc.Element, tag string) (int, bool) {
	text := el.ChildText(tag)
	if text == "" {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
