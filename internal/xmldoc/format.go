package xmldoc

import (
	"sort"
	"strings"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>`

// Format serializes the tree as indented XML with a declaration line.
func Format(root *Element, indent string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	writeElement(&b, root, 0, indent)
	b.WriteByte('\n')
	return b.String()
}

// Minify serializes the tree with no inter-element whitespace.
func Minify(root *Element) string {
	var b strings.Builder
	b.WriteString(header)
	writeElement(&b, root, 0, "")
	return b.String()
}

func writeElement(b *strings.Builder, el *Element, depth int, indent string) {
	pretty := indent != ""
	if pretty && depth > 0 {
		b.WriteByte('\n')
	}
	if pretty {
		b.WriteString(strings.Repeat(indent, depth))
	}

	b.WriteByte('<')
	b.WriteString(el.Tag)
	writeAttrs(b, el.Attr)

	if el.Text == "" && len(el.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')

	if el.Text != "" {
		if pretty && len(el.Children) > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(indent, depth+1))
		}
		b.WriteString(escapeText(el.Text))
	}

	for _, c := range el.Children {
		writeElement(b, c, depth+1, indent)
	}

	if pretty && len(el.Children) > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indent, depth))
	}
	b.WriteString("</")
	b.WriteString(el.Tag)
	b.WriteByte('>')
}

// writeAttrs emits attributes sorted by name so output is deterministic.
func writeAttrs(b *strings.Builder, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(attrs[name]))
		b.WriteByte('"')
	}
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func escapeText(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
