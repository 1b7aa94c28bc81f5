// Package xmldoc holds the parsed document model: a generic element tree
// plus the file-level helpers built on top of it (structure verification,
// pretty-printing, minification).
package xmldoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Element is one node of the parsed tree. Children preserve document order.
// Text holds the element's own character data with surrounding whitespace
// trimmed, so `<followers> 120 </followers>` reads as "120" while a
// `<followers>` block that only wraps child elements reads as "".
type Element struct {
	Tag      string
	Attr     map[string]string
	Text     string
	Children []*Element
}

type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("XML parsing failed at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("XML parsing failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads an XML document into an Element tree. It fails with a
// *ParseError on malformed input and never fails on content it can
// structurally represent.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			pe := &ParseError{Err: err}
			var syn *xml.SyntaxError
			if errors.As(err, &syn) {
				pe.Line = syn.Line
			}
			return nil, pe
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: t.Name.Local, Attr: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.Attr[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Err: errors.New("multiple root elements")}
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		case xml.EndElement:
			top := stack[len(stack)-1]
			top.Text = strings.TrimSpace(top.Text)
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, &ParseError{Err: errors.New("no root element")}
	}
	return root, nil
}

// ParseString parses an inline XML document.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses the XML document at path.
func ParseFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns every descendant with the given tag, in document order.
// The receiver itself is never included.
func (e *Element) FindAll(tag string) []*Element {
	var matches []*Element
	var walk func(el *Element)
	walk = func(el *Element) {
		for _, c := range el.Children {
			if c.Tag == tag {
				matches = append(matches, c)
			}
			walk(c)
		}
	}
	walk(e)
	return matches
}

// ChildText returns the trimmed text of the first direct child with the
// given tag, or "" when the child is absent.
func (e *Element) ChildText(tag string) string {
	if c := e.Find(tag); c != nil {
		return c.Text
	}
	return ""
}
