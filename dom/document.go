package dom

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoBody is returned if a document does not contain a <body> element.
var ErrNoBody = errors.New("document has no body element")

// Document is the root of an HTML parse tree.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document. The HTML5 parsing algorithm always
// synthesizes <html>, <head> and <body>, therefore every successfully parsed
// document has a body.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// ParseString is a convenience wrapper for Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromNode wraps an existing parse tree. The document is now managed by the
// wrapper.
func FromNode(root *html.Node) *Document {
	return &Document{root: root}
}

// Root returns the document node.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// Head returns the <head> element, if any.
func (doc *Document) Head() *html.Node {
	return findElement(atom.Head, doc.root)
}

// Body returns the <body> element or ErrNoBody.
func (doc *Document) Body() (*html.Node, error) {
	body := findElement(atom.Body, doc.root)
	if body == nil {
		return nil, ErrNoBody
	}
	return body, nil
}

// Render serializes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

func (doc *Document) String() string {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return "<unrenderable document: " + err.Error() + ">"
	}
	return buf.String()
}

// NewElement creates a detached element node.
func NewElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}

// NewStyle creates a detached <style> element with css as its text content.
func NewStyle(css string) *html.Node {
	style := NewElement(atom.Style)
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	return style
}

// Attr returns the value of attribute key of element n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets attribute key of element n to val. It reports whether the
// node changed.
func SetAttr(n *html.Node, key, val string) bool {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			if a.Val == val {
				return false
			}
			n.Attr[i].Val = val
			return true
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return true
}

// HasClass checks if the class attribute of n lists class.
func HasClass(n *html.Node, class string) bool {
	v, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of n and all its descendents.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	if n != nil {
		collect(n)
	}
	return b.String()
}

// ElementChildren returns the element children of n, in document order.
func ElementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, ch)
		}
	}
	return children
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
