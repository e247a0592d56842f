package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MutationKind classifies a change to a container.
type MutationKind int8

// Kinds of container mutations.
const (
	Inserted MutationKind = iota // a node has been added to the container
	Moved                        // a child of the container changed its position
	Removed                      // a node has been removed from the container
	AttrChanged                  // an attribute of a child has been set to a new value
)

func (k MutationKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Moved:
		return "moved"
	case Removed:
		return "removed"
	case AttrChanged:
		return "attr-changed"
	}
	return fmt.Sprintf("MutationKind(%d)", int8(k))
}

// Mutation is a record of a single change to a container.
// Attr and Value are set for AttrChanged only.
type Mutation struct {
	Kind  MutationKind
	Node  *html.Node
	Attr  string
	Value string
}

// Container is an element holding live style elements. It is installed as
// the first child of a document's body, where its styles win over
// same-specificity rules defined in the document's head.
//
// Containers are not safe for concurrent use.
type Container struct {
	node      *html.Node
	observers map[int]func(Mutation)
	nextID    int
}

// InstallContainer finds or creates a <div> with the given class as the
// first child of doc's body. An existing container which is a direct child
// of body but not the first one is moved to the front.
func InstallContainer(doc *Document, class string) (*Container, error) {
	body, err := doc.Body()
	if err != nil {
		return nil, fmt.Errorf("cannot install style container: %w", err)
	}
	sel, err := cascadia.Compile("div." + class)
	if err != nil {
		return nil, fmt.Errorf("invalid container class %q: %w", class, err)
	}
	var div *html.Node
	for _, ch := range ElementChildren(body) {
		if sel.Match(ch) {
			div = ch
			break
		}
	}
	if div == nil {
		div = NewElement(atom.Div,
			html.Attribute{Key: "class", Val: class},
			html.Attribute{Key: "style", Val: "display:none"},
		)
		tracer().Debugf("creating style container div.%s", class)
	} else if div == body.FirstChild {
		tracer().Debugf("re-using style container div.%s", class)
		return &Container{node: div}, nil
	} else {
		tracer().Debugf("moving style container div.%s to front of body", class)
		body.RemoveChild(div)
	}
	body.InsertBefore(div, body.FirstChild)
	return &Container{node: div}, nil
}

// Node returns the container element.
func (c *Container) Node() *html.Node {
	return c.node
}

// Children returns the element children of the container, in order.
func (c *Container) Children() []*html.Node {
	return ElementChildren(c.node)
}

// Len returns the number of element children.
func (c *Container) Len() int {
	return len(c.Children())
}

// Contains checks if n is a direct child of the container.
func (c *Container) Contains(n *html.Node) bool {
	return n != nil && n.Parent == c.node
}

// InsertBefore places n immediately before ref, which must be a child of
// the container. A nil ref appends n. If n is already a child, it is moved;
// if it is already in place, nothing happens and no mutation is recorded.
// A node attached elsewhere is detached first.
func (c *Container) InsertBefore(n, ref *html.Node) {
	if n == ref {
		return
	}
	if ref != nil && ref.Parent != c.node {
		panic(fmt.Sprintf("reference node <%s> is not a child of the style container", ref.Data))
	}
	kind := Inserted
	if n.Parent == c.node {
		if nextElement(n) == ref {
			return
		}
		kind = Moved
		c.node.RemoveChild(n)
	} else if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	c.node.InsertBefore(n, ref)
	c.notify(Mutation{Kind: kind, Node: n})
}

// Remove detaches n from the container. It is a no-op if n is not a child.
func (c *Container) Remove(n *html.Node) {
	if !c.Contains(n) {
		return
	}
	c.node.RemoveChild(n)
	c.notify(Mutation{Kind: Removed, Node: n})
}

// SetAttr sets an attribute of n. Changes of children of the container are
// reported to observers; setting an unchanged value is not a mutation.
func (c *Container) SetAttr(n *html.Node, key, val string) {
	if SetAttr(n, key, val) && c.Contains(n) {
		c.notify(Mutation{Kind: AttrChanged, Node: n, Attr: key, Value: val})
	}
}

// Observe registers a callback for every subsequent mutation of the
// container. Calling the returned function unregisters it.
func (c *Container) Observe(observer func(Mutation)) (cancel func()) {
	if c.observers == nil {
		c.observers = make(map[int]func(Mutation))
	}
	id := c.nextID
	c.nextID++
	c.observers[id] = observer
	return func() {
		delete(c.observers, id)
	}
}

func (c *Container) notify(m Mutation) {
	tracer().Debugf("style container: %s <%s>", m.Kind, m.Node.Data)
	for _, observer := range c.observers {
		observer(m)
	}
}

// nextElement returns the next element sibling of n, skipping text and
// comment nodes.
func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}
