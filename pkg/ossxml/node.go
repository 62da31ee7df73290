// Package ossxml decodes arbitrary service XML into a generic node tree
// without per-endpoint schemas. An element's repeated child tags collapse
// into a List; attributes merge into the element's map, with text content
// preserved under the reserved "#content" key when attributes are present.
package ossxml

// Node is one decoded XML value: Text, *Element, or List.
type Node interface {
	isNode()
}

// Text is character data, trimmed of surrounding whitespace.
type Text string

func (Text) isNode() {}

// List holds the values of a child tag that appeared more than once
// under the same parent, in document order.
type List []Node

func (List) isNode() {}

// Element maps child tag names (and attribute names) to their decoded
// values. Key order follows first appearance in the document.
type Element struct {
	keys     []string
	children map[string]Node
}

func (*Element) isNode() {}

// ContentKey is where an element's text content lands when attributes
// force the element to decode as a map.
const ContentKey = "#content"

// NewElement returns an empty element map.
func NewElement() *Element {
	return &Element{children: make(map[string]Node)}
}

// add inserts a value under name. A repeated name converts the existing
// value into a List and appends; first-appearance order is kept.
func (e *Element) add(name string, n Node) {
	existing, ok := e.children[name]
	if !ok {
		e.keys = append(e.keys, name)
		e.children[name] = n
		return
	}
	if l, isList := existing.(List); isList {
		e.children[name] = append(l, n)
		return
	}
	e.children[name] = List{existing, n}
}

// Get returns the value stored under name.
func (e *Element) Get(name string) (Node, bool) {
	n, ok := e.children[name]
	return n, ok
}

// Keys returns the element's keys in first-appearance order.
func (e *Element) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Len returns the number of distinct keys.
func (e *Element) Len() int { return len(e.keys) }

// Text returns the child under name as a string, or "" when the child
// is absent or not character data.
func (e *Element) Text(name string) string {
	if t, ok := e.children[name].(Text); ok {
		return string(t)
	}
	return ""
}

// Child returns the child under name as an element.
func (e *Element) Child(name string) (*Element, bool) {
	c, ok := e.children[name].(*Element)
	return c, ok
}

// Nodes returns the child under name as a slice: nil when absent, a
// single-value slice for a scalar child, or the full List for repeats.
// Callers iterating over tags that may appear zero, one, or many times
// (Contents, Part, Upload) use this to avoid caring which it was.
func (e *Element) Nodes(name string) []Node {
	n, ok := e.children[name]
	if !ok {
		return nil
	}
	if l, isList := n.(List); isList {
		return l
	}
	return []Node{n}
}

// TextOf unwraps a node as character data, or "" for any other shape.
func TextOf(n Node) string {
	if t, ok := n.(Text); ok {
		return string(t)
	}
	return ""
}

// Lookup walks a path of element keys from n, returning the node at the
// end of the path.
func Lookup(n Node, path ...string) (Node, bool) {
	cur := n
	for _, name := range path {
		e, ok := cur.(*Element)
		if !ok {
			return nil, false
		}
		cur, ok = e.Get(name)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
