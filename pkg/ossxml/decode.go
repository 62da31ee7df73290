// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package ossxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/lakeward/osskit/pkg/osserr"
)

// rawElement is the parsed form of one XML element before conversion
// into the generic node tree.
type rawElement struct {
	name     string
	attrs    []xml.Attr
	text     strings.Builder
	elements []*rawElement
}

// Decode parses an XML document into an element mapping the root tag
// name to its decoded content. Malformed input yields an
// *osserr.XMLParseError and no partial tree.
func Decode(data []byte) (*Element, error) {
	root, err := parse(data)
	if err != nil {
		return nil, &osserr.XMLParseError{Err: err}
	}

	doc := NewElement()
	doc.add(root.name, convert(root))
	return doc, nil
}

// parse tokenizes the document and builds the raw element tree. Exactly
// one root element is required; non-whitespace content outside it is an
// error.
func parse(data []byte) (*rawElement, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *rawElement
	var stack []*rawElement

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &rawElement{name: t.Name.Local}
			el.attrs = append(el.attrs, t.Attr...)
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("unexpected second root element <%s>", t.Name.Local)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.elements = append(parent.elements, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("unexpected character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].text.Write(t)
		}
	}

	if root == nil {
		return nil, fmt.Errorf("empty document")
	}
	return root, nil
}

// convert turns a raw element into its node. The element's content is:
// its trimmed text when it has no element children; its children grouped
// by tag name otherwise (text segments in mixed content are dropped).
// Attributes merge into the content map, with non-map content filed
// under ContentKey.
func convert(el *rawElement) Node {
	var content Node
	if len(el.elements) == 0 {
		content = Text(strings.TrimSpace(el.text.String()))
	} else {
		m := NewElement()
		for _, child := range el.elements {
			m.add(child.name, convert(child))
		}
		content = m
	}

	if len(el.attrs) == 0 {
		return content
	}

	m, ok := content.(*Element)
	if !ok {
		wrapped := NewElement()
		for _, a := range el.attrs {
			wrapped.add(a.Name.Local, Text(a.Value))
		}
		if text := TextOf(content); text != "" {
			wrapped.add(ContentKey, Text(text))
		}
		return wrapped
	}
	for _, a := range el.attrs {
		m.add(a.Name.Local, Text(a.Value))
	}
	return m
}
