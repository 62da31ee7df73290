// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package ossxml

import (
	"testing"

	"github.com/lakeward/osskit/pkg/osserr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// el builds an element from alternating key, node pairs.
func el(pairs ...any) *Element {
	e := NewElement()
	for i := 0; i < len(pairs); i += 2 {
		e.add(pairs[i].(string), pairs[i+1].(Node))
	}
	return e
}

var cmpOpts = []cmp.Option{cmp.AllowUnexported(Element{})}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected *Element
	}{
		{
			name:     "single text element",
			input:    `<root>hello</root>`,
			expected: el("root", Text("hello")),
		},
		{
			name:     "text is trimmed",
			input:    "<root>\n  hello\n</root>",
			expected: el("root", Text("hello")),
		},
		{
			name:     "empty element decodes to empty text",
			input:    `<root></root>`,
			expected: el("root", Text("")),
		},
		{
			name:     "self closing element",
			input:    `<root/>`,
			expected: el("root", Text("")),
		},
		{
			name:     "single child element",
			input:    `<root><item>1</item></root>`,
			expected: el("root", el("item", Text("1"))),
		},
		{
			name:  "repeated children group into a list",
			input: `<root><item>1</item><item>2</item><item>3</item></root>`,
			expected: el("root",
				el("item", List{Text("1"), Text("2"), Text("3")})),
		},
		{
			name:  "mixed tags keep first appearance order",
			input: `<root><b>1</b><a>2</a><b>3</b></root>`,
			expected: el("root",
				el("b", List{Text("1"), Text("3")}, "a", Text("2"))),
		},
		{
			name:  "whitespace between elements is filtered",
			input: "<root>\n  <a>1</a>\n  <b>2</b>\n</root>",
			expected: el("root",
				el("a", Text("1"), "b", Text("2"))),
		},
		{
			name:     "attributes merge with text under content key",
			input:    `<el id="1">text</el>`,
			expected: el("el", el("id", Text("1"), ContentKey, Text("text"))),
		},
		{
			name:     "attribute only element",
			input:    `<el id="1"/>`,
			expected: el("el", el("id", Text("1"))),
		},
		{
			name:  "attributes merge into element content",
			input: `<el id="1"><a>2</a></el>`,
			expected: el("el",
				el("a", Text("2"), "id", Text("1"))),
		},
		{
			name: "nested structure",
			input: `<ListBucketResult><Name>b</Name><Contents><Key>x</Key></Contents>` +
				`<Contents><Key>y</Key></Contents></ListBucketResult>`,
			expected: el("ListBucketResult", el(
				"Name", Text("b"),
				"Contents", List{el("Key", Text("x")), el("Key", Text("y"))},
			)),
		},
		{
			name:     "xml declaration ignored",
			input:    `<?xml version="1.0" encoding="UTF-8"?><root>ok</root>`,
			expected: el("root", Text("ok")),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode([]byte(tt.input))
			require.NoError(t, err)

			if diff := cmp.Diff(tt.expected, got, cmpOpts...); diff != "" {
				t.Errorf("decoded tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeOrderPreserved(t *testing.T) {
	t.Parallel()

	doc, err := Decode([]byte(`<root><z>1</z><a>2</a><m>3</m></root>`))
	require.NoError(t, err)

	root, ok := doc.Child("root")
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, root.Keys())
}

func TestDecodeListAccess(t *testing.T) {
	t.Parallel()

	doc, err := Decode([]byte(`<root><item>1</item><item>2</item><only>x</only></root>`))
	require.NoError(t, err)

	root, ok := doc.Child("root")
	require.True(t, ok)

	// repeated tag comes back as the full list
	items := root.Nodes("item")
	require.Len(t, items, 2)
	assert.Equal(t, "1", TextOf(items[0]))
	assert.Equal(t, "2", TextOf(items[1]))

	// scalar tag comes back as a one element slice
	only := root.Nodes("only")
	require.Len(t, only, 1)
	assert.Equal(t, "x", TextOf(only[0]))

	assert.Nil(t, root.Nodes("missing"))
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "unclosed tag", input: `<root><item>1</root>`},
		{name: "truncated document", input: `<root><item>`},
		{name: "empty input", input: ``},
		{name: "bare text", input: `not xml at all`},
		{name: "two root elements", input: `<a>1</a><b>2</b>`},
		{name: "text after root", input: `<a>1</a>trailing`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, got, "no partial tree on malformed input")

			var parseErr *osserr.XMLParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	doc, err := Decode([]byte(`<a><b><c>deep</c></b></a>`))
	require.NoError(t, err)

	n, ok := Lookup(doc, "a", "b", "c")
	require.True(t, ok)
	assert.Equal(t, "deep", TextOf(n))

	_, ok = Lookup(doc, "a", "x")
	assert.False(t, ok)
}
