// Package htmltest parses rendered markup so tests can assert on structure
// instead of raw strings.
package htmltest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

// Render renders n to a string, failing the test on error.
func Render(t testing.TB, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

// Parse renders n and parses it as the body of an HTML document.
func Parse(t testing.TB, n g.Node) *html.Node {
	t.Helper()
	return ParseString(t, Render(t, n))
}

// ParseString parses markup, failing the test on error.
func ParseString(t testing.TB, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

// FindAll returns every element below root matching pred, in document order.
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// Tag matches elements by tag name.
func Tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

// Slot matches elements by their data-slot attribute.
func Slot(slot string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := Attr(n, "data-slot")
		return ok && v == slot
	}
}

// Attr returns the value of an attribute and whether it is present.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// Texts returns Text for each node.
func Texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Text(n))
	}
	return out
}
