package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FindElement returns the first element in document order, starting with n
// itself, whose tag is tag and whose text contains text. Returns nil if no
// element matches.
func FindElement(n *html.Node, tag string, text string) *html.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.ElementNode:
		if n.Data == tag && strings.Contains(nodeText(n), text) {
			return n
		}
	case html.DocumentNode:
	default:
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, tag, text); found != nil {
			return found
		}
	}
	return nil
}

// nodeText returns the concatenated text of all text nodes below n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch cur.Type {
		case html.TextNode:
			b.WriteString(cur.Data)
		case html.ElementNode, html.DocumentNode:
			for c := cur.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// countParagraphs returns the number of <p> elements below n, excluding n.
func countParagraphs(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom == atom.P {
			count++
		}
		count += countParagraphs(c)
	}
	return count
}

// isEmpty reports whether n has no element children and only whitespace text.
func isEmpty(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			return false
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		}
	}
	return true
}

// cloneNode returns a deep copy of n detached from any tree.
func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
