package goquery

import "golang.org/x/net/html"

// removeTags are dropped together with everything inside them.
var removeTags = map[string]bool{
	"head":     true,
	"title":    true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"frame":    true,
	"frameset": true,
	"form":     true,
	"input":    true,
	"button":   true,
	"select":   true,
	"option":   true,
	"textarea": true,
	"object":   true,
	"embed":    true,
	"applet":   true,
	"canvas":   true,
	"svg":      true,
	"template": true,
	"dialog":   true,
	"link":     true,
	"meta":     true,
	"base":     true,
	"nav":      true,
	"aside":    true,
	"footer":   true,
	"ins":      true,
}

// contentTags are kept as they are. Any other tag is unwrapped.
var contentTags = map[string]bool{
	"p":          true,
	"a":          true,
	"img":        true,
	"picture":    true,
	"source":     true,
	"figure":     true,
	"figcaption": true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"dl":         true,
	"dt":         true,
	"dd":         true,
	"blockquote": true,
	"q":          true,
	"cite":       true,
	"pre":        true,
	"code":       true,
	"kbd":        true,
	"samp":       true,
	"em":         true,
	"strong":     true,
	"b":          true,
	"i":          true,
	"u":          true,
	"s":          true,
	"mark":       true,
	"small":      true,
	"sub":        true,
	"sup":        true,
	"br":         true,
	"hr":         true,
	"abbr":       true,
	"time":       true,
	"del":        true,
	"table":      true,
	"caption":    true,
	"thead":      true,
	"tbody":      true,
	"tfoot":      true,
	"tr":         true,
	"th":         true,
	"td":         true,
	"colgroup":   true,
	"col":        true,
	"video":      true,
	"audio":      true,
	"track":      true,
}

// Sanitize returns a cleaned copy of region. The region element itself is
// kept; below it, non-content tags are removed with their subtree, tags
// outside the content allow-list are unwrapped so their children take their
// place, and comments are deleted. Attributes are preserved.
//
// Sanitize never modifies region, and Sanitize(Sanitize(x)) renders the
// same as Sanitize(x).
func Sanitize(region *html.Node) *html.Node {
	root := cloneNode(region)

	var nodes []*html.Node
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			nodes = append(nodes, c)
			collect(c)
		}
	}
	collect(root)

	for _, n := range nodes {
		if !attached(n, root) {
			continue
		}
		switch n.Type {
		case html.CommentNode:
			n.Parent.RemoveChild(n)
		case html.ElementNode:
			switch {
			case removeTags[n.Data]:
				n.Parent.RemoveChild(n)
			case !contentTags[n.Data]:
				unwrap(n)
			}
		}
	}
	return root
}

// attached reports whether n is still below root.
func attached(n, root *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}
