package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/articulo"
	"golang.org/x/net/html"
)

// titleTags are searched in priority order for an element repeating the title.
var titleTags = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p"}

var (
	titleMetaKeys   = []string{"property", "name"}
	titleMetaValues = []string{"og:title", "twitter:title"}
)

// TitleCandidate is a resolved article title.
type TitleCandidate struct {
	// Text is the title value: the anchor's text.
	Text string

	// Anchor is the element that repeats the title in the body, or the
	// <title> element when the body has no match.
	Anchor *html.Node

	// Element is the document's <title> element.
	Element *html.Node
}

// ResolveTitle finds the article title and the body element anchoring it.
//
// The <title> text is the baseline. An og:title or twitter:title meta tag
// replaces it as the search string. The body is then searched for the first
// h1..h6 or p element (in that tag priority, document order within a tag)
// whose non-blank text contains the search string. Without a match the
// <title> element itself is the anchor.
//
// Returns ENOTITLE if the document has no <title> element.
func ResolveTitle(doc *goquery.Document) (*TitleCandidate, error) {
	titleSel := doc.Find("title").First()
	if titleSel.Length() == 0 {
		return nil, articulo.Errorf(articulo.ENOTITLE, "document has no title tag")
	}
	titleEl := titleSel.Get(0)
	baseline := nodeText(titleEl)

	search := baseline
	if meta := findMeta(doc, titleMetaKeys, titleMetaValues); meta != nil {
		if content, ok := meta.Attr("content"); ok {
			search = content
		}
	}

	body := doc.Find("body").First()
	for _, tag := range titleTags {
		for _, n := range body.Find(tag).Nodes {
			text := nodeText(n)
			if !strings.Contains(text, search) || strings.TrimSpace(text) == "" {
				continue
			}
			return &TitleCandidate{Text: text, Anchor: n, Element: titleEl}, nil
		}
	}

	return &TitleCandidate{Text: baseline, Anchor: titleEl, Element: titleEl}, nil
}
