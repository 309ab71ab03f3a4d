package goquery

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/articulo"
	"golang.org/x/net/html"
)

// MaxIterations bounds the number of children FindContentRegion may test.
const MaxIterations = 100

// FindContentRegion returns the smallest element that contains the title
// anchor while losing no more than threshold of the paragraphs of its
// parent.
//
// The search starts at the <html> element and descends one level at a time
// into the first child containing an element with the anchor's tag and
// text. It stops at the current parent when that child has no paragraphs,
// is the anchor's own parent, or would lose more than threshold of the
// parent's paragraphs. Every element child tested counts as one iteration.
//
// Returns nil without error if the document body is missing or empty.
// Returns EITERATION after MaxIterations iterations without convergence.
func FindContentRegion(doc *goquery.Document, candidate *TitleCandidate, threshold float64, logger *slog.Logger) (*html.Node, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 || isEmpty(body.Get(0)) {
		logger.Debug("document body is empty")
		return nil, nil
	}
	if candidate == nil || candidate.Anchor == nil {
		return nil, articulo.Errorf(articulo.EINVALID, "title anchor required")
	}

	root := doc.Find("html").First()
	if root.Length() == 0 {
		return nil, articulo.Errorf(articulo.ENOHTML, "document has no root element")
	}

	tag := candidate.Anchor.Data
	text := candidate.Text
	parent := root.Get(0)
	iterations := 0

	for {
		if iterations >= MaxIterations {
			return nil, articulo.Errorf(articulo.EITERATION, "cannot find the best parent element within %d iterations", MaxIterations)
		}
		logger.Debug("looking for title container", "title", text, "parent", parent.Data)

		tested := 0
		var next *html.Node
		for child := parent.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			tested++
			iterations++

			if FindElement(child, tag, text) == nil {
				logger.Debug("title not found in child", "child", child.Data)
				continue
			}

			childParagraphs := countParagraphs(child)
			if childParagraphs == 0 {
				logger.Debug("child has no paragraphs", "child", child.Data, "best", parent.Data)
				return parent, nil
			}

			loss := 1 - float64(childParagraphs)/float64(countParagraphs(parent))
			if child == candidate.Anchor.Parent {
				logger.Debug("child is the title's parent", "child", child.Data, "best", parent.Data)
				return parent, nil
			}
			if loss > threshold {
				logger.Debug("content loss above threshold", "loss", loss, "threshold", threshold, "best", parent.Data)
				return parent, nil
			}

			logger.Debug("descending", "loss", loss, "child", child.Data)
			next = child
			break
		}

		if next != nil {
			parent = next
		} else if tested == 0 {
			iterations++
		}
	}
}
