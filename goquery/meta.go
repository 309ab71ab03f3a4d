package goquery

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	descriptionMetaKeys   = []string{"name", "property"}
	descriptionMetaValues = []string{"description", "og:description", "twitter:description"}

	previewMetaKeys   = []string{"name", "property"}
	previewMetaValues = []string{"og:image", "twitter:image", "twitter:image:src"}
)

// feedTypes are the link types accepted as a feed, in priority order.
var feedTypes = []string{"application/rss+xml", "application/atom+xml"}

// paywallPattern matches a schema.org isAccessibleForFree=false declaration
// inside JSON-LD, with the value given as a boolean or a string.
var paywallPattern = regexp.MustCompile(`"isAccessibleForFree"\s*:\s*"?(?i:false)"?`)

// findMeta returns the first meta tag whose key attribute equals one of
// values. Keys are tried in order, then values, so the first key wins over
// any later key. Returns nil if none match.
func findMeta(doc *goquery.Document, keys, values []string) *goquery.Selection {
	for _, key := range keys {
		for _, value := range values {
			sel := doc.Find(fmt.Sprintf("meta[%s=%q]", key, value)).First()
			if sel.Length() > 0 {
				return sel
			}
		}
	}
	return nil
}

// metaContent returns the content attribute of the first matching meta tag.
func metaContent(doc *goquery.Document, keys, values []string) string {
	sel := findMeta(doc, keys, values)
	if sel == nil {
		return ""
	}
	content, _ := sel.Attr("content")
	return content
}

// Description returns the page description from meta tags.
func Description(doc *goquery.Document) string {
	return metaContent(doc, descriptionMetaKeys, descriptionMetaValues)
}

// Preview returns the preview image URL from meta tags, resolved against base.
func Preview(doc *goquery.Document, base *url.URL) string {
	return resolveURL(base, metaContent(doc, previewMetaKeys, previewMetaValues))
}

// Keywords returns the comma-separated keywords from meta[name=keywords].
// Returns an empty slice if there are none.
func Keywords(doc *goquery.Document) []string {
	keywords := []string{}
	for _, kw := range strings.Split(metaContent(doc, []string{"name"}, []string{"keywords"}), ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// Icon returns the URL of the page icon, resolved against base.
//
// Among link[rel=icon] elements with numeric sizes the widest wins, the
// first one on ties. An icon without sizes is used only when no sized icon
// exists, and one with non-numeric sizes (such as "any") only when there is
// neither.
func Icon(doc *goquery.Document, base *url.URL) string {
	var sized, unsized, unknown string
	widest := 0

	doc.Find("link[rel~='icon']").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		sizes, exists := sel.Attr("sizes")
		if !exists || strings.TrimSpace(sizes) == "" {
			if unsized == "" {
				unsized = href
			}
			return
		}

		width, ok := iconWidth(sizes)
		if !ok {
			if unknown == "" {
				unknown = href
			}
			return
		}
		if width > widest {
			sized, widest = href, width
		}
	})

	switch {
	case sized != "":
		return resolveURL(base, sized)
	case unsized != "":
		return resolveURL(base, unsized)
	default:
		return resolveURL(base, unknown)
	}
}

// iconWidth returns the largest width in a sizes attribute such as
// "16x16 32x32". Reports false if no entry is numeric.
func iconWidth(sizes string) (int, bool) {
	widest, found := 0, false
	for _, size := range strings.Fields(strings.ToLower(sizes)) {
		w, h, ok := strings.Cut(size, "x")
		if !ok {
			continue
		}
		width, err := strconv.Atoi(w)
		if err != nil {
			continue
		}
		if _, err := strconv.Atoi(h); err != nil {
			continue
		}
		if !found || width > widest {
			widest, found = width, true
		}
	}
	return widest, found
}

// RSS returns the URL of the page feed, resolved against base.
// RSS feeds are preferred over Atom feeds.
func RSS(doc *goquery.Document, base *url.URL) string {
	for _, typ := range feedTypes {
		sel := doc.Find(fmt.Sprintf("link[type=%q][href]", typ)).First()
		if href, exists := sel.Attr("href"); exists && href != "" {
			return resolveURL(base, href)
		}
	}
	return ""
}

// HasPaywall reports whether the page marks its content as not free, either
// in JSON-LD or with schema.org microdata.
func HasPaywall(doc *goquery.Document) bool {
	found := false
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		found = paywallPattern.MatchString(sel.Text())
		return !found
	})
	if found {
		return true
	}

	doc.Find(`[itemprop="isAccessibleForFree"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		content, _ := sel.Attr("content")
		found = strings.EqualFold(strings.TrimSpace(content), "false")
		return !found
	})
	return found
}

// resolveURL resolves href against base. Returns href unchanged if base is
// nil or href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
