package goquery_test

import (
	"testing"

	"github.com/fwojciec/articulo/goquery"
	"github.com/stretchr/testify/assert"
)

const dirtyHTML = `<html><head><title>T</title></head><body><div class="wrap"><p id="x">Hi <span>there</span></p><script>bad()</script><!-- note --></div><form><p>in form</p></form></body></html>`

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes, unwraps and keeps attributes", func(t *testing.T) {
		t.Parallel()

		body := mustParse(t, dirtyHTML).Find("body").Get(0)

		got := render(t, goquery.Sanitize(body))

		assert.Equal(t, `<body><p id="x">Hi there</p></body>`, got)
	})

	t.Run("does not modify the region", func(t *testing.T) {
		t.Parallel()

		body := mustParse(t, dirtyHTML).Find("body").Get(0)
		before := render(t, body)

		_ = goquery.Sanitize(body)

		assert.Equal(t, before, render(t, body))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		body := mustParse(t, dirtyHTML).Find("body").Get(0)
		once := goquery.Sanitize(body)

		assert.Equal(t, render(t, once), render(t, goquery.Sanitize(once)))
	})

	t.Run("unwraps layout elements around headings", func(t *testing.T) {
		t.Parallel()

		article := mustParse(t, nestedHeadingHTML).Find("article").Get(0)

		got := render(t, goquery.Sanitize(article))

		assert.Equal(t, "<article>\n<h1>X</h1>\n<p>One</p>\n<p>Two</p>\n</article>", got)
	})

	t.Run("drops head content from the root element", func(t *testing.T) {
		t.Parallel()

		root := mustParse(t, cernHTML).Find("html").Get(0)

		got := render(t, goquery.Sanitize(root))

		assert.NotContains(t, got, "<title>")
		assert.NotContains(t, got, "<head>")
		assert.Contains(t, got, "<h1>"+cernTitle+"</h1>")
		assert.Contains(t, got, `<a href="http://info.cern.ch/hypertext/WWW/TheProject.html">`)
	})

	t.Run("keeps tables and media", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><section><table><tbody><tr><td>1</td></tr></tbody></table><figure><img src="a.png" alt="a"/><figcaption>A</figcaption></figure></section></body></html>`
		section := mustParse(t, markup).Find("section").Get(0)

		got := render(t, goquery.Sanitize(section))

		assert.Equal(t, `<section><table><tbody><tr><td>1</td></tr></tbody></table><figure><img src="a.png" alt="a"/><figcaption>A</figcaption></figure></section>`, got)
	})
}
