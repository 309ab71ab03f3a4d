package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements articulo.Converter at compile time.
var _ articulo.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{"paragraph", `<p>Hello, world!</p>`, []string{"Hello, world!"}},
		{"headings", `<h1>Title</h1><h2>Subtitle</h2>`, []string{"# Title", "## Subtitle"}},
		{"links", `<p>Visit <a href="https://info.cern.ch">CERN</a> for more.</p>`, []string{"[CERN](https://info.cern.ch)"}},
		{"unordered list", `<ul><li>First</li><li>Second</li></ul>`, []string{"- First", "- Second"}},
		{"ordered list", `<ol><li>First</li><li>Second</li></ol>`, []string{"1. First", "2. Second"}},
		{"emphasis", `<p><strong>Bold</strong> and <em>italic</em> text.</p>`, []string{"**Bold**", "*italic*"}},
		{"blockquote", `<blockquote><p>This is a quote.</p></blockquote>`, []string{"> This is a quote."}},
		{"code", `<pre><code class="language-go">package main</code></pre>`, []string{"```go", "package main"}},
		{
			"table",
			`<table><thead><tr><th>Name</th><th>Age</th></tr></thead><tbody><tr><td>Alice</td><td>30</td></tr></tbody></table>`,
			[]string{"Name", "Alice", "|", "---"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().Convert(tt.html)

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, md, want)
			}
		})
	}
}

func TestConverter_ConvertsExtractedArticle(t *testing.T) {
	t.Parallel()

	html := "<article>\n<h1>X</h1>\n<p>One</p>\n<p>Two</p>\n</article>"

	md, err := htmltomarkdown.NewConverter().Convert(html)

	require.NoError(t, err)
	assert.Contains(t, md, "# X")
	assert.Contains(t, md, "One\n\nTwo")
	assert.NotContains(t, md, "<article>")
}

func TestConverter_ResolvesRelativeLinks(t *testing.T) {
	t.Parallel()

	html := `<p>See <a href="/hypertext/WWW/TheProject.html">the project</a>.</p>`

	md, err := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://info.cern.ch")).Convert(html)

	require.NoError(t, err)
	assert.Contains(t, md, "(https://info.cern.ch/hypertext/WWW/TheProject.html)")
}

func TestConverter_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := htmltomarkdown.NewConverter().Convert("  ")

	require.Error(t, err)
	assert.Equal(t, articulo.EINVALID, articulo.ErrorCode(err))
}
