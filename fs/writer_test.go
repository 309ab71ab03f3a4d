package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/fs"
	"github.com/fwojciec/articulo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "simple path", url: "https://news.example/world/story", want: "news.example/world/story.md"},
		{name: "trailing slash becomes index", url: "https://news.example/world/", want: "news.example/world/index.md"},
		{name: "root path becomes index", url: "https://info.cern.ch/", want: "info.cern.ch/index.md"},
		{name: "root without trailing slash", url: "https://info.cern.ch", want: "info.cern.ch/index.md"},
		{name: "lowercases host and drops port", url: "https://News.Example:8443/a", want: "news.example/a.md"},
		{name: "ignores fragment", url: "https://news.example/a#comments", want: "news.example/a.md"},
		{name: "collapses duplicate slashes", url: "https://news.example//a//b", want: "news.example/a/b.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestURLToPath_Query(t *testing.T) {
	t.Parallel()

	a, err := fs.URLToPath("https://news.example/article?id=1")
	require.NoError(t, err)
	b, err := fs.URLToPath("https://news.example/article?id=2")
	require.NoError(t, err)
	again, err := fs.URLToPath("https://news.example/article?id=1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, again)
	assert.True(t, strings.HasPrefix(a, filepath.FromSlash("news.example/article-")))
	assert.True(t, strings.HasSuffix(a, ".md"))
}

func TestURLToPath_Rejects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"https://news.example/../../../etc/passwd",
		"/relative/path",
		"://bad",
	} {
		_, err := fs.URLToPath(raw)
		assert.Equal(t, articulo.EINVALID, articulo.ErrorCode(err), raw)
	}
}

func newRecord() *articulo.Record {
	return &articulo.Record{
		URL:         "https://info.cern.ch/",
		Title:       "http://info.cern.ch - home of the first website",
		Description: "Lorem ipsum",
		Keywords:    []string{"lorem", "ipsum"},
		HasPaywall:  true,
		Markup:      "<body><p>From here you can:</p></body>",
		Text:        "From here you can:",
		FetchedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	t.Run("writes front matter then body", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatRecord(newRecord(), "# Heading\n\nBody\n")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "---\nsource: https://info.cern.ch/\n"))
		assert.Contains(t, got, "http://info.cern.ch - home of the first website")
		assert.Contains(t, got, "paywall: true\n")
		assert.Contains(t, got, "  - lorem\n")
		assert.NotContains(t, got, "markup")
		assert.True(t, strings.HasSuffix(got, "---\n\n# Heading\n\nBody\n"))
	})

	t.Run("falls back to text", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatRecord(newRecord(), "")

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got, "---\n\nFrom here you can:\n"))
	})

	t.Run("front matter parses back", func(t *testing.T) {
		t.Parallel()

		rec := newRecord()
		got, err := fs.FormatRecord(rec, "")
		require.NoError(t, err)

		parsed, err := fs.ParseFrontMatter([]byte(got))

		require.NoError(t, err)
		assert.Equal(t, rec.URL, parsed.URL)
		assert.Equal(t, rec.Title, parsed.Title)
		assert.Equal(t, rec.Keywords, parsed.Keywords)
		assert.True(t, parsed.HasPaywall)
		assert.True(t, rec.FetchedAt.Equal(parsed.FetchedAt))
		assert.Empty(t, parsed.Text)
	})
}

func TestParseFrontMatter_Invalid(t *testing.T) {
	t.Parallel()

	for _, data := range []string{
		"no front matter",
		"---\ntitle: x\n",
		"---\ntitle: [\n---\n",
	} {
		_, err := fs.ParseFrontMatter([]byte(data))
		assert.Equal(t, articulo.EINVALID, articulo.ErrorCode(err), data)
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes record under host directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		w := fs.NewWriter(base)

		err := w.Write(context.Background(), newRecord())
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(base, "info.cern.ch", "index.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "source: https://info.cern.ch/")
		assert.Contains(t, string(data), "From here you can:")

		entries, err := os.ReadDir(filepath.Join(base, "info.cern.ch"))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file left behind")
	})

	t.Run("converts markup when a converter is set", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		var got string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				got = html
				return "**converted**", nil
			},
		}
		w := fs.NewWriter(base, fs.WithConverter(conv))

		require.NoError(t, w.Write(context.Background(), newRecord()))

		data, err := os.ReadFile(filepath.Join(base, "info.cern.ch", "index.md"))
		require.NoError(t, err)
		assert.Equal(t, "<body><p>From here you can:</p></body>", got)
		assert.True(t, strings.HasSuffix(string(data), "\n**converted**\n"))
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		w := fs.NewWriter(base)
		rec := newRecord()
		require.NoError(t, w.Write(context.Background(), rec))

		rec.Text = "Updated"
		require.NoError(t, w.Write(context.Background(), rec))

		data, err := os.ReadFile(filepath.Join(base, "info.cern.ch", "index.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Updated")
		assert.NotContains(t, string(data), "From here you can:")
	})

	t.Run("propagates converter errors", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("boom")
			},
		}
		w := fs.NewWriter(t.TempDir(), fs.WithConverter(conv))

		err := w.Write(context.Background(), newRecord())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		assert.Equal(t, articulo.EINVALID, articulo.ErrorCode(w.Write(context.Background(), &articulo.Record{})))
		assert.Equal(t, articulo.EINVALID, articulo.ErrorCode(w.Write(context.Background(), nil)))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		rec := newRecord()
		rec.URL = "https://news.example/../../../etc/passwd"

		err := w.Write(context.Background(), rec)

		assert.Equal(t, articulo.EINVALID, articulo.ErrorCode(err))
		assert.Contains(t, articulo.ErrorMessage(err), "path traversal")
	})
}
