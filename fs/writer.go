// Package fs writes extraction records to disk as Markdown files.
package fs

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/articulo"
	"gopkg.in/yaml.v3"
)

// URLToPath converts an article URL to a relative file path rooted at the
// lowercased host.
// Example: https://example.com/news/story → example.com/news/story.md
//
// A query string selects a different page on most news sites, so it is
// folded into the file name as a short hash. Fragments are ignored.
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", articulo.Errorf(articulo.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" || host == "." || host == ".." {
		return "", articulo.Errorf(articulo.EINVALID, "URL %q has no host", rawURL)
	}

	p := u.Path
	for _, segment := range strings.Split(p, "/") {
		if segment == ".." {
			return "", articulo.Errorf(articulo.EINVALID, "path traversal in URL %q", rawURL)
		}
	}

	dir := strings.HasSuffix(p, "/") || p == ""
	p = strings.TrimPrefix(path.Clean("/"+p), "/")

	switch {
	case p == "":
		p = "index"
	case dir:
		p += "/index"
	}
	if u.RawQuery != "" {
		p += "-" + shortHash(u.RawQuery)
	}

	return filepath.Join(host, filepath.FromSlash(p)+".md"), nil
}

func shortHash(s string) string {
	h := xxhash.Sum64String(s)
	b := make([]byte, 4)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// FormatRecord renders a record as Markdown with YAML front matter.
// body is the article content; FormatRecord falls back to the record's
// plain text when body is empty.
func FormatRecord(rec *articulo.Record, body string) (string, error) {
	meta, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}
	if body == "" {
		body = rec.Text
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String(), nil
}

// ParseFrontMatter reads the record metadata back from a file produced by
// FormatRecord. Content fields are not restored.
func ParseFrontMatter(data []byte) (*articulo.Record, error) {
	rest, ok := bytes.CutPrefix(data, []byte("---\n"))
	if !ok {
		return nil, articulo.Errorf(articulo.EINVALID, "missing front matter")
	}
	meta, _, ok := bytes.Cut(rest, []byte("\n---\n"))
	if !ok {
		return nil, articulo.Errorf(articulo.EINVALID, "unterminated front matter")
	}

	var rec articulo.Record
	if err := yaml.Unmarshal(meta, &rec); err != nil {
		return nil, articulo.Errorf(articulo.EINVALID, "invalid front matter: %v", err)
	}
	return &rec, nil
}

// Ensure Writer implements articulo.Writer at compile time.
var _ articulo.Writer = (*Writer)(nil)

// Writer writes records as Markdown files under a base directory.
// Files are written to a temporary name and renamed into place, so readers
// never observe a partial file.
type Writer struct {
	baseDir   string
	converter articulo.Converter
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithConverter sets the converter used to turn the record markup into
// Markdown. Without one the plain text is written.
func WithConverter(c articulo.Converter) WriterOption {
	return func(w *Writer) {
		w.converter = c
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write stores rec at baseDir/URLToPath(rec.URL).
func (w *Writer) Write(ctx context.Context, rec *articulo.Record) error {
	if rec == nil {
		return articulo.Errorf(articulo.EINVALID, "record required")
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(rec.URL)
	if err != nil {
		return err
	}

	var body string
	if w.converter != nil && rec.Markup != "" {
		if body, err = w.converter.Convert(rec.Markup); err != nil {
			return fmt.Errorf("converting %s: %w", rec.URL, err)
		}
	}

	content, err := FormatRecord(rec, body)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".articulo-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
