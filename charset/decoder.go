// Package charset decodes fetched page bytes into text using the
// golang.org/x/net/html/charset sniffing rules and the WHATWG encoding
// index from golang.org/x/text.
package charset

import (
	"bytes"
	"unicode/utf8"

	"github.com/fwojciec/articulo"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultFallback is the charset tried when neither the response nor the
// page content names one.
const DefaultFallback = "utf-8"

// lastResortGuess is what charset.DetermineEncoding reports when it found
// nothing in the content at all.
const lastResortGuess = "windows-1252"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Ensure Decoder implements articulo.Decoder at compile time.
var _ articulo.Decoder = (*Decoder)(nil)

// Decoder turns a Response body into text.
//
// Candidates are tried in order: the charset declared by the response, the
// charset sniffed from the body (byte order mark or <meta> prescan) and the
// fallback. A UTF-8 candidate is accepted only for valid UTF-8 bytes.
type Decoder struct {
	fallback string
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithFallback sets the charset label tried last.
// Defaults to DefaultFallback.
func WithFallback(label string) Option {
	return func(d *Decoder) {
		d.fallback = label
	}
}

// NewDecoder creates a new Decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		fallback: DefaultFallback,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode returns the body of resp as text.
// Returns EDECODING if no candidate charset decodes the body.
func (d *Decoder) Decode(resp *articulo.Response) (string, error) {
	if resp == nil {
		return "", articulo.Errorf(articulo.EINVALID, "response required")
	}

	tried := make(map[string]bool)
	for _, label := range d.candidates(resp.Body, resp.Charset) {
		enc, name, ok := lookup(label)
		if !ok || tried[name] {
			continue
		}
		tried[name] = true

		if text, ok := decode(resp.Body, enc, name); ok {
			return text, nil
		}
	}

	return "", articulo.Errorf(articulo.EDECODING, "cannot decode %s: no charset matches the content", resp.URL)
}

// candidates returns the charset labels to try, in order.
func (d *Decoder) candidates(body []byte, declared string) []string {
	var labels []string
	if declared != "" {
		labels = append(labels, declared)
	}
	if _, name, certain := charset.DetermineEncoding(body, ""); certain || name != lastResortGuess {
		labels = append(labels, name)
	}
	if d.fallback != "" {
		labels = append(labels, d.fallback)
	}
	return labels
}

// lookup resolves a charset label to an encoding and its canonical name.
func lookup(label string) (encoding.Encoding, string, bool) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", false
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", false
	}
	return enc, name, true
}

func decode(body []byte, enc encoding.Encoding, name string) (string, bool) {
	if name == "utf-8" {
		if !utf8.Valid(body) {
			return "", false
		}
		return string(bytes.TrimPrefix(body, utf8BOM)), true
	}

	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", false
	}
	return string(out), true
}
