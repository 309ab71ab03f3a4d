package articulo

import (
	"context"
	"time"
)

// Record is a snapshot of everything extracted from one article.
type Record struct {
	ID          string    `json:"id,omitempty" yaml:"id,omitempty"`
	URL         string    `json:"url" yaml:"source"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Preview     string    `json:"preview,omitempty" yaml:"preview,omitempty"`
	Icon        string    `json:"icon,omitempty" yaml:"icon,omitempty"`
	Keywords    []string  `json:"keywords" yaml:"keywords,omitempty"`
	RSS         string    `json:"rss,omitempty" yaml:"rss,omitempty"`
	HasPaywall  bool      `json:"hasPaywall" yaml:"paywall"`
	Markup      string    `json:"markup,omitempty" yaml:"-"`
	Text        string    `json:"text,omitempty" yaml:"-"`
	FetchedAt   time.Time `json:"fetchedAt" yaml:"fetched"`

	// ContentHash is set by storage from the extracted text.
	ContentHash string `json:"contentHash,omitempty" yaml:"-"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// Writer persists extraction records.
type Writer interface {
	Write(ctx context.Context, rec *Record) error
}

// RecordService stores records and looks them up again.
type RecordService interface {
	Writer

	// FindRecordByURL returns the stored record for url.
	// Returns ENOTFOUND if it does not exist.
	FindRecordByURL(ctx context.Context, url string) (*Record, error)

	// FindRecords returns records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Host       *string
	HasPaywall *bool

	Offset int
	Limit  int
}
