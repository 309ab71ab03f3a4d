package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/articulo"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ articulo.RecordService = (*RecordService)(nil)

const recordColumns = "id, url, title, description, preview, icon, keywords, rss, paywall, markup, text, content_hash, fetched_at"

// RecordService implements articulo.RecordService using SQLite.
// Records are keyed by URL; writing a URL again replaces the stored record
// and keeps its ID.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

// Write inserts or replaces the record for rec.URL. It sets rec.ID and
// rec.ContentHash, and rec.FetchedAt when it is zero.
func (s *RecordService) Write(ctx context.Context, rec *articulo.Record) error {
	if rec == nil {
		return articulo.Errorf(articulo.EINVALID, "record required")
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	keywords := rec.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	kw, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("encoding keywords: %w", err)
	}

	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = s.now()
	}
	rec.FetchedAt = rec.FetchedAt.UTC().Truncate(time.Second)
	rec.ContentHash = hashContent(rec.Text)

	var id string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO articles (`+recordColumns+`, host)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			preview = excluded.preview,
			icon = excluded.icon,
			keywords = excluded.keywords,
			rss = excluded.rss,
			paywall = excluded.paywall,
			markup = excluded.markup,
			text = excluded.text,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, uuid.New().String(), rec.URL, rec.Title, rec.Description, rec.Preview, rec.Icon, string(kw),
		rec.RSS, rec.HasPaywall, rec.Markup, rec.Text, rec.ContentHash,
		rec.FetchedAt.Format(time.RFC3339), hostOf(rec.URL)).Scan(&id)
	if err != nil {
		return fmt.Errorf("storing %s: %w", rec.URL, err)
	}
	rec.ID = id

	return nil
}

// FindRecordByURL retrieves the record stored for link.
func (s *RecordService) FindRecordByURL(ctx context.Context, link string) (*articulo.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM articles WHERE url = ?", link)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, articulo.Errorf(articulo.ENOTFOUND, "no record for %s", link)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter articulo.RecordFilter) ([]*articulo.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM articles WHERE 1=1")

	if filter.Host != nil {
		query.WriteString(" AND host = ?")
		args = append(args, strings.ToLower(*filter.Host))
	}
	if filter.HasPaywall != nil {
		query.WriteString(" AND paywall = ?")
		args = append(args, *filter.HasPaywall)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []*articulo.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*articulo.Record, error) {
	var rec articulo.Record
	var keywords, fetchedAt string

	if err := row.Scan(&rec.ID, &rec.URL, &rec.Title, &rec.Description, &rec.Preview, &rec.Icon,
		&keywords, &rec.RSS, &rec.HasPaywall, &rec.Markup, &rec.Text, &rec.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(keywords), &rec.Keywords); err != nil {
		return nil, fmt.Errorf("failed to parse keywords: %w", err)
	}
	if rec.Keywords == nil {
		rec.Keywords = []string{}
	}

	var err error
	if rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &rec, nil
}

// hostOf returns the lowercased host of link, or "" if it does not parse.
func hostOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
