package mock

import (
	"context"

	"github.com/fwojciec/articulo"
)

var _ articulo.Writer = (*Writer)(nil)

// Writer is a mock implementation of articulo.Writer.
type Writer struct {
	WriteFn func(ctx context.Context, rec *articulo.Record) error
}

func (w *Writer) Write(ctx context.Context, rec *articulo.Record) error {
	return w.WriteFn(ctx, rec)
}

var _ articulo.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of articulo.RecordService.
type RecordService struct {
	WriteFn           func(ctx context.Context, rec *articulo.Record) error
	FindRecordByURLFn func(ctx context.Context, url string) (*articulo.Record, error)
	FindRecordsFn     func(ctx context.Context, filter articulo.RecordFilter) ([]*articulo.Record, error)
}

func (s *RecordService) Write(ctx context.Context, rec *articulo.Record) error {
	return s.WriteFn(ctx, rec)
}

func (s *RecordService) FindRecordByURL(ctx context.Context, url string) (*articulo.Record, error) {
	return s.FindRecordByURLFn(ctx, url)
}

func (s *RecordService) FindRecords(ctx context.Context, filter articulo.RecordFilter) ([]*articulo.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
