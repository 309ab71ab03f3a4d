package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/mock"
	articuloslog "github.com/fwojciec/articulo/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingWriter_Write(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Writer{
		WriteFn: func(ctx context.Context, rec *articulo.Record) error {
			return errors.New("disk full")
		},
	}

	err := articuloslog.NewLoggingWriter(inner, logger).Write(context.Background(), &articulo.Record{URL: "https://info.cern.ch/"})

	assert.Error(t, err)
	output := buf.String()
	assert.Contains(t, output, "write")
	assert.Contains(t, output, "url=https://info.cern.ch/")
	assert.Contains(t, output, "err=\"disk full\"")
}
