package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ articulo.Writer = &mock.Writer{}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *articulo.Record
		w := &mock.Writer{
			WriteFn: func(_ context.Context, rec *articulo.Record) error {
				calledWith = rec
				return nil
			},
		}

		rec := &articulo.Record{
			URL:   "https://info.cern.ch/",
			Title: "http://info.cern.ch - home of the first website",
		}

		err := w.Write(context.Background(), rec)

		require.NoError(t, err)
		assert.Equal(t, rec, calledWith)
	})

	t.Run("returns error from WriteFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("write failed")
		w := &mock.Writer{
			WriteFn: func(_ context.Context, _ *articulo.Record) error {
				return expectedErr
			},
		}

		err := w.Write(context.Background(), &articulo.Record{URL: "https://info.cern.ch/"})

		assert.Equal(t, expectedErr, err)
	})
}
