package articulo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/articulo"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := articulo.Errorf(articulo.ENOTITLE, "document %q has no title", "https://info.cern.ch/")

	assert.Equal(t, articulo.ENOTITLE, articulo.ErrorCode(err))
	assert.Equal(t, "document \"https://info.cern.ch/\" has no title", articulo.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, articulo.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, articulo.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading article: %w", articulo.Errorf(articulo.EITERATION, "no convergence"))

	assert.Equal(t, articulo.EITERATION, articulo.ErrorCode(err))
}

func TestErrorCode_InternalError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, articulo.EINTERNAL, articulo.ErrorCode(err))
	assert.Equal(t, "Internal error.", articulo.ErrorMessage(err))
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", &articulo.HTTPError{StatusCode: 404, Reason: "Not Found"})

	assert.Equal(t, articulo.EHTTP, articulo.ErrorCode(err))
	assert.Contains(t, articulo.ErrorMessage(err), "Not Found")
	assert.Contains(t, err.Error(), "404")

	var httpErr *articulo.HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 404, httpErr.StatusCode)
}
