//go:build integration

package rod_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/articulo/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Browser(t *testing.T) {
	t.Parallel()

	t.Run("recycles once the page budget is spent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2), rod.WithLogger(logger))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		require.NotNil(t, first)

		manager.IncrementPageCount()
		manager.IncrementPageCount()

		second := manager.Browser()
		require.NotNil(t, second)
		assert.NotSame(t, first, second)
		assert.Contains(t, buf.String(), "browser recycled")
	})

	t.Run("keeps the browser below the page budget", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(5))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		require.NotNil(t, first)

		manager.IncrementPageCount()
		manager.IncrementPageCount()

		assert.Same(t, first, manager.Browser())
	})

	t.Run("never recycles without a page budget", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(0))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		for i := 0; i < 10; i++ {
			manager.IncrementPageCount()
		}

		assert.Same(t, first, manager.Browser())
	})

	t.Run("returns nil after close", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager()
		require.NoError(t, err)
		require.NoError(t, manager.Close())

		assert.Nil(t, manager.Browser())
		assert.NoError(t, manager.Close())
	})
}
