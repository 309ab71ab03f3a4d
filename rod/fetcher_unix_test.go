//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/articulo/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// processAlive reports whether pid exists. Signal 0 performs the existence
// check without delivering anything.
func processAlive(pid int) bool {
	return syscall.Kill(pid, syscall.Signal(0)) == nil
}

func TestFetcher_CloseStopsBrowserProcess(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.True(t, processAlive(pid), "browser not running after launch")

	require.NoError(t, fetcher.Close())

	assert.Eventually(t, func() bool {
		return !processAlive(pid)
	}, 2*time.Second, 50*time.Millisecond, "browser %d still running after Close", pid)
}
