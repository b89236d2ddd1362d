//go:build linux

package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
)

func pipePair(t *testing.T) (r, w int) {
	t.Helper()
	var fds [2]int
	require.NoError(t, unix.Pipe(fds[:]))
	t.Cleanup(func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func TestEpollLoopReadReadiness(t *testing.T) {
	loop, err := NewEpollLoop()
	require.NoError(t, err)
	defer loop.Close()

	r, w := pipePair(t)

	var got Events
	watch, err := loop.Add(uintptr(r), EventRead, func(ev Events) { got |= ev })
	require.NoError(t, err)

	_, err = unix.Write(w, []byte("x"))
	require.NoError(t, err)

	require.NoError(t, loop.Poll(1000))
	assert.NotZero(t, got&EventRead)

	require.NoError(t, watch.Close(nil))
}

func TestEpollLoopCloseConfirm(t *testing.T) {
	loop, err := NewEpollLoop()
	require.NoError(t, err)
	defer loop.Close()

	r, _ := pipePair(t)

	watch, err := loop.Add(uintptr(r), EventRead, func(Events) {})
	require.NoError(t, err)

	confirmed := false
	require.NoError(t, watch.Close(func() { confirmed = true }))
	assert.False(t, confirmed)

	require.NoError(t, loop.Poll(0))
	assert.True(t, confirmed)
}

func TestEpollLoopDuplicateAdd(t *testing.T) {
	loop, err := NewEpollLoop()
	require.NoError(t, err)
	defer loop.Close()

	r, _ := pipePair(t)

	_, err = loop.Add(uintptr(r), EventRead, func(Events) {})
	require.NoError(t, err)

	_, err = loop.Add(uintptr(r), EventRead, func(Events) {})
	assert.Error(t, err)
}
