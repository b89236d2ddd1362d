package easy

import "sync/atomic"

// Process-wide handle accounting. Ids are monotonic for the life of the
// process; the open count is incremented on construction and decremented on
// close, exactly once each.
var (
	idCounter   atomic.Uint64
	openHandles atomic.Int64
)

func nextID() uint64 { return idCounter.Add(1) }

// OpenHandles returns the number of currently open handles in the process.
func OpenHandles() int64 { return openHandles.Load() }

// ResetProcessState zeroes the id counter and open-handle count. Test hook;
// calling it with handles still open makes the count meaningless.
func ResetProcessState() {
	idCounter.Store(0)
	openHandles.Store(0)
}
