package curl

import "sync/atomic"

// SList is the engine's singly-linked string list. Lists handed to the engine
// via a list-valued option must stay alive for the handle's lifetime and be
// freed exactly once; the adapter's retained-allocation store owns that.
//
// Node counts are tracked process-wide so tests can assert that every
// appended node is eventually freed, and freed only once.
type SList struct {
	Data string
	Next *SList

	freed bool
}

var liveSListNodes atomic.Int64

// Append adds a string to the end of the list and returns the head. A nil
// receiver starts a new list, mirroring the engine's append call.
func (l *SList) Append(s string) *SList {
	node := &SList{Data: s}
	liveSListNodes.Add(1)
	if l == nil {
		return node
	}
	tail := l
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = node
	return l
}

// FreeAll releases every node in the list. Freeing an already-freed list is
// a defect; it is counted rather than ignored so tests can detect it.
func (l *SList) FreeAll() {
	for node := l; node != nil; node = node.Next {
		if node.freed {
			doubleFrees.Add(1)
			continue
		}
		node.freed = true
		liveSListNodes.Add(-1)
	}
}

// Strings drains the list into a slice, preserving insertion order.
func (l *SList) Strings() []string {
	var out []string
	for node := l; node != nil; node = node.Next {
		out = append(out, node.Data)
	}
	return out
}

// Len returns the number of nodes in the list.
func (l *SList) Len() int {
	n := 0
	for node := l; node != nil; node = node.Next {
		n++
	}
	return n
}

var doubleFrees atomic.Int64

// LiveSListNodes returns the number of allocated, not-yet-freed list nodes.
func LiveSListNodes() int64 { return liveSListNodes.Load() }

// SListDoubleFrees returns how many nodes were freed more than once.
func SListDoubleFrees() int64 { return doubleFrees.Load() }

// ResetSListAccounting zeroes the allocation counters. Test hook.
func ResetSListAccounting() {
	liveSListNodes.Store(0)
	doubleFrees.Store(0)
}
