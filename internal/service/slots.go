package service

import "sort"

type slotState int

const (
	slotAvailable slotState = iota + 1
	slotHeld
	slotClosed
)

// SlotAllocator hands out team numbers in 1..max, always the smallest free one.
//
// Every tracked number is in exactly one state: available, held by a team or
// closed by an admin. Shrinking max is lazy: held numbers above the new max
// stay held until released, then vanish. The allocator is not safe for
// concurrent use; TeamLifecycleService guards it with its own lock.
type SlotAllocator struct {
	max   int
	slots map[int]slotState
}

// NewSlotAllocator returns an allocator with 1..max available
func NewSlotAllocator(max int) *SlotAllocator {
	a := &SlotAllocator{}
	a.Reset(max)
	return a
}

// Max returns the current upper bound
func (a *SlotAllocator) Max() int {
	return a.max
}

// Acquire holds and returns the smallest available number, or false when none is free
func (a *SlotAllocator) Acquire() (int, bool) {
	for n := 1; n <= a.max; n++ {
		if a.slots[n] == slotAvailable {
			a.slots[n] = slotHeld
			return n, true
		}
	}
	return 0, false
}

// Release returns a held number to the pool. Numbers above max are dropped.
// Releasing a number that is not held is a no-op.
func (a *SlotAllocator) Release(n int) {
	if a.slots[n] != slotHeld {
		return
	}
	if n > a.max {
		delete(a.slots, n)
		return
	}
	a.slots[n] = slotAvailable
}

// Park marks n closed. Held numbers are parked directly, so callers release
// through Park rather than Release when the number should not be reused.
// It reports false when n is already closed or out of range.
func (a *SlotAllocator) Park(n int) bool {
	if n < 1 {
		return false
	}
	switch a.slots[n] {
	case slotClosed:
		return false
	case slotHeld:
		if n > a.max {
			delete(a.slots, n)
			return true
		}
	case slotAvailable:
	default:
		if n > a.max {
			return false
		}
	}
	a.slots[n] = slotClosed
	return true
}

// Reopen moves a closed number back to available. It reports false if n was not closed.
func (a *SlotAllocator) Reopen(n int) bool {
	if a.slots[n] != slotClosed {
		return false
	}
	a.slots[n] = slotAvailable
	return true
}

// Resize changes max. Growing adds only numbers that are neither held nor
// closed; shrinking drops available and closed numbers above the new max.
func (a *SlotAllocator) Resize(max int) {
	if max < 0 {
		max = 0
	}
	if max > a.max {
		for n := a.max + 1; n <= max; n++ {
			if _, tracked := a.slots[n]; !tracked {
				a.slots[n] = slotAvailable
			}
		}
	} else {
		for n, st := range a.slots {
			if n > max && st != slotHeld {
				delete(a.slots, n)
			}
		}
	}
	a.max = max
}

// Reset forgets all state and makes 1..max available
func (a *SlotAllocator) Reset(max int) {
	if max < 0 {
		max = 0
	}
	a.max = max
	a.slots = make(map[int]slotState, max)
	for n := 1; n <= max; n++ {
		a.slots[n] = slotAvailable
	}
}

// IsHeld reports whether n is currently held by a team
func (a *SlotAllocator) IsHeld(n int) bool {
	return a.slots[n] == slotHeld
}

// IsClosed reports whether n is closed
func (a *SlotAllocator) IsClosed(n int) bool {
	return a.slots[n] == slotClosed
}

func (a *SlotAllocator) Available() []int { return a.inState(slotAvailable) }
func (a *SlotAllocator) Held() []int      { return a.inState(slotHeld) }
func (a *SlotAllocator) Closed() []int    { return a.inState(slotClosed) }

func (a *SlotAllocator) inState(st slotState) []int {
	out := make([]int, 0)
	for n, s := range a.slots {
		if s == st {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}
