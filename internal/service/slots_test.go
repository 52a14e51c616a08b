package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotAllocatorAcquireSmallest(t *testing.T) {
	a := NewSlotAllocator(3)

	for want := 1; want <= 3; want++ {
		n, ok := a.Acquire()
		assert.True(t, ok)
		assert.Equal(t, want, n)
	}
	_, ok := a.Acquire()
	assert.False(t, ok)

	a.Release(2)
	a.Release(2)
	assert.Equal(t, []int{2}, a.Available())

	n, ok := a.Acquire()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestSlotAllocatorReleaseUnheldIsNoop(t *testing.T) {
	a := NewSlotAllocator(2)
	a.Release(1)
	a.Release(7)
	assert.Equal(t, []int{1, 2}, a.Available())
	assert.Empty(t, a.Held())
}

func TestSlotAllocatorLazyShrink(t *testing.T) {
	a := NewSlotAllocator(4)
	for i := 0; i < 3; i++ {
		a.Acquire()
	}
	assert.True(t, a.Park(4))

	a.Resize(2)
	assert.Equal(t, 2, a.Max())
	assert.Equal(t, []int{1, 2, 3}, a.Held(), "held numbers survive a shrink")
	assert.Empty(t, a.Closed())

	a.Release(3)
	assert.Empty(t, a.Available())
	assert.Equal(t, []int{1, 2}, a.Held())

	_, ok := a.Acquire()
	assert.False(t, ok)
}

func TestSlotAllocatorGrowSkipsTracked(t *testing.T) {
	a := NewSlotAllocator(3)
	a.Acquire()
	a.Acquire()
	a.Acquire()

	a.Resize(1)
	a.Resize(4)

	assert.Equal(t, []int{1, 2, 3}, a.Held())
	assert.Equal(t, []int{4}, a.Available())
}

func TestSlotAllocatorParkAndReopen(t *testing.T) {
	a := NewSlotAllocator(3)

	assert.True(t, a.Park(3))
	assert.False(t, a.Park(3))
	assert.False(t, a.Park(9))
	assert.False(t, a.Park(0))

	n, _ := a.Acquire()
	assert.True(t, a.Park(n), "held numbers can be parked on release")
	assert.Equal(t, []int{1, 3}, a.Closed())
	assert.True(t, a.IsClosed(1))

	assert.True(t, a.Reopen(1))
	assert.False(t, a.Reopen(1))
	assert.False(t, a.Reopen(2))
	assert.Equal(t, []int{1, 2}, a.Available())
}

func TestSlotAllocatorReset(t *testing.T) {
	a := NewSlotAllocator(2)
	a.Acquire()
	a.Park(2)

	a.Reset(3)
	assert.Equal(t, []int{1, 2, 3}, a.Available())
	assert.Empty(t, a.Closed())
	assert.Empty(t, a.Held())
	assert.False(t, a.IsHeld(1))
}
