package tagged

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroPtr(t *testing.T) {
	t.Parallel()

	var ptr Ptr

	assert.True(t, ptr.IsNil())
	assert.False(t, ptr.HasFlag())
	assert.True(t, ptr.Pointer() == nil)
	assert.Nil(t, As[int](ptr))

	ptr.SetFlag(false) // no-op on nil

	assert.True(t, ptr.IsNil())
	assert.Panics(t, func() { ptr.SetFlag(true) })
}

func TestHeapPtr(t *testing.T) {
	t.Parallel()

	heap := new(int)
	*heap = 10

	ptr := New(unsafe.Pointer(heap))
	assert.False(t, ptr.HasFlag())
	assert.False(t, ptr.IsNil())

	ptr.SetFlag(true)
	assert.True(t, ptr.HasFlag())
	assert.False(t, ptr.IsNil())
	assert.Equal(t, heap, As[int](ptr))
	assert.Equal(t, 10, *As[int](ptr))

	ptr.SetFlag(true) // idempotent
	assert.Equal(t, heap, As[int](ptr))

	ptr.SetFlag(false)
	assert.False(t, ptr.HasFlag())
	assert.Equal(t, heap, As[int](ptr))
}

func TestStackPtr(t *testing.T) {
	t.Parallel()

	var stack int64 = 1

	ptr := New(unsafe.Pointer(&stack))
	assert.False(t, ptr.HasFlag())

	ptr.SetFlag(true)
	assert.True(t, ptr.HasFlag())
	assert.Equal(t, &stack, As[int64](ptr))
}

func TestSetResetsFlag(t *testing.T) {
	t.Parallel()

	var (
		a, b = new(uint32), new(uint32)
		ptr  = New(unsafe.Pointer(a))
	)

	ptr.SetFlag(true)
	ptr.Set(unsafe.Pointer(b))

	assert.False(t, ptr.HasFlag())
	assert.Equal(t, b, As[uint32](ptr))

	ptr.SetFlag(true)
	ptr.Set(nil)

	assert.True(t, ptr.IsNil())
	assert.False(t, ptr.HasFlag())
}

func TestOddAddress(t *testing.T) {
	t.Parallel()

	var (
		base = unsafe.Pointer(new(uint64))
		odd  = unsafe.Add(base, 1)
	)

	assert.Panics(t, func() { New(odd) })

	var ptr Ptr
	assert.Panics(t, func() { ptr.Set(odd) })
	assert.True(t, ptr.IsNil())
}

func TestSwap(t *testing.T) {
	t.Parallel()

	var (
		a, b = new(int), new(int)
		pa   = New(unsafe.Pointer(a))
		pb   = New(unsafe.Pointer(b))
	)

	pb.SetFlag(true)
	pa.Swap(&pb)

	assert.Equal(t, b, As[int](pa))
	assert.True(t, pa.HasFlag())
	assert.Equal(t, a, As[int](pb))
	assert.False(t, pb.HasFlag())

	var empty Ptr
	pa.Swap(&empty)

	assert.True(t, pa.IsNil())
	assert.False(t, pa.HasFlag())
	assert.Equal(t, b, As[int](empty))
	assert.True(t, empty.HasFlag())
}

func TestPtrString(t *testing.T) {
	t.Parallel()

	heap := new(int)
	ptr := New(unsafe.Pointer(heap))

	for _, tcase := range []*struct {
		Flag bool
		Exp  string
	}{
		{false, fmt.Sprintf("<tagged|%#x|false>", uintptr(unsafe.Pointer(heap)))},
		{true, fmt.Sprintf("<tagged|%#x|true>", uintptr(unsafe.Pointer(heap)))},
	} {
		tcase := tcase

		t.Run(tcase.Exp, func(t *testing.T) {
			p := ptr
			p.SetFlag(tcase.Flag)

			require.Equal(t, tcase.Exp, p.String())
		})
	}
}

func TestPair(t *testing.T) {
	t.Parallel()

	var pair Pair

	assert.True(t, pair.IsNil())
	assert.False(t, pair.HasFlag())

	// unlike Ptr a nil Pair may be flagged
	pair.SetFlag(true)
	assert.True(t, pair.IsNil())
	assert.True(t, pair.HasFlag())

	heap := new(int16)
	pair.Set(unsafe.Pointer(heap))
	assert.False(t, pair.HasFlag())
	assert.Equal(t, heap, PairAs[int16](pair))

	other := NewPair(nil)
	other.SetFlag(true)
	pair.Swap(&other)

	assert.True(t, pair.IsNil())
	assert.True(t, pair.HasFlag())
	assert.Equal(t, heap, PairAs[int16](other))
	assert.False(t, other.HasFlag())
	assert.Equal(t, fmt.Sprintf("<tagged.Pair|%#x|false>", uintptr(unsafe.Pointer(heap))), other.String())
}

func TestPtrSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(Ptr{}))
	assert.Greater(t, int(unsafe.Sizeof(Pair{})), int(unsafe.Sizeof(Ptr{})))
}
