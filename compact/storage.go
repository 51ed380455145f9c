package compact

import (
	"math"
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/aglyzov/compactvec/tagged"
)

const (
	shortCapacityMax = math.MaxUint16 // largest capacity of a short-header block
	longCapacityMax  = math.MaxUint32 // largest capacity of a long-header block
)

type header[S constraints.Unsigned] struct {
	size     S
	capacity S
}

type (
	shortHeader = header[uint16]
	longHeader  = header[uint32]
)

// block mirrors the beginning of an allocation; it is never allocated itself.
type block[S constraints.Unsigned, T any] struct {
	hdr  header[S]
	data [0]T
}

// dataOffset returns the offset of the first element in a block.
func dataOffset[S constraints.Unsigned, T any]() uintptr {
	var b block[S, T]

	return unsafe.Offsetof(b.data)
}

// allocBlock allocates a zeroed header followed by capacity slots of T and
// stores the capacity in the header.
func allocBlock[S constraints.Unsigned, T any](capacity int) unsafe.Pointer {
	var (
		sizeType = reflect.TypeFor[S]()
		typ      = reflect.StructOf([]reflect.StructField{
			{Name: "Size", Type: sizeType},
			{Name: "Capacity", Type: sizeType},
			{Name: "Data", Type: reflect.ArrayOf(capacity, reflect.TypeFor[T]())},
		})
	)

	check(typ.Field(2).Offset == dataOffset[S, T](), "block layout mismatch")

	ptr := reflect.New(typ).UnsafePointer()
	(*header[S])(ptr).capacity = S(capacity)

	return ptr
}

// Storage owns at most one block: a header (size, capacity) immediately
// followed by the element slots. The pointer tag selects the header width.
//
// Storage manages raw slots and counters only; it does not construct
// elements. Free is the one place where it destroys them.
type Storage[T any] struct {
	_   noCopy
	ptr tagged.Ptr
}

// Allocate establishes a block for capacity elements with the size set to 0.
// The storage must be empty.
func (s *Storage[T]) Allocate(capacity int) {
	check(s.ptr.IsNil(), "allocate on a non-empty storage")
	check(capacity >= 0 && uint64(capacity) <= longCapacityMax, "capacity out of range")

	if capacity <= shortCapacityMax {
		s.ptr.Set(allocBlock[uint16, T](capacity))

		return
	}

	s.ptr.Set(allocBlock[uint32, T](capacity))
	s.ptr.SetFlag(true)
}

// Free destroys the live elements in order and drops the block.
func (s *Storage[T]) Free() {
	if s.ptr.IsNil() {
		return
	}

	live := s.Slice()
	for i := range live {
		destroy(&live[i])
	}

	s.ptr = tagged.Ptr{}
}

// forget drops the block without destroying anything: the elements have
// been relocated elsewhere.
func (s *Storage[T]) forget() {
	s.ptr = tagged.Ptr{}
}

func (s *Storage[T]) Len() int {
	switch {
	case s.ptr.IsNil():
		return 0
	case s.ptr.HasFlag():
		return int(tagged.As[longHeader](s.ptr).size)
	default:
		return int(tagged.As[shortHeader](s.ptr).size)
	}
}

func (s *Storage[T]) Cap() int {
	switch {
	case s.ptr.IsNil():
		return 0
	case s.ptr.HasFlag():
		return int(tagged.As[longHeader](s.ptr).capacity)
	default:
		return int(tagged.As[shortHeader](s.ptr).capacity)
	}
}

// Long reports whether the block uses the 32-bit header.
func (s *Storage[T]) Long() bool {
	return s.ptr.HasFlag()
}

// HeaderSize returns the number of bytes in front of the first element
// (header plus alignment padding), 0 when empty.
func (s *Storage[T]) HeaderSize() uintptr {
	switch {
	case s.ptr.IsNil():
		return 0
	case s.ptr.HasFlag():
		return dataOffset[uint32, T]()
	default:
		return dataOffset[uint16, T]()
	}
}

// Data returns a pointer to the first slot or nil when empty.
func (s *Storage[T]) Data() *T {
	if s.ptr.IsNil() {
		return nil
	}

	return (*T)(unsafe.Add(s.ptr.Pointer(), s.HeaderSize()))
}

// Slice returns the live elements [0, Len).
func (s *Storage[T]) Slice() []T {
	return unsafe.Slice(s.Data(), s.Len())
}

// slots returns every slot of the block [0, Cap).
func (s *Storage[T]) slots() []T {
	return unsafe.Slice(s.Data(), s.Cap())
}

// at returns the i-th slot without any bounds check.
func (s *Storage[T]) at(i int) *T {
	var zero T

	return (*T)(unsafe.Add(unsafe.Pointer(s.Data()), uintptr(i)*unsafe.Sizeof(zero)))
}

// AdvanceSize adds delta (may be negative) to the size. Nothing is
// constructed, destroyed or validated: the caller has already done it.
func (s *Storage[T]) AdvanceSize(delta int) {
	check(!s.ptr.IsNil(), "advance size of an empty storage")

	if s.ptr.HasFlag() {
		h := tagged.As[longHeader](s.ptr)
		h.size = uint32(int(h.size) + delta)
	} else {
		h := tagged.As[shortHeader](s.ptr)
		h.size = uint16(int(h.size) + delta)
	}
}

func (s *Storage[T]) Swap(other *Storage[T]) {
	s.ptr.Swap(&other.ptr)
}
