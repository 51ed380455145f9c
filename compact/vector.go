package compact

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Vector is a dynamic array of T that occupies one machine word. The zero
// value is an empty vector ready to use.
//
// Positions are plain indices; pointers and slices obtained from At, Slice
// and the iterators stay valid until the next operation that reallocates or
// shifts elements.
type Vector[T any] struct {
	store Storage[T]
}

// New returns a vector holding elems with the capacity of exactly len(elems).
// The elements are moved in: the vector takes over ownership.
func New[T any](elems ...T) *Vector[T] {
	return Init(&Vector[T]{}, elems...)
}

// Init clears v and fills it with elems the same way New does.
func Init[T any](v *Vector[T], elems ...T) *Vector[T] {
	v.Clear()

	if len(elems) > 0 {
		v.store.Allocate(len(elems))
		copy(v.store.slots(), elems)
		v.store.AdvanceSize(len(elems))
	}

	return v
}

// FromSlice returns a vector holding copies of src with the capacity of
// exactly len(src). If a copy fails the copies made so far are destroyed and
// the error is returned.
func FromSlice[T any](src []T) (*Vector[T], error) {
	v := &Vector[T]{}

	if err := InitFromSlice(v, src); err != nil {
		return nil, err
	}

	return v, nil
}

// InitFromSlice clears v and fills it with copies of src the same way
// FromSlice does. On error v is left empty. src must not alias v.
func InitFromSlice[T any](v *Vector[T], src []T) error {
	v.Clear()

	if len(src) == 0 {
		return nil
	}

	v.store.Allocate(len(src))
	slots := v.store.slots()

	for i := range src {
		if err := construct(&slots[i], &src[i]); err != nil {
			v.Clear()

			return errors.Wrapf(err, "compact: copy element %d", i)
		}

		v.store.AdvanceSize(1)
	}

	return nil
}

// Collect pushes every value of seq into a new vector.
func Collect[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}

	for elem := range seq {
		v.Push(elem)
	}

	return v
}

func (v *Vector[T]) Len() int {
	return v.store.Len()
}

func (v *Vector[T]) Cap() int {
	return v.store.Cap()
}

func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Slice returns the live elements as a Go slice sharing the vector's memory.
func (v *Vector[T]) Slice() []T {
	return v.store.Slice()
}

// At returns a pointer to the i-th element.
func (v *Vector[T]) At(i int) *T {
	if assertions {
		if n := v.Len(); uint(i) >= uint(n) {
			panicIndex(i, n)
		}
	}

	return v.store.at(i)
}

func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set destroys the i-th element and moves elem in its place.
func (v *Vector[T]) Set(i int, elem T) {
	p := v.At(i)
	destroy(p)
	*p = elem
}

func (v *Vector[T]) Front() *T {
	return v.At(0)
}

func (v *Vector[T]) Back() *T {
	return v.At(v.Len() - 1)
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, elem := range v.Slice() {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs in reverse order.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.Slice()

		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, elem := range v.Slice() {
			if !yield(elem) {
				return
			}
		}
	}
}

// Reserve reallocates to exactly capacity elements unless the vector already
// has that much room.
func (v *Vector[T]) Reserve(capacity int) {
	if capacity > v.Cap() {
		v.reallocate(capacity)
	}
}

// grow makes room for size elements following the growth policy.
func (v *Vector[T]) grow(size int) {
	if size > v.Cap() {
		v.Reserve(nextCapacity(size))
	}
}

// reallocate moves the elements into a new block of the given capacity.
func (v *Vector[T]) reallocate(capacity int) {
	check(capacity >= v.Len(), "reallocate below size")

	var old Storage[T]

	old.Swap(&v.store)
	v.store.Allocate(capacity)
	v.store.AdvanceSize(copy(v.store.slots(), old.Slice()))
	old.forget()
}

// Push appends elem (moved in).
func (v *Vector[T]) Push(elem T) {
	v.Insert(v.Len(), elem)
}

// PushCopy appends a copy of *src.
func (v *Vector[T]) PushCopy(src *T) error {
	return v.Emplace(func(slot *T) error {
		return construct(slot, src)
	})
}

// Emplace appends an element constructed in place by init. The slot passed to
// init holds the zero value. If init fails the slot is reset and the size is
// left unchanged.
func (v *Vector[T]) Emplace(init func(slot *T) error) error {
	n := v.Len()
	v.grow(n + 1)

	slot := v.store.at(n)

	if err := init(slot); err != nil {
		var zero T
		*slot = zero

		return errors.Wrapf(err, "compact: construct element %d", n)
	}

	v.store.AdvanceSize(1)

	return nil
}

// Pop destroys the last element. The vector must not be empty.
func (v *Vector[T]) Pop() {
	n := v.Len()
	check(n > 0, "pop from an empty vector")

	if n == 0 {
		return
	}

	v.store.AdvanceSize(-1)
	destroy(v.store.at(n - 1))
}

// Insert moves elem into position pos shifting the rest toward the tail and
// returns pos.
func (v *Vector[T]) Insert(pos int, elem T) int {
	n := v.Len()

	if assertions && uint(pos) > uint(n) {
		panicIndex(pos, n+1)
	}

	v.grow(n + 1)

	slots := v.store.slots()

	if pos < n {
		shiftUp(slots, pos, n, 1)
	}

	slots[pos] = elem
	v.store.AdvanceSize(1)

	return pos
}

// InsertCopy inserts a copy of *src at pos. The copy is made before anything
// is shifted, so on error the vector is unchanged.
func (v *Vector[T]) InsertCopy(pos int, src *T) (int, error) {
	var elem T

	if err := construct(&elem, src); err != nil {
		return pos, errors.Wrapf(err, "compact: copy element for position %d", pos)
	}

	return v.Insert(pos, elem), nil
}

// InsertSlice inserts copies of src at pos and returns pos. src must not
// alias v.
//
// The elements at [pos, Len) are relocated first, then src is copied into
// the gap. If a copy fails the vector keeps the copies made so far;
// relocated elements that end up beyond the resulting size are destroyed and
// the slots still waiting for a copy hold zero values. No element leaks or is
// destroyed twice, but the previous order is not restored.
func (v *Vector[T]) InsertSlice(pos int, src []T) (int, error) {
	n := v.Len()

	if assertions && uint(pos) > uint(n) {
		panicIndex(pos, n+1)
	}

	count := len(src)
	if count == 0 {
		return pos, nil
	}

	v.Reserve(nextCapacity(n + count))

	slots := v.store.slots()

	// open a gap of count slots
	shiftUp(slots, pos, n, count)

	for j := range src {
		slot := pos + j

		if err := construct(&slots[slot], &src[j]); err != nil {
			// drop the relocated tail that is out of reach now
			for i := max(v.Len(), pos+count); i < n+count; i++ {
				destroy(&slots[i])
			}

			return pos, errors.Wrapf(err, "compact: copy element %d", j)
		}

		if slot >= v.Len() {
			v.store.AdvanceSize(1)
		}
	}

	v.store.AdvanceSize(n + count - v.Len())

	return pos, nil
}

// Erase removes the element at pos and returns pos.
func (v *Vector[T]) Erase(pos int) int {
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements [first, last) and returns first.
func (v *Vector[T]) EraseRange(first, last int) int {
	n := v.Len()
	check(0 <= first && first <= last && last <= n, "erase range out of bounds")

	if first == last {
		return first
	}

	live := v.store.Slice()

	for i := first; i < last; i++ {
		destroy(&live[i])
	}

	shiftDown(live, first, last, n)
	v.store.AdvanceSize(first - last)

	return first
}

// Clear destroys all the elements and releases the memory (capacity drops to 0).
func (v *Vector[T]) Clear() {
	v.store.Free()
}

// Swap exchanges the contents of two vectors without touching the elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.store.Swap(&other.store)
}

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return FromSlice(v.Slice())
}

// CopyFrom replaces the contents of v with copies of other's elements. On
// error v is left untouched.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}

	var tmp Vector[T]

	if err := InitFromSlice(&tmp, other.Slice()); err != nil {
		return err
	}

	v.Swap(&tmp)
	tmp.Clear()

	return nil
}

// MoveFrom releases the contents of v and takes over other's memory; other
// becomes empty.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}

	v.Swap(other)
	other.Clear()
}

// Equal reports whether two vectors hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}
