package compact

// Copier is implemented by *T for element types that need an explicit copy.
//
// CopyFrom is called on a zero (unconstructed) slot. If it fails the slot is
// reset to the zero value and the error is returned to the caller.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Destroyer is implemented by *T for element types that hold resources.
//
// Destroy is called exactly once per constructed element and also on
// moved-from (zero) elements, so it must be a no-op on the zero value.
type Destroyer interface {
	Destroy()
}

// construct copies src into the unconstructed slot dst.
func construct[T any](dst, src *T) error {
	if c, ok := any(dst).(Copier[T]); ok {
		if err := c.CopyFrom(src); err != nil {
			var zero T
			*dst = zero

			return err
		}

		return nil
	}

	*dst = *src

	return nil
}

// destroy releases a live element and leaves the slot zeroed.
func destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}

	var zero T
	*p = zero
}

// shiftUp relocates slots[pos:size] by k slots toward the tail. The vacated
// part of [pos, pos+k) that was live is left in the moved-from state.
func shiftUp[T any](slots []T, pos, size, k int) {
	copy(slots[pos+k:size+k], slots[pos:size])
	clear(slots[pos:min(pos+k, size)])
}

// shiftDown relocates slots[last:size] onto slots[first:] and clears the
// moved-from tail.
func shiftDown[T any](slots []T, first, last, size int) {
	copy(slots[first:], slots[last:size])
	clear(slots[size-(last-first) : size])
}
