// Package compact defines a dynamic array whose per-instance overhead is a
// single machine word.
//
// A conventional slice header spends three words on pointer, length and
// capacity. A Vector keeps only a tagged pointer (see package tagged); length
// and capacity live in a header at the start of the same allocation that
// holds the elements:
//
//	Vector:      [ 63..01:address ] [ 00:L ]
//	                    |
//	                    v
//	Short block: [ 16:size ] [ 16:capacity ] [pad] [ T ][ T ][ T ] ... capacity
//	Long block:  [ 32:size ] [ 32:capacity ] [pad] [ T ][ T ][ T ] ... capacity
//
// L (the pointer tag) is 0 for the short header and 1 for the long one. The
// short header is used while the capacity fits 16 bits (65535 elements).
// An empty vector holds a nil pointer and allocates nothing.
//
// Blocks are built with reflect.StructOf so the garbage collector sees the
// exact pointer map of T.
//
// Element lifecycle:
// -----------------
//
// Slots in [Len, Cap) always hold the zero value of T. Elements are moved
// bitwise and the moved-from slot is cleared. Element types that own
// resources may implement Copier (copy construction that can fail) and
// Destroyer (release), both on the pointer receiver:
//
//	func (c *Conn) CopyFrom(src *Conn) error
//	func (c *Conn) Destroy()
//
// Destroy must be a no-op on the zero value.
//
// Growth:
// ------
//
// Push, Insert and friends grow the capacity to the next 2^k-1 value
// (0, 1, 3, 7, 15, ...). Reserve and the slice constructors allocate exactly
// what they are asked for.
//
// Preconditions (index range, pop on empty, double allocation) panic. Build
// with -tags compact_noassert to compile the checks out.
//
// A Vector must not be copied; move it with MoveFrom or Swap. It is not safe
// for concurrent mutation.
package compact
