// Package tagged defines a pointer that carries one extra boolean in the lowest
// bit of its address.
//
// Any Go allocation of two bytes or more with an alignment of at least two
// starts at an even address, so bit 0 of such a pointer is always zero and can
// be stolen for a flag:
//
//	[ 63..01 ] [   00   ]
//	<address > <F:flag>
//
// The word is kept as an unsafe.Pointer (not an uintptr) so the garbage
// collector keeps the pointee alive. With the flag set the word points one
// byte into the allocation, which is a valid interior pointer.
package tagged

import (
	"fmt"
	"unsafe"
)

const flagMask uintptr = 1

// Ptr is an aligned pointer with a one-bit flag. The zero value is a nil
// pointer with the flag unset.
//
// Ptr does not own the pointee; copying a Ptr copies the word.
type Ptr struct {
	word unsafe.Pointer
}

// New returns a Ptr holding p with the flag unset. It panics if p is odd.
func New(p unsafe.Pointer) Ptr {
	var ptr Ptr

	ptr.Set(p)

	return ptr
}

// Set replaces the pointer, the flag is reset. It panics if p is odd.
func (p *Ptr) Set(addr unsafe.Pointer) {
	if uintptr(addr)&flagMask != 0 {
		panic(fmt.Sprintf("tagged: odd address %#x", uintptr(addr)))
	}

	p.word = addr
}

// Pointer returns the address with the flag bit masked off.
func (p Ptr) Pointer() unsafe.Pointer {
	return unsafe.Add(p.word, -int(uintptr(p.word)&flagMask))
}

// As reinterprets the address of p as *T. The cast is unchecked: T must be
// the type that was actually stored.
func As[T any](p Ptr) *T {
	return (*T)(p.Pointer())
}

// IsNil reports whether the address bits are zero.
func (p Ptr) IsNil() bool {
	return uintptr(p.word)&^flagMask == 0
}

func (p Ptr) HasFlag() bool {
	return uintptr(p.word)&flagMask != 0
}

// SetFlag sets or clears the flag leaving the address intact.
//
// A nil Ptr cannot be flagged: the word 0x1 is not a valid pointer for the
// Go runtime.
func (p *Ptr) SetFlag(value bool) {
	switch has := p.HasFlag(); {
	case value == has:
		return
	case value:
		if p.word == nil {
			panic("tagged: flag on a nil pointer")
		}
		p.word = unsafe.Add(p.word, 1)
	default:
		p.word = unsafe.Add(p.word, -1)
	}
}

// Swap exchanges the words of two pointers.
func (p *Ptr) Swap(other *Ptr) {
	p.word, other.word = other.word, p.word
}

func (p Ptr) String() string {
	return fmt.Sprintf("<tagged|%#x|%t>", uintptr(p.Pointer()), p.HasFlag())
}
