package tagged

import (
	"fmt"
	"unsafe"
)

// Pair is the explicit alternative to Ptr: the flag is a separate byte next
// to the pointer instead of the lowest address bit.
//
// It is one word larger than Ptr but has no alignment precondition and a nil
// Pair may carry a flag. The method set mirrors Ptr.
type Pair struct {
	ptr  unsafe.Pointer
	flag bool
}

func NewPair(p unsafe.Pointer) Pair {
	return Pair{ptr: p}
}

// Set replaces the pointer, the flag is reset.
func (p *Pair) Set(addr unsafe.Pointer) {
	p.ptr, p.flag = addr, false
}

func (p Pair) Pointer() unsafe.Pointer {
	return p.ptr
}

// PairAs reinterprets the address of p as *T (unchecked).
func PairAs[T any](p Pair) *T {
	return (*T)(p.ptr)
}

func (p Pair) IsNil() bool {
	return p.ptr == nil
}

func (p Pair) HasFlag() bool {
	return p.flag
}

func (p *Pair) SetFlag(value bool) {
	p.flag = value
}

func (p *Pair) Swap(other *Pair) {
	*p, *other = *other, *p
}

func (p Pair) String() string {
	return fmt.Sprintf("<tagged.Pair|%#x|%t>", uintptr(p.ptr), p.flag)
}
