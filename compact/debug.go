package compact

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unsafe"
)

func (v *Vector[T]) String() string {
	var b strings.Builder

	b.WriteString("<compact|")

	switch {
	case v.store.ptr.IsNil():
		b.WriteString("empty")
	case v.store.Long():
		b.WriteString("long")
	default:
		b.WriteString("short")
	}

	b.WriteString("|len:" + strconv.Itoa(v.Len()))
	b.WriteString("|cap:" + strconv.Itoa(v.Cap()))
	b.WriteString("|hdr:" + strconv.FormatUint(uint64(v.store.HeaderSize()), 10))
	b.WriteByte('>')

	return b.String()
}

// DebugDump writes the layout summary followed by one line per element.
func (v *Vector[T]) DebugDump(w io.Writer) {
	fmt.Fprintln(w, v.String())

	for i, elem := range v.All() {
		fmt.Fprintf(w, "  [%d] %v\n", i, elem)
	}
}

// Overhead returns the bytes spent on bookkeeping rather than elements: the
// one-word handle plus the header and padding in front of the first slot.
// Compare with 3 words for a slice header.
func (v *Vector[T]) Overhead() uintptr {
	return unsafe.Sizeof(v.store.ptr) + v.store.HeaderSize()
}
