package compact

import (
	"github.com/pkg/errors"
)

var errCopy = errors.New("copy failed")

// tracked counts its live instances in a shared counter and can be told to
// fail being copied.
type tracked struct {
	live     *int
	Val      int
	failCopy bool
}

func newTracked(live *int, val int) tracked {
	*live++

	return tracked{live: live, Val: val}
}

func (t *tracked) CopyFrom(src *tracked) error {
	if src.failCopy {
		return errCopy
	}

	*src.live++
	*t = tracked{live: src.live, Val: src.Val}

	return nil
}

func (t *tracked) Destroy() {
	if t.live != nil {
		*t.live--
		t.live = nil
	}
}

func trackedSlice(live *int, vals ...int) []tracked {
	elems := make([]tracked, len(vals))

	for i, val := range vals {
		elems[i] = newTracked(live, val)
	}

	return elems
}

func destroyAll(elems []tracked) {
	for i := range elems {
		elems[i].Destroy()
	}
}

func trackedVals(v *Vector[tracked]) []int {
	vals := make([]int, 0, v.Len())

	for _, elem := range v.All() {
		vals = append(vals, elem.Val)
	}

	return vals
}

// ordered logs the order of destruction.
type ordered struct {
	id  int
	log *[]int
}

func (o *ordered) Destroy() {
	if o.log != nil {
		*o.log = append(*o.log, o.id)
	}
}

func seq(from, to int) []int {
	vals := make([]int, 0, to-from)

	for i := from; i < to; i++ {
		vals = append(vals, i)
	}

	return vals
}
