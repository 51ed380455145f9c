package compact

import "fmt"

func check(ok bool, msg string) {
	if assertions && !ok {
		panic("compact: " + msg)
	}
}

func panicIndex(i, size int) {
	panic(fmt.Sprintf("compact: index %d out of range [0:%d]", i, size))
}

// noCopy makes `go vet` report copies of the structs embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
