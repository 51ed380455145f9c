package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/compactvec/compact"
)

func main() {
	v := compact.New(1, 2, 3, 5, 4)
	v.DebugDump(os.Stdout)

	v.Insert(0, 6)
	if _, err := v.InsertSlice(3, []int{7, 8, 9}); err != nil {
		fmt.Println(err)
	}
	v.EraseRange(0, 2)
	v.DebugDump(os.Stdout)

	println("------")

	for i, elem := range v.Backward() {
		fmt.Printf("%d: %d\n", i, elem)
	}

	v.Reserve(1 << 16)
	fmt.Printf("%v overhead:%d\n", v, v.Overhead())

	v.Clear()
	fmt.Println(v)
}
