package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/listkit"
)

func main() {
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	l := listkit.New[int](listkit.NewSliceStore[int]())
	for i := 0; i < 10000; i++ {
		if err := l.Append(i); err != nil {
			log.Fatal(err)
		}
	}
	u := l.Untyped()
	for i := 0; i < 10000; i++ {
		if !u.Contains(i) {
			log.Fatalf("missing %d", i)
		}
	}
	dst := make([]int, l.Len())
	if err := l.CopyTo(dst, 0); err != nil {
		log.Fatal(err)
	}
	log.Printf("len=%d first=%d last=%d readonly=%v", l.Len(), dst[0], dst[len(dst)-1], l.ReadOnly())
	pprof.WriteHeapProfile(f)
}
