package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/stackbuf"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	for i := 0; i < 10000; i++ {
		b := stackbuf.FromString[[64]byte]("the quick brown fox")
		_ = b.AppendString(" jumps over the lazy dog")
		b.Sort()
		b.Reverse()
		_, _ = b.PopN(4)
		_ = b.Split(' ')
		small := stackbuf.Convert[[16]byte](&b)
		_ = small.Sum64()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
