package norm

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 4096 // max uint16 elements
	poolInitCap = 64
)

// scratch buffer pool for the decompose stage of composing forms
var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]uint16, 0, poolInitCap)
		return &buf
	},
}

func getScratch(n int) *[]uint16 {
	buf := scratchPool.Get().(*[]uint16)
	if cap(*buf) < n {
		*buf = make([]uint16, n)
	}
	*buf = (*buf)[:n]
	return buf
}

func putScratch(buf *[]uint16) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	scratchPool.Put(buf)
}
