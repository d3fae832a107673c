//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var scratches sync.Map

// GetScratch returns the calling goroutine's walk stack, creating it on
// first use. A walk runs synchronously, so one stack per goroutine is
// enough; reuse across commits only carries capacity, never contents.
func GetScratch() *Scratch {
	gid := getGID()

	if s, ok := scratches.Load(gid); ok {
		return s.(*Scratch)
	}

	s := NewScratch()
	scratches.Store(gid, s)
	return s
}

func getGID() int64 {
	return goid.Get()
}
