//go:build wasm

package internal

import "sync"

var once sync.Once
var globalScratch *Scratch

func GetScratch() *Scratch {
	once.Do(func() {
		globalScratch = NewScratch()
	})

	return globalScratch
}
