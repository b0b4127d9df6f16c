package core

import (
	"log"
	"math/rand"
)

// Logging is a clumsy switch that affects what Logf does.
//
// If Logging is true, then Logf calls log.Printf. Off by default;
// turning it on adds tracing of compile-time literal lifting and of
// each compiled path's step and slot counts.
var Logging = false

// Logf is a silly utility function that calls log.Printf if Logging
// is true.
func Logf(format string, args ...interface{}) {
	if !Logging {
		return
	}
	log.Printf(format, args...)
}

var gensymAlphabet = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Gensym makes a random string of the given length, for interpreters
// (e.g. interpreters/goja) to expose to user-authored predicates and
// transforms that need a fresh name.
func Gensym(n int) string {
	bs := make([]byte, n)
	for i := range bs {
		bs[i] = gensymAlphabet[rand.Intn(len(gensymAlphabet))]
	}
	return string(bs)
}
