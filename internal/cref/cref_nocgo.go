//go:build !cgo

package cref

import arith "github.com/analogrelay/go-rust-interop/arithffi"

// Available is false without cgo; Add and Factorial then fall back to the
// Go implementation so callers still link.
const Available = false

func Add(a, b int32) int32 {
	return arith.Add(a, b)
}

func Factorial(n uint32) uint64 {
	return arith.Factorial(n)
}
