// Command libarith is built with -buildmode=c-shared to produce libarith.so
// and libarith.h. It exports:
//
//	int32_t  add_numbers(int32_t a, int32_t b);
//	uint64_t factorial(uint32_t n);
//
// Both wrap on overflow and are safe to call from any thread.
package main

/*
#include <stdint.h>
*/
import "C"

import arith "github.com/analogrelay/go-rust-interop/arithffi"

//export add_numbers
func add_numbers(a, b C.int32_t) C.int32_t {
	return C.int32_t(arith.Add(int32(a), int32(b)))
}

//export factorial
func factorial(n C.uint32_t) C.uint64_t {
	return C.uint64_t(arith.Factorial(uint32(n)))
}

// main is required for building a shared library, but never runs.
func main() {}
