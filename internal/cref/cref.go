//go:build cgo

// Package cref is a C implementation of the arithmetic, called through cgo.
// It is the native-arithmetic reference that the Go code must match bit for
// bit, and the "cgo" implementation the benchmark measures.
package cref

/*
#include <stdint.h>

static inline int32_t add_c(int32_t a, int32_t b) {
    // Signed overflow is undefined in C; unsigned addition wraps.
    return (int32_t)((uint32_t)a + (uint32_t)b);
}

static inline uint64_t factorial_c(uint32_t n) {
    uint64_t acc = 1;
    uint64_t i;
    if (n <= 1) {
        return 1;
    }
    for (i = 2; i <= (uint64_t)n; i++) {
        acc *= i;
        if (acc == 0) {
            break;
        }
    }
    return acc;
}
*/
// #cgo nocallback add_c
// #cgo noescape add_c
// #cgo nocallback factorial_c
// #cgo noescape factorial_c
import "C"

// Available reports whether the C implementation was compiled in.
const Available = true

// Add wraps the C add_c.
func Add(a, b int32) int32 {
	return int32(C.add_c(C.int32_t(a), C.int32_t(b)))
}

// Factorial wraps the C factorial_c.
func Factorial(n uint32) uint64 {
	return uint64(C.factorial_c(C.uint32_t(n)))
}
