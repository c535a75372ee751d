package main

/*
#include <stdint.h>

// Defined in callc.c against the generated _cgo_export.h.
int32_t call_add_numbers(int32_t a, int32_t b);
uint64_t call_factorial(uint32_t n);
*/
import "C"

// callAddNumbers invokes add_numbers from C.
func callAddNumbers(a, b int32) int32 {
	return int32(C.call_add_numbers(C.int32_t(a), C.int32_t(b)))
}

// callFactorial invokes factorial from C.
func callFactorial(n uint32) uint64 {
	return uint64(C.call_factorial(C.uint32_t(n)))
}
