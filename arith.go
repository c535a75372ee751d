// Package arith holds the arithmetic behind the libarith shared library.
//
// Both operations use Go's fixed-width integer semantics: overflow wraps
// silently, modulo 2^32 for Add and modulo 2^64 for Factorial. They never
// panic and are safe to call from any number of goroutines.
package arith

// Add returns a + b, wrapping on overflow.
func Add(a, b int32) int32 {
	return a + b
}

// Factorial returns n! reduced modulo 2^64.
//
// The product is accumulated in ascending order from 1 to n. Results for
// n <= 20 are exact.
func Factorial(n uint32) uint64 {
	if n <= 1 {
		return 1
	}
	acc := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		acc *= i
		// 66! carries 64 factors of two, after which the product stays 0.
		if acc == 0 {
			break
		}
	}
	return acc
}
