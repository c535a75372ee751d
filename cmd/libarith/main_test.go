//go:build cgo

package main

import (
	"math"
	"math/big"
	"sync"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNumbers(t *testing.T) {
	assert.Equal(t, int32(5), callAddNumbers(2, 3))
	assert.Equal(t, int32(0), callAddNumbers(-1, 1))
}

func TestAddNumbersWraps(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), callAddNumbers(math.MaxInt32, 1))
	assert.Equal(t, int32(math.MaxInt32), callAddNumbers(math.MinInt32, -1))

	f := func(a, b int32) bool {
		return callAddNumbers(a, b) == int32(int64(a)+int64(b))
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 2000}))
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, uint64(1), callFactorial(0))
	assert.Equal(t, uint64(1), callFactorial(1))
	assert.Equal(t, uint64(120), callFactorial(5))
	assert.Equal(t, uint64(3628800), callFactorial(10))
}

func TestFactorialAgainstBig(t *testing.T) {
	mod := new(big.Int).Lsh(big.NewInt(1), 64)
	for n := uint32(0); n <= 70; n++ {
		want := new(big.Int).MulRange(1, int64(n))
		want.Mod(want, mod)
		assert.Equal(t, want.Uint64(), callFactorial(n), "n=%d", n)
	}
}

func TestConcurrentCallers(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := int32(0); i < 1000; i++ {
				assert.Equal(t, i+int32(w), callAddNumbers(i, int32(w)))
				assert.Equal(t, uint64(3628800), callFactorial(10))
			}
		}()
	}
	wg.Wait()
}
