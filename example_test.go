package arith_test

import (
	"fmt"

	arith "github.com/analogrelay/go-rust-interop/arithffi"
)

func ExampleAdd() {
	fmt.Println(arith.Add(2, 3))
	fmt.Println(arith.Add(2147483647, 1))
	// Output:
	// 5
	// -2147483648
}

func ExampleFactorial() {
	fmt.Println(arith.Factorial(10))
	fmt.Println(arith.Factorial(21))
	// Output:
	// 3628800
	// 14197454024290336768
}
