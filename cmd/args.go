package cmd

import (
	"fmt"
	"strconv"

	arith "github.com/analogrelay/go-rust-interop/arithffi"
	"github.com/analogrelay/go-rust-interop/arithffi/internal/cref"
)

// ArgError reports an operand that could not be parsed.
type ArgError struct {
	Name  string
	Value string
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

func parseInt32(name, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, &ArgError{Name: name, Value: s, Err: err}
	}
	return int32(v), nil
}

func parseUint32(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &ArgError{Name: name, Value: s, Err: err}
	}
	return uint32(v), nil
}

// implFuncs bundles one implementation of both operations.
type implFuncs struct {
	add       func(a, b int32) int32
	factorial func(n uint32) uint64
}

func lookupImpl(name string) (implFuncs, error) {
	switch name {
	case "go":
		return implFuncs{add: arith.Add, factorial: arith.Factorial}, nil
	case "cgo":
		if !cref.Available {
			return implFuncs{}, fmt.Errorf("impl cgo requires a cgo-enabled build")
		}
		return implFuncs{add: cref.Add, factorial: cref.Factorial}, nil
	default:
		return implFuncs{}, fmt.Errorf("unknown impl %q (want go or cgo)", name)
	}
}
