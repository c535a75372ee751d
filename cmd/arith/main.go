package main

import "github.com/analogrelay/go-rust-interop/arithffi/cmd"

func main() {
	cmd.Execute()
}
