package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := Execute()
	switch {
	case err == nil:
	case errors.Is(err, errNoMatch):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
