package main

import (
	"fmt"
	"os"

	"github.com/eernst/contigtable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "contigtable:", err)
		os.Exit(1)
	}
}
