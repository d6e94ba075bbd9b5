package main

import (
	"os"

	"github.com/cocoonstack/macgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
