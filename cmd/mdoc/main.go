package main

import (
	"os"

	"github.com/msto63/mDoc/cmd/mdoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
