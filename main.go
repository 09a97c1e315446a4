package main

import (
	"os"

	"github.com/mhassouna/docuchat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
