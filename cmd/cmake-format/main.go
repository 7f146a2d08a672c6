package main

import (
	"os"

	"github.com/kumekay/cmake-format/cmd/cmake-format/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
