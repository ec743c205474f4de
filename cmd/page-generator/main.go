package main

import (
	"os"

	"github.com/bianoble/page-generator/cmd/page-generator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
