package main

import (
	"os"

	"github.com/msto63/palc/cmd/palc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
