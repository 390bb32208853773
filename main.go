package main

import (
	"os"

	"github.com/nanobanana-fans/nanobanana/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
