// Package main is the entry point for uybaho.
package main

import (
	"os"

	"github.com/akbarovs/uybaho/cmd/uybaho/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
