// Package main is the entry point for the fm console file manager.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/file-manager/cmd/fm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
