// Package main is the entry point for the storefront-catalog server.
package main

import (
	"os"

	"github.com/donaldgifford/storefront-catalog/cmd/storefront-catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
