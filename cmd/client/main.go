// Package main provides a standalone command-line client for the battle map server
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/battlemap-api/cmd/server/client"
)

func main() {
	root := client.ClientCmd
	root.Use = "battlemap-client"

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
