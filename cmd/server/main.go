// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battlemap-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "battlemap-api",
	Short: "Battle map gRPC server",
	Long:  `Battle map serves campaign boards: scenes and tokens, initiative, turn order, ability targeting and measurement shapes.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
