// Package client provides CLI commands that drive a running battle map server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/battlemap-api/internal/handlers/gameboard/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// campaignID scopes every board command
	campaignID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the battle map server",
	Long:  `Client commands drive a running battle map server over gRPC and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&campaignID, "campaign", "", "Campaign ID")

	// Campaign and scene commands
	ClientCmd.AddCommand(createCampaignCmd)
	ClientCmd.AddCommand(saveCharacterCmd)
	ClientCmd.AddCommand(saveEnemyCmd)
	ClientCmd.AddCommand(createSceneCmd)
	ClientCmd.AddCommand(activateSceneCmd)
	ClientCmd.AddCommand(deleteSceneCmd)
	ClientCmd.AddCommand(boardCmd)

	// Token commands
	ClientCmd.AddCommand(addTokenCmd)
	ClientCmd.AddCommand(moveTokenCmd)
	ClientCmd.AddCommand(removeTokenCmd)

	// Combat commands
	ClientCmd.AddCommand(initiativeCmd)
	ClientCmd.AddCommand(startCombatCmd)
	ClientCmd.AddCommand(nextTurnCmd)
	ClientCmd.AddCommand(endCombatCmd)
	ClientCmd.AddCommand(combatStateCmd)

	// Ability commands
	ClientCmd.AddCommand(abilitiesCmd)
	ClientCmd.AddCommand(useCmd)
	ClientCmd.AddCommand(targetCmd)
	ClientCmd.AddCommand(cancelTargetCmd)

	// Drawing and narration
	ClientCmd.AddCommand(drawCmd)
	ClientCmd.AddCommand(viewportCmd)
	ClientCmd.AddCommand(narrateCmd)
}

// createClient connects to the server
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// withClient runs fn with a connected client and a request deadline
func withClient(fn func(ctx context.Context, c *v1alpha1.Client) error) error {
	c, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, c)
}

func requireCampaign() error {
	if campaignID == "" {
		return fmt.Errorf("--campaign is required")
	}
	return nil
}

// printJSON writes a response as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printWarning(warning string) {
	if warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
}
