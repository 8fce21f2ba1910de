package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battlemap-api/internal/handlers/gameboard/v1alpha1"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
)

var narrateCmd = &cobra.Command{
	Use:   "narrate [prompt...]",
	Short: "Ask the narrator to describe the scene",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.Narrate(ctx, &gameboard.NarrateInput{
				CampaignID: campaignID,
				Prompt:     strings.Join(args, " "),
			})
			if err != nil {
				return fmt.Errorf("failed to narrate: %w", err)
			}
			printWarning(out.Warning)
			fmt.Println(out.Narration.Text)
			return nil
		})
	},
}
