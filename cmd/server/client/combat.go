package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battlemap-api/internal/handlers/gameboard/v1alpha1"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
)

var (
	initiativeTokens []string
	onlyUnset        bool
)

var initiativeCmd = &cobra.Command{
	Use:   "initiative",
	Short: "Prepare, roll and set initiative",
}

var prepareInitiativeCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Open the initiative dialog for the active scene",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.PrepareInitiative(ctx, &gameboard.PrepareInitiativeInput{
				CampaignID: campaignID,
				TokenIDs:   initiativeTokens,
			})
			if err != nil {
				return fmt.Errorf("failed to prepare initiative: %w", err)
			}
			return printJSON(out.Roster)
		})
	},
}

var rollInitiativeCmd = &cobra.Command{
	Use:   "roll [token-id]",
	Short: "Roll initiative for one token, or for everyone",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		input := &gameboard.RollInitiativeInput{CampaignID: campaignID, OnlyUnset: onlyUnset}
		if len(args) == 1 {
			input.TokenID = args[0]
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.RollInitiative(ctx, input)
			if err != nil {
				return fmt.Errorf("failed to roll initiative: %w", err)
			}
			for _, roll := range out.Rolled {
				fmt.Println(roll.Description())
			}
			return nil
		})
	},
}

var setInitiativeCmd = &cobra.Command{
	Use:   "set [token-id] [value]",
	Short: "Enter an initiative value by hand",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("initiative must be a number: %w", err)
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.SetInitiative(ctx, &gameboard.SetInitiativeInput{
				CampaignID: campaignID,
				TokenID:    args[0],
				Value:      value,
			})
			if err != nil {
				return fmt.Errorf("failed to set initiative: %w", err)
			}
			return printJSON(out.Roster)
		})
	},
}

var startCombatCmd = &cobra.Command{
	Use:   "start-combat",
	Short: "Start combat from the initiative dialog",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.StartCombat(ctx, &gameboard.StartCombatInput{CampaignID: campaignID})
			if err != nil {
				return fmt.Errorf("failed to start combat: %w", err)
			}
			printWarning(out.Warning)
			printTracker(out.Combat)
			return nil
		})
	},
}

var nextTurnCmd = &cobra.Command{
	Use:   "next-turn",
	Short: "End the active turn",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.NextTurn(ctx, &gameboard.NextTurnInput{CampaignID: campaignID})
			if err != nil {
				return fmt.Errorf("failed to advance turn: %w", err)
			}
			printWarning(out.Warning)
			for _, change := range out.Expired {
				fmt.Printf("%s is no longer %s\n", change.TokenID, change.Status)
			}
			printTracker(out.Combat)
			return nil
		})
	},
}

var endCombatCmd = &cobra.Command{
	Use:   "end-combat",
	Short: "End combat",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.EndCombat(ctx, &gameboard.EndCombatInput{CampaignID: campaignID})
			if err != nil {
				return fmt.Errorf("failed to end combat: %w", err)
			}
			printWarning(out.Warning)
			if !out.Ended {
				fmt.Println("No combat was running")
				return nil
			}
			fmt.Println("Combat ended")
			return nil
		})
	},
}

var combatStateCmd = &cobra.Command{
	Use:   "combat",
	Short: "Show the turn tracker",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.GetCombatState(ctx, &gameboard.GetCombatStateInput{CampaignID: campaignID})
			if err != nil {
				return fmt.Errorf("failed to get combat state: %w", err)
			}
			if out.Roster != nil {
				return printJSON(out.Roster)
			}
			printTracker(out.Combat)
			return nil
		})
	},
}

func init() {
	prepareInitiativeCmd.Flags().StringSliceVar(&initiativeTokens, "tokens", nil, "Token IDs to include (default: every token)")
	rollInitiativeCmd.Flags().BoolVar(&onlyUnset, "only-unset", false, "Skip entries that already have a value")

	initiativeCmd.AddCommand(prepareInitiativeCmd)
	initiativeCmd.AddCommand(rollInitiativeCmd)
	initiativeCmd.AddCommand(setInitiativeCmd)
}

func printTracker(view gameboard.CombatView) {
	if !view.InCombat {
		fmt.Println("Not in combat")
		return
	}
	fmt.Printf("Round %d\n", view.Round)
	for i, c := range view.Combatants {
		marker := "  "
		if i == view.TurnIndex {
			marker = "> "
		}
		fmt.Printf("%s%-20s %3d  action:%-5t bonus:%-5t reaction:%-5t move:%d ft\n",
			marker, c.Name, c.Initiative, c.HasAction, c.HasBonusAction, c.HasReaction, c.MovementRemaining)
	}
}
