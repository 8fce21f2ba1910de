package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/handlers/gameboard/v1alpha1"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
	"github.com/KirkDiggler/battlemap-api/internal/targeting"
)

var ability gameboard.AbilityRef

var abilitiesCmd = &cobra.Command{
	Use:   "abilities [token-id]",
	Short: "List what a token can use",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.ListAbilities(ctx, &gameboard.ListAbilitiesInput{CampaignID: campaignID, TokenID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to list abilities: %w", err)
			}
			for _, a := range out.Abilities {
				reach := "no target"
				if a.Range != nil {
					reach = fmt.Sprintf("%s %d ft", a.Range.Kind, a.Range.Feet)
				}
				fmt.Printf("%-8s %-24s %-13s %s\n", a.Kind, a.Name, a.Cost.Label(), reach)
			}
			if e := out.Economy; e != nil {
				fmt.Printf("\nTurn: %v  action: %v  bonus: %v  reaction: %v  movement: %d ft\n",
					out.YourTurn, e.HasAction, e.HasBonusAction, e.HasReaction, e.MovementRemaining)
			}
			return nil
		})
	},
}

var useCmd = &cobra.Command{
	Use:   "use [token-id] [ability]",
	Short: "Activate an ability",
	Long: `Activate an ability for a token. Without --spell or --monster the ability is
described inline.

  use token_1 Dodge
  use token_1 --kind spell --spell fire-bolt
  use token_2 Scimitar --kind monster --monster goblin`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		ref := ability
		if len(args) == 2 {
			ref.Name = args[1]
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.ActivateAbility(ctx, &gameboard.ActivateAbilityInput{
				CampaignID: campaignID,
				ActorID:    args[0],
				Ability:    &ref,
			})
			if err != nil {
				return fmt.Errorf("failed to use ability: %w", err)
			}
			printWarning(out.Warning)
			printOutcome(out.Outcome)
			if out.Initiative != nil {
				fmt.Println("Roll initiative!")
				return printJSON(out.Initiative)
			}
			return nil
		})
	},
}

var targetCmd = &cobra.Command{
	Use:   "target [token-id]",
	Short: "Pick the target for the pending ability",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.SelectTarget(ctx, &gameboard.SelectTargetInput{CampaignID: campaignID, TargetID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to select target: %w", err)
			}
			printWarning(out.Warning)
			printOutcome(out.Outcome)
			if out.Initiative != nil {
				fmt.Println("Roll initiative!")
				return printJSON(out.Initiative)
			}
			return nil
		})
	},
}

var cancelTargetCmd = &cobra.Command{
	Use:   "cancel-target",
	Short: "Abandon the pending ability",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.CancelTargeting(ctx, &gameboard.CancelTargetingInput{CampaignID: campaignID})
			if err != nil {
				return fmt.Errorf("failed to cancel targeting: %w", err)
			}
			if !out.Cancelled {
				fmt.Println("Nothing was waiting for a target")
			}
			return nil
		})
	},
}

func init() {
	flags := useCmd.Flags()
	flags.StringVar((*string)(&ability.Kind), "kind", string(targeting.AbilityAction), "Ability kind: action, spell or monster")
	flags.StringVar(&ability.SpellKey, "spell", "", "Spell catalog key")
	flags.StringVar(&ability.MonsterKey, "monster", "", "Monster catalog key")
	flags.StringVar(&ability.Description, "description", "", "Inline description, e.g. 'Ranged Weapon Attack: range 80/320 ft.'")
	flags.StringVar((*string)(&ability.ActionType), "action-type", string(entities.ActionTypeAction), "Inline action type: action, bonus_action or reaction")
	flags.IntVar(&ability.SpellLevel, "level", 0, "Inline spell level")
	flags.StringVar(&ability.CastingTime, "casting-time", "", "Inline spell casting time")
	flags.StringVar(&ability.Range, "range", "", "Inline spell range, e.g. '60 feet'")
}

func printOutcome(outcome *targeting.Outcome) {
	if outcome == nil {
		return
	}
	switch outcome.Kind {
	case targeting.OutcomeAwaitingTarget:
		fmt.Printf("%s is waiting for a target", outcome.Ability.Name)
		if outcome.Ability.Range != nil {
			fmt.Printf(" within %d ft", outcome.Ability.Range.Feet)
		}
		fmt.Println()
	default:
		fmt.Println(outcome.Message)
		if outcome.Consumed != "" {
			fmt.Printf("Used the %s\n", outcome.Consumed.Label())
		}
	}
}
