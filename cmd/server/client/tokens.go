package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
	"github.com/KirkDiggler/battlemap-api/internal/handlers/gameboard/v1alpha1"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
)

var (
	tokenKind   string
	tokenX      float64
	tokenY      float64
	tokenMaxHP  int
	characterID string
	enemyID     string
	monsterKey  string
	imageURL    string
)

var addTokenCmd = &cobra.Command{
	Use:   "add-token [name]",
	Short: "Place a token on the active scene",
	Long: `Place a token on the active scene. Positions are percentages of the map.

  add-token Thorin --kind character --character char-1 --x 10 --y 10
  add-token --monster goblin --x 40 --y 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}

		spec := &gameboard.TokenSpec{
			Kind:        entities.TokenKind(tokenKind),
			ImageURL:    imageURL,
			Position:    geometry.Point{X: tokenX, Y: tokenY},
			CharacterID: characterID,
			EnemyID:     enemyID,
			MonsterKey:  monsterKey,
		}
		if len(args) == 1 {
			spec.Name = args[0]
		}
		if cmd.Flags().Changed("hp") {
			hp := tokenMaxHP
			spec.MaxHP = &hp
		}

		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.AddToken(ctx, &gameboard.AddTokenInput{CampaignID: campaignID, Token: spec})
			if err != nil {
				return fmt.Errorf("failed to add token: %w", err)
			}
			printWarning(out.Warning)
			return printJSON(out.Token)
		})
	},
}

var moveTokenCmd = &cobra.Command{
	Use:   "move-token [token-id]",
	Short: "Move a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.MoveToken(ctx, &gameboard.MoveTokenInput{
				CampaignID: campaignID,
				TokenID:    args[0],
				Position:   geometry.Point{X: tokenX, Y: tokenY},
			})
			if err != nil {
				return fmt.Errorf("failed to move token: %w", err)
			}
			printWarning(out.Warning)
			fmt.Printf("%s moved %d ft\n", out.Token.Name, out.DistanceFeet)
			if out.Movement != nil {
				fmt.Printf("Movement left: %d ft\n", out.Movement.RemainingFeet)
				if out.Movement.Exceeded {
					fmt.Println("Movement exceeded for this turn")
				}
			}
			return nil
		})
	},
}

var removeTokenCmd = &cobra.Command{
	Use:   "remove-token [token-id]",
	Short: "Take a token off the scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.RemoveToken(ctx, &gameboard.RemoveTokenInput{CampaignID: campaignID, TokenID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to remove token: %w", err)
			}
			printWarning(out.Warning)
			return printJSON(out.Combat)
		})
	},
}

func init() {
	addTokenCmd.Flags().StringVar(&tokenKind, "kind", "", "Token kind: character, monster or npc")
	addTokenCmd.Flags().StringVar(&imageURL, "image", "", "Token image URL")
	addTokenCmd.Flags().IntVar(&tokenMaxHP, "hp", 0, "Maximum hit points")
	addTokenCmd.Flags().StringVar(&characterID, "character", "", "Linked character record ID")
	addTokenCmd.Flags().StringVar(&enemyID, "enemy", "", "Linked enemy record ID")
	addTokenCmd.Flags().StringVar(&monsterKey, "monster", "", "Monster catalog key")

	for _, cmd := range []*cobra.Command{addTokenCmd, moveTokenCmd} {
		cmd.Flags().Float64Var(&tokenX, "x", 50, "Horizontal position in percent")
		cmd.Flags().Float64Var(&tokenY, "y", 50, "Vertical position in percent")
	}
}
