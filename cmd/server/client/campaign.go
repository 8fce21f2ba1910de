package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/handlers/gameboard/v1alpha1"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
)

var (
	ownerID       string
	backgroundURL string
	widthSquares  int
	heightSquares int
	activate      bool
)

var createCampaignCmd = &cobra.Command{
	Use:   "create-campaign [name]",
	Short: "Create a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.CreateCampaign(ctx, &gameboard.CreateCampaignInput{Name: args[0], OwnerID: ownerID})
			if err != nil {
				return fmt.Errorf("failed to create campaign: %w", err)
			}
			return printJSON(out.Campaign)
		})
	},
}

var saveCharacterCmd = &cobra.Command{
	Use:   "save-character [file.json]",
	Short: "Store a character record read from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var rec entities.CharacterRecord
		if err := readJSON(args[0], &rec); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.SaveCharacter(ctx, &gameboard.SaveCharacterInput{Character: &rec})
			if err != nil {
				return fmt.Errorf("failed to save character: %w", err)
			}
			return printJSON(out.Character)
		})
	},
}

var saveEnemyCmd = &cobra.Command{
	Use:   "save-enemy [file.json]",
	Short: "Store an enemy stat block read from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var rec entities.EnemyRecord
		if err := readJSON(args[0], &rec); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.SaveEnemy(ctx, &gameboard.SaveEnemyInput{Enemy: &rec})
			if err != nil {
				return fmt.Errorf("failed to save enemy: %w", err)
			}
			return printJSON(out.Enemy)
		})
	},
}

var createSceneCmd = &cobra.Command{
	Use:   "create-scene [name]",
	Short: "Add a scene to the campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.CreateScene(ctx, &gameboard.CreateSceneInput{
				CampaignID:    campaignID,
				Name:          args[0],
				BackgroundURL: backgroundURL,
				WidthSquares:  widthSquares,
				HeightSquares: heightSquares,
				Activate:      activate,
			})
			if err != nil {
				return fmt.Errorf("failed to create scene: %w", err)
			}
			return printJSON(out.Scene)
		})
	},
}

var activateSceneCmd = &cobra.Command{
	Use:   "activate-scene [scene-id]",
	Short: "Switch the campaign to another scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.ActivateScene(ctx, &gameboard.ActivateSceneInput{CampaignID: campaignID, SceneID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to activate scene: %w", err)
			}
			return printJSON(out.Board)
		})
	},
}

var deleteSceneCmd = &cobra.Command{
	Use:   "delete-scene [scene-id]",
	Short: "Delete a scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.DeleteScene(ctx, &gameboard.DeleteSceneInput{CampaignID: campaignID, SceneID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to delete scene: %w", err)
			}
			return printJSON(out.Campaign)
		})
	},
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the campaign board",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.GetBoard(ctx, &gameboard.GetBoardInput{CampaignID: campaignID})
			if err != nil {
				return fmt.Errorf("failed to get board: %w", err)
			}
			return printJSON(out.Board)
		})
	},
}

func init() {
	createCampaignCmd.Flags().StringVar(&ownerID, "owner", "", "Owner ID")

	createSceneCmd.Flags().StringVar(&backgroundURL, "background", "", "Background image URL")
	createSceneCmd.Flags().IntVar(&widthSquares, "width", 20, "Map width in 5 ft squares")
	createSceneCmd.Flags().IntVar(&heightSquares, "height", 20, "Map height in 5 ft squares")
	createSceneCmd.Flags().BoolVar(&activate, "activate", false, "Make the new scene active")
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
