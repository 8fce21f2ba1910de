package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battlemap-api/internal/drawing"
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
	"github.com/KirkDiggler/battlemap-api/internal/handlers/gameboard/v1alpha1"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
)

var (
	fromX, fromY float64
	toX, toY     float64
	shapeColor   string
	confirm      bool

	panX, panY       float64
	zoom             float64
	cursorX, cursorY float64
	resetView        bool
)

var drawCmd = &cobra.Command{
	Use:   "draw [circle|cone|line]",
	Short: "Draw a measurement shape in one gesture",
	Long: `Select the tool, press at --from, drag to --to and release. The shape stays
pending until it is confirmed with --confirm.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(drawing.ToolCircle), string(drawing.ToolCone), string(drawing.ToolLine)},
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			if _, err := c.SelectTool(ctx, &gameboard.SelectToolInput{CampaignID: campaignID, Tool: drawing.Tool(args[0])}); err != nil {
				return fmt.Errorf("failed to select tool: %w", err)
			}
			if _, err := c.BeginShape(ctx, &gameboard.BeginShapeInput{
				CampaignID: campaignID,
				At:         geometry.Point{X: fromX, Y: fromY},
				Color:      shapeColor,
			}); err != nil {
				return fmt.Errorf("failed to begin shape: %w", err)
			}
			drag, err := c.DragShape(ctx, &gameboard.DragShapeInput{CampaignID: campaignID, To: geometry.Point{X: toX, Y: toY}})
			if err != nil {
				return fmt.Errorf("failed to drag shape: %w", err)
			}
			fmt.Println(drag.Measurement)

			release, err := c.ReleaseShape(ctx, &gameboard.ReleaseShapeInput{CampaignID: campaignID})
			if err != nil {
				return fmt.Errorf("failed to release shape: %w", err)
			}
			if release.Discarded {
				fmt.Println("Shape too small, discarded")
				return nil
			}
			if !confirm {
				fmt.Printf("%s: %s\n", release.Pending.Title, release.Pending.Detail)
				return nil
			}

			out, err := c.ConfirmShape(ctx, &gameboard.ConfirmShapeInput{CampaignID: campaignID})
			if err != nil {
				return fmt.Errorf("failed to confirm shape: %w", err)
			}
			printWarning(out.Warning)
			return printJSON(out.Shape)
		})
	},
}

var viewportCmd = &cobra.Command{
	Use:   "viewport",
	Short: "Pan, zoom or reset the board view",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCampaign(); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			out, err := c.AdjustViewport(ctx, &gameboard.AdjustViewportInput{
				CampaignID: campaignID,
				PanX:       panX,
				PanY:       panY,
				Zoom:       zoom,
				Cursor:     drawing.ScreenPoint{X: cursorX, Y: cursorY},
				Reset:      resetView,
			})
			if err != nil {
				return fmt.Errorf("failed to adjust viewport: %w", err)
			}
			return printJSON(out.Viewport)
		})
	},
}

func init() {
	drawCmd.Flags().Float64Var(&fromX, "from-x", 50, "Press point, horizontal percent")
	drawCmd.Flags().Float64Var(&fromY, "from-y", 50, "Press point, vertical percent")
	drawCmd.Flags().Float64Var(&toX, "to-x", 60, "Release point, horizontal percent")
	drawCmd.Flags().Float64Var(&toY, "to-y", 50, "Release point, vertical percent")
	drawCmd.Flags().StringVar(&shapeColor, "color", "", "Shape color")
	drawCmd.Flags().BoolVar(&confirm, "confirm", false, "Commit the shape to the scene")

	viewportCmd.Flags().Float64Var(&panX, "pan-x", 0, "Horizontal pan in screen units")
	viewportCmd.Flags().Float64Var(&panY, "pan-y", 0, "Vertical pan in screen units")
	viewportCmd.Flags().Float64Var(&zoom, "zoom", 0, "Zoom factor, e.g. 1.25 or 0.8")
	viewportCmd.Flags().Float64Var(&cursorX, "cursor-x", 0, "Zoom anchor, horizontal screen position")
	viewportCmd.Flags().Float64Var(&cursorY, "cursor-y", 0, "Zoom anchor, vertical screen position")
	viewportCmd.Flags().BoolVar(&resetView, "reset", false, "Reset pan and zoom")
}
