package gameboard

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// SelectTool picks a drawing tool
func (o *orchestrator) SelectTool(ctx context.Context, input *SelectToolInput) (*SelectToolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "SelectTool", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if input.Toggle {
		b.toolbox.Toggle()
	} else if err := b.toolbox.Select(input.Tool); err != nil {
		return nil, err
	}

	return &SelectToolOutput{
		Tool:     b.toolbox.Active(),
		LastUsed: b.toolbox.LastUsed(),
	}, nil
}

// BeginShape presses the active tool on the map
func (o *orchestrator) BeginShape(ctx context.Context, input *BeginShapeInput) (*BeginShapeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "BeginShape", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := b.requireScene(); err != nil {
		return nil, err
	}
	if err := b.sketch.Press(b.toolbox.Active(), input.At, input.Color); err != nil {
		return nil, err
	}

	return &BeginShapeOutput{Drawing: copyShape(b.sketch.Drawing())}, nil
}

// DragShape updates the shape under the cursor
func (o *orchestrator) DragShape(ctx context.Context, input *DragShapeInput) (*DragShapeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "DragShape", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	scene, err := b.requireScene()
	if err != nil {
		return nil, err
	}
	measurement, err := b.sketch.Drag(input.To, scene.Dimensions())
	if err != nil {
		return nil, err
	}

	return &DragShapeOutput{
		Measurement: measurement,
		Drawing:     copyShape(b.sketch.Drawing()),
	}, nil
}

// ReleaseShape stages the shape for confirmation; tiny shapes are discarded
func (o *orchestrator) ReleaseShape(ctx context.Context, input *ReleaseShapeInput) (*ReleaseShapeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "ReleaseShape", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	scene, err := b.requireScene()
	if err != nil {
		return nil, err
	}
	pending, err := b.sketch.Release(scene.Dimensions())
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return &ReleaseShapeOutput{Discarded: true}, nil
	}

	staged := *pending
	staged.Shape = copyShape(pending.Shape)
	return &ReleaseShapeOutput{Pending: &staged}, nil
}

// ConfirmShape commits the staged shape to the scene
func (o *orchestrator) ConfirmShape(ctx context.Context, input *ConfirmShapeInput) (*ConfirmShapeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "ConfirmShape", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	scene, err := b.requireScene()
	if err != nil {
		return nil, err
	}

	var shape *entities.Shape
	warning, err := o.updateScene(ctx, b, command{
		name: "confirm shape",
		apply: func() (mutation, error) {
			var err error
			shape, err = b.sketch.Confirm(o.ids.Shape.Generate())
			if err != nil {
				return mutatedNothing, err
			}
			scene.Shapes = append(scene.Shapes, shape)
			return mutatedScene, nil
		},
		undo: func() {
			scene.Shapes = slices.DeleteFunc(scene.Shapes, func(s *entities.Shape) bool {
				return s.ID == shape.ID
			})
			b.sketch.Restage(shape)
		},
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, b.campaign.ID, EventShapeCommitted, nil, nil,
		fmt.Sprintf("A %s was drawn (%s)", shape.Kind, shape.Description))

	return &ConfirmShapeOutput{Shape: copyShape(shape), Warning: warning}, nil
}

// CancelShape discards the live or staged shape
func (o *orchestrator) CancelShape(ctx context.Context, input *CancelShapeInput) (*CancelShapeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "CancelShape", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return &CancelShapeOutput{Cancelled: b.sketch.Cancel()}, nil
}

// AdjustViewport pans, zooms or resets the view. A reset ignores the other
// fields; otherwise the pan is applied before the zoom.
func (o *orchestrator) AdjustViewport(ctx context.Context, input *AdjustViewportInput) (*AdjustViewportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Zoom < 0 {
		return nil, errors.InvalidArgument("zoom must not be negative")
	}

	ctx, span := o.startSpan(ctx, "AdjustViewport", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if input.Reset {
		b.viewport.Reset()
	} else {
		b.viewport.Pan(input.PanX, input.PanY)
		if input.Zoom != 0 {
			b.viewport.ZoomAt(input.Cursor, input.Zoom)
		}
	}

	return &AdjustViewportOutput{Viewport: *b.viewport}, nil
}

func copyShape(shape *entities.Shape) *entities.Shape {
	if shape == nil {
		return nil
	}
	cp := *shape
	return &cp
}
