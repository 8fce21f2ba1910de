// Package v1alpha1 serves the game board over gRPC. Messages are the
// orchestrator's own Input and Output structs carried by a JSON codec.
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "battlemap.v1alpha1.GameBoardService"

// ServiceDesc describes GameBoardService. The registered implementation is a
// gameboard.Service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*gameboard.Service)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateCampaign", gameboard.Service.CreateCampaign),
		unary("SaveCharacter", gameboard.Service.SaveCharacter),
		unary("SaveEnemy", gameboard.Service.SaveEnemy),
		unary("CreateScene", gameboard.Service.CreateScene),
		unary("ActivateScene", gameboard.Service.ActivateScene),
		unary("DeleteScene", gameboard.Service.DeleteScene),
		unary("AddToken", gameboard.Service.AddToken),
		unary("RemoveToken", gameboard.Service.RemoveToken),
		unary("MoveToken", gameboard.Service.MoveToken),
		unary("GetBoard", gameboard.Service.GetBoard),
		unary("PrepareInitiative", gameboard.Service.PrepareInitiative),
		unary("RollInitiative", gameboard.Service.RollInitiative),
		unary("SetInitiative", gameboard.Service.SetInitiative),
		unary("StartCombat", gameboard.Service.StartCombat),
		unary("NextTurn", gameboard.Service.NextTurn),
		unary("EndCombat", gameboard.Service.EndCombat),
		unary("GetCombatState", gameboard.Service.GetCombatState),
		unary("ListAbilities", gameboard.Service.ListAbilities),
		unary("ActivateAbility", gameboard.Service.ActivateAbility),
		unary("SelectTarget", gameboard.Service.SelectTarget),
		unary("CancelTargeting", gameboard.Service.CancelTargeting),
		unary("SelectTool", gameboard.Service.SelectTool),
		unary("BeginShape", gameboard.Service.BeginShape),
		unary("DragShape", gameboard.Service.DragShape),
		unary("ReleaseShape", gameboard.Service.ReleaseShape),
		unary("ConfirmShape", gameboard.Service.ConfirmShape),
		unary("CancelShape", gameboard.Service.CancelShape),
		unary("AdjustViewport", gameboard.Service.AdjustViewport),
		unary("Narrate", gameboard.Service.Narrate),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "battlemap/v1alpha1/gameboard.json",
}

// HandlerConfig holds dependencies for the game board handler
type HandlerConfig struct {
	Service gameboard.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("game board service is required")
	}
	return nil
}

// Handler exposes a gameboard.Service as GameBoardService
type Handler struct {
	service gameboard.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.Service}, nil
}

// Register adds GameBoardService to a gRPC server
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ServiceDesc, h.service)
}

// unary builds the method descriptor for one orchestrator operation. Errors
// leave as gRPC statuses carrying the error code and metadata.
func unary[I, O any](name string, call func(gameboard.Service, context.Context, *I) (*O, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name

	handle := func(srv any, ctx context.Context, req any) (any, error) {
		out, err := call(srv.(gameboard.Service), ctx, req.(*I))
		if err != nil {
			if errors.IsInternal(err) {
				slog.Error("Game board request failed",
					"method", name,
					"error", err,
				)
			}
			return nil, errors.ToGRPCError(err)
		}
		return out, nil
	}

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(I)
			if err := dec(in); err != nil {
				return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request"))
			}
			if interceptor == nil {
				return handle(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return handle(srv, ctx, req)
			})
		},
	}
}
