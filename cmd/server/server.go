package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/battlemap-api/internal/clients/catalog"
	"github.com/KirkDiggler/battlemap-api/internal/clients/narration"
	"github.com/KirkDiggler/battlemap-api/internal/config"
	"github.com/KirkDiggler/battlemap-api/internal/handlers/gameboard/v1alpha1"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
	"github.com/KirkDiggler/battlemap-api/internal/redis"
	combatsnapshot "github.com/KirkDiggler/battlemap-api/internal/repositories/combat_snapshot"
	"github.com/KirkDiggler/battlemap-api/internal/repositories/documents"
	"github.com/KirkDiggler/battlemap-api/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the battle map gRPC server. Settings come from BATTLEMAP_ environment variables; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides BATTLEMAP_GRPC_PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", "", "env file to load before reading the environment")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	clk := clock.New()
	stores, err := openStores(ctx, cfg, clk)
	if err != nil {
		return err
	}
	defer stores.close()

	catalogClient, err := catalog.New(&catalog.Config{
		BaseURL:  cfg.DND5EBaseURL,
		CacheTTL: cfg.DND5ECacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	narrator := narration.NewDisabled()
	if cfg.NarrationEnabled() {
		narrator, err = narration.NewOpenAI(&narration.Config{
			BaseURL: cfg.NarrationBaseURL,
			APIKey:  cfg.NarrationAPIKey,
			Model:   cfg.NarrationModel,
		})
		if err != nil {
			return fmt.Errorf("failed to create narration client: %w", err)
		}
	}

	boards, err := gameboard.New(&gameboard.Config{
		Documents:                stores.documents,
		Snapshots:                stores.snapshots,
		Catalog:                  catalogClient,
		Narrator:                 narrator,
		Clock:                    clk,
		MovementPolicy:           cfg.Movement(),
		ClearStatusesOnCombatEnd: cfg.ClearStatusesOnCombatEnd,
		Tracer:                   telemetry.Tracer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game board service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: boards})
	if err != nil {
		return fmt.Errorf("failed to create game board handler: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	recovery := grpc_recovery.WithRecoveryHandlerContext(recoverFunc)
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	handler.Register(srv)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("gRPC server starting",
			"port", cfg.GRPCPort,
			"storage", cfg.Storage,
			"movement_policy", cfg.Movement(),
			"narration", cfg.NarrationEnabled(),
		)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// stores holds the persistence backends picked by configuration.
type stores struct {
	documents documents.Repository
	snapshots combatsnapshot.Repository
	closers   []func() error
}

func (s *stores) close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			slog.Warn("Failed to close store", "error", err)
		}
	}
}

func openStores(ctx context.Context, cfg *config.Config, clk clock.Clock) (*stores, error) {
	switch cfg.Storage {
	case config.StorageRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			DB:       cfg.RedisDB,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redis.Ping(ctx, client, 5*time.Second); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}

		docs, err := documents.NewRedisRepository(&documents.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create document store: %w", err)
		}
		snapshots, err := combatsnapshot.NewRedisRepository(&combatsnapshot.Config{
			Client: client,
			Clock:  clk,
			TTL:    cfg.SnapshotTTL,
		})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create snapshot store: %w", err)
		}
		return &stores{documents: docs, snapshots: snapshots, closers: []func() error{client.Close}}, nil

	case config.StorageSQLite:
		docs, err := documents.NewSQLiteRepository(ctx, &documents.SQLiteConfig{Path: cfg.SQLitePath, Clock: clk})
		if err != nil {
			return nil, fmt.Errorf("failed to open document store: %w", err)
		}
		slog.Info("Combat snapshots are kept in memory with the sqlite store")
		return &stores{
			documents: docs,
			snapshots: combatsnapshot.NewInMemoryRepository(clk, cfg.SnapshotTTL),
			closers:   []func() error{docs.Close},
		}, nil

	default:
		slog.Warn("Using in-memory storage; boards are lost on restart")
		return &stores{
			documents: documents.NewInMemoryRepository(clk),
			snapshots: combatsnapshot.NewInMemoryRepository(clk, cfg.SnapshotTTL),
		}, nil
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverFunc(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
