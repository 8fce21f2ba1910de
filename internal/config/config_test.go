package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/config"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) parse(vars map[string]string) (*config.Config, error) {
	return config.Parse(env.Options{Environment: vars})
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := s.parse(map[string]string{})
	s.Require().NoError(err)

	s.Assert().Equal(50051, cfg.GRPCPort)
	s.Assert().Equal(config.StorageMemory, cfg.Storage)
	s.Assert().Equal(7*24*time.Hour, cfg.SnapshotTTL)
	s.Assert().Equal(combat.MovementAdvisory, cfg.Movement())
	s.Assert().False(cfg.ClearStatusesOnCombatEnd)
	s.Assert().Equal(slog.LevelInfo, cfg.SlogLevel())
	s.Assert().False(cfg.NarrationEnabled())
	s.Assert().Empty(cfg.OTelEndpoint)
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := s.parse(map[string]string{
		"BATTLEMAP_GRPC_PORT":                    "6000",
		"BATTLEMAP_STORAGE":                      "sqlite",
		"BATTLEMAP_SQLITE_PATH":                  "/tmp/board.db",
		"BATTLEMAP_SNAPSHOT_TTL":                 "2h",
		"BATTLEMAP_MOVEMENT_POLICY":              "strict",
		"BATTLEMAP_CLEAR_STATUSES_ON_COMBAT_END": "true",
		"BATTLEMAP_LOG_LEVEL":                    "debug",
		"BATTLEMAP_NARRATION_API_KEY":            "sk-test",
	})
	s.Require().NoError(err)

	s.Assert().Equal(6000, cfg.GRPCPort)
	s.Assert().Equal(config.StorageSQLite, cfg.Storage)
	s.Assert().Equal("/tmp/board.db", cfg.SQLitePath)
	s.Assert().Equal(2*time.Hour, cfg.SnapshotTTL)
	s.Assert().Equal(combat.MovementStrict, cfg.Movement())
	s.Assert().True(cfg.ClearStatusesOnCombatEnd)
	s.Assert().Equal(slog.LevelDebug, cfg.SlogLevel())
	s.Assert().True(cfg.NarrationEnabled())
}

func (s *ConfigTestSuite) TestUnprefixedVariablesAreIgnored() {
	cfg, err := s.parse(map[string]string{"GRPC_PORT": "7000"})
	s.Require().NoError(err)
	s.Assert().Equal(50051, cfg.GRPCPort)
}

func (s *ConfigTestSuite) TestValidation() {
	_, err := s.parse(map[string]string{
		"BATTLEMAP_STORAGE":         "postgres",
		"BATTLEMAP_MOVEMENT_POLICY": "loose",
		"BATTLEMAP_GRPC_PORT":       "0",
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Contains(fields, "Storage")
	s.Assert().Contains(fields, "MovementPolicy")
	s.Assert().Contains(fields, "GRPCPort")
}

func (s *ConfigTestSuite) TestMalformedDuration() {
	_, err := s.parse(map[string]string{"BATTLEMAP_SNAPSHOT_TTL": "soon"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestLoadEnvFile() {
	path := filepath.Join(s.T().TempDir(), "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("BATTLEMAP_GRPC_PORT=6100\n"), 0o600))
	s.T().Setenv("BATTLEMAP_GRPC_PORT", "")
	s.Require().NoError(os.Unsetenv("BATTLEMAP_GRPC_PORT"))

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal(6100, cfg.GRPCPort)
}

func (s *ConfigTestSuite) TestLoadMissingEnvFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Assert().True(errors.IsInvalidArgument(err))
}
