package combatsnapshot_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
	"github.com/KirkDiggler/battlemap-api/internal/redis"
	combatsnapshot "github.com/KirkDiggler/battlemap-api/internal/repositories/combat_snapshot"
	"github.com/KirkDiggler/battlemap-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	client  redis.Client
	mr      *miniredis.Miniredis
	cleanup func()
	clock   *clock.Fixed
	repo    combatsnapshot.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.clock = clock.NewFixed(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))

	repo, err := combatsnapshot.NewRedisRepository(&combatsnapshot.Config{
		Client: s.client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) snapshot() *combat.Snapshot {
	return &combat.Snapshot{
		InCombat: true,
		Combatants: []*combat.Combatant{
			{TokenID: "tok_a", Name: "Mira", Initiative: 17, DexModifier: 3, Speed: 30, HasAction: false, HasBonusAction: true, HasReaction: true, MovementRemaining: 10},
			{TokenID: "tok_b", Name: "Goblin", Initiative: 12, DexModifier: 2, Speed: 30, HasAction: true, HasBonusAction: true, HasReaction: false},
		},
		TurnIndex:         0,
		Round:             3,
		InitiativeRollLog: []combat.RollLogEntry{{TokenID: "tok_a", Name: "Mira", Roll: 14, Modifier: 3, Total: 17}},
	}
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := combatsnapshot.NewRedisRepository(&combatsnapshot.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = combatsnapshot.NewRedisRepository(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestLoadMissingReturnsNil() {
	out, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().Nil(out.Snapshot)
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	saved, err := s.repo.Save(s.ctx, combatsnapshot.SaveInput{CampaignID: "campaign_1", Snapshot: s.snapshot()})
	s.Require().NoError(err)
	s.Assert().Equal(s.clock.Now(), saved.Snapshot.SavedAt)

	out, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Snapshot)
	s.Assert().True(out.Snapshot.InCombat)
	s.Assert().Equal(3, out.Snapshot.Round)
	s.Require().Len(out.Snapshot.Combatants, 2)
	s.Assert().False(out.Snapshot.Combatants[0].HasAction)
	s.Assert().Equal(10, out.Snapshot.Combatants[0].MovementRemaining)
	s.Assert().Equal(17, out.Snapshot.InitiativeRollLog[0].Total)
	s.Assert().True(s.clock.Now().Equal(out.Snapshot.SavedAt))

	s.Assert().Equal(time.Hour, s.mr.TTL("combat_snapshot:campaign_1"))
}

func (s *RedisRepositoryTestSuite) TestSnapshotExpires() {
	_, err := s.repo.Save(s.ctx, combatsnapshot.SaveInput{CampaignID: "campaign_1", Snapshot: s.snapshot()})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	out, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().Nil(out.Snapshot)
}

func (s *RedisRepositoryTestSuite) TestClear() {
	_, err := s.repo.Save(s.ctx, combatsnapshot.SaveInput{CampaignID: "campaign_1", Snapshot: s.snapshot()})
	s.Require().NoError(err)

	out, err := s.repo.Clear(s.ctx, combatsnapshot.ClearInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().True(out.Cleared)

	out, err = s.repo.Clear(s.ctx, combatsnapshot.ClearInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().False(out.Cleared)
}

func (s *RedisRepositoryTestSuite) TestLegacySnapshotGetsRound() {
	s.Require().NoError(s.mr.Set("combat_snapshot:campaign_old",
		`{"is_in_combat":true,"combatants":[{"token_id":"tok_a","name":"Mira","initiative":10}],"turn_index":0}`))

	out, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_old"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Snapshot)
	s.Assert().Equal(1, out.Snapshot.Round)
}

func (s *RedisRepositoryTestSuite) TestCorruptSnapshot() {
	s.Require().NoError(s.mr.Set("combat_snapshot:campaign_bad", "{not json"))

	_, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_bad"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestInputValidation() {
	_, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, combatsnapshot.SaveInput{CampaignID: "campaign_1"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Clear(s.ctx, combatsnapshot.ClearInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

// RedisFailureTestSuite drives the repository against redismock to cover
// connection failures miniredis cannot produce.
type RedisFailureTestSuite struct {
	suite.Suite
	ctx  context.Context
	mock redismock.ClientMock
	repo combatsnapshot.Repository
}

func TestRedisFailureSuite(t *testing.T) {
	suite.Run(t, new(RedisFailureTestSuite))
}

func (s *RedisFailureTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mock := redismock.NewClientMock()
	s.mock = mock

	repo, err := combatsnapshot.NewRedisRepository(&combatsnapshot.Config{
		Client: client,
		Clock:  clock.NewFixed(time.Unix(0, 0)),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisFailureTestSuite) TearDownTest() {
	s.Assert().NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisFailureTestSuite) TestLoadFailure() {
	s.mock.ExpectGet("combat_snapshot:campaign_1").SetErr(fmt.Errorf("connection refused"))

	_, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_1"})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "connection refused")
}

func (s *RedisFailureTestSuite) TestLoadNil() {
	s.mock.ExpectGet("combat_snapshot:campaign_1").RedisNil()

	out, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().Nil(out.Snapshot)
}

func (s *RedisFailureTestSuite) TestClearFailure() {
	s.mock.ExpectDel("combat_snapshot:campaign_1").SetErr(fmt.Errorf("READONLY"))

	_, err := s.repo.Clear(s.ctx, combatsnapshot.ClearInput{CampaignID: "campaign_1"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}
