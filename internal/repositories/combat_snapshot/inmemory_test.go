package combatsnapshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
	combatsnapshot "github.com/KirkDiggler/battlemap-api/internal/repositories/combat_snapshot"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  combatsnapshot.Repository
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	s.repo = combatsnapshot.NewInMemoryRepository(s.clock, time.Hour)
}

func (s *InMemoryRepositoryTestSuite) TestRoundTripIsolatesCombatants() {
	snap := &combat.Snapshot{
		InCombat:   true,
		Combatants: []*combat.Combatant{{TokenID: "tok_a", HasAction: true}},
		Round:      1,
	}
	_, err := s.repo.Save(s.ctx, combatsnapshot.SaveInput{CampaignID: "campaign_1", Snapshot: snap})
	s.Require().NoError(err)

	snap.Combatants[0].HasAction = false

	out, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Snapshot)
	s.Assert().True(out.Snapshot.Combatants[0].HasAction)
	s.Assert().Equal(s.clock.Now(), out.Snapshot.SavedAt)
}

func (s *InMemoryRepositoryTestSuite) TestExpiry() {
	_, err := s.repo.Save(s.ctx, combatsnapshot.SaveInput{CampaignID: "campaign_1", Snapshot: &combat.Snapshot{InCombat: true}})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)

	out, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().Nil(out.Snapshot)

	cleared, err := s.repo.Clear(s.ctx, combatsnapshot.ClearInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().False(cleared.Cleared)
}

func (s *InMemoryRepositoryTestSuite) TestClear() {
	_, err := s.repo.Save(s.ctx, combatsnapshot.SaveInput{CampaignID: "campaign_1", Snapshot: &combat.Snapshot{InCombat: true}})
	s.Require().NoError(err)

	cleared, err := s.repo.Clear(s.ctx, combatsnapshot.ClearInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().True(cleared.Cleared)

	out, err := s.repo.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Assert().Nil(out.Snapshot)
}
