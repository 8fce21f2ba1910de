package combat_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// recordingHooks logs hook calls as "end:<token>" and "start:<token>".
type recordingHooks struct {
	calls []string
}

func (h *recordingHooks) OnTurnEnd(c *combat.Combatant) {
	h.calls = append(h.calls, "end:"+c.TokenID)
}

func (h *recordingHooks) OnTurnStart(c *combat.Combatant) {
	h.calls = append(h.calls, "start:"+c.TokenID)
}

type SchedulerTestSuite struct {
	suite.Suite
	hooks     *recordingHooks
	scheduler *combat.Scheduler
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) SetupTest() {
	s.hooks = &recordingHooks{}
	s.scheduler = combat.NewScheduler(s.hooks)
}

func (s *SchedulerTestSuite) roster(ids ...string) []*combat.Combatant {
	out := make([]*combat.Combatant, 0, len(ids))
	for _, id := range ids {
		c := &combat.Combatant{TokenID: id, Name: id, Speed: 30}
		c.ResetForTurn()
		out = append(out, c)
	}
	return out
}

func (s *SchedulerTestSuite) TestStart() {
	first, err := s.scheduler.Start(s.roster("a", "b", "c"), []combat.RollLogEntry{{TokenID: "a", Total: 12}})
	s.Require().NoError(err)

	s.Assert().Equal("a", first.TokenID)
	s.Assert().True(s.scheduler.InCombat())
	s.Assert().Equal(0, s.scheduler.TurnIndex())
	s.Assert().Equal(1, s.scheduler.Round())
	s.Assert().True(s.scheduler.IsActive("a"))
	s.Assert().Len(s.scheduler.RollLog(), 1)
	s.Assert().Equal([]string{"start:a"}, s.hooks.calls)

	_, err = s.scheduler.Start(s.roster("d"), nil)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *SchedulerTestSuite) TestStartEmpty() {
	_, err := s.scheduler.Start(nil, nil)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().False(s.scheduler.InCombat())
}

func (s *SchedulerTestSuite) TestNextTurnOrderOfHooks() {
	_, err := s.scheduler.Start(s.roster("a", "b"), nil)
	s.Require().NoError(err)
	s.hooks.calls = nil

	transition, err := s.scheduler.NextTurn()
	s.Require().NoError(err)
	s.Assert().Equal("a", transition.Ending.TokenID)
	s.Assert().Equal("b", transition.Starting.TokenID)
	s.Assert().Equal([]string{"end:a", "start:b"}, s.hooks.calls)
}

func (s *SchedulerTestSuite) TestNextTurnCyclesAndCountsRounds() {
	_, err := s.scheduler.Start(s.roster("a", "b", "c"), nil)
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, err := s.scheduler.NextTurn()
		s.Require().NoError(err)
	}

	s.Assert().Equal(0, s.scheduler.TurnIndex())
	s.Assert().Equal(2, s.scheduler.Round())
}

func (s *SchedulerTestSuite) TestNextTurnResetsOnlyStartingCombatant() {
	combatants := s.roster("a", "b", "c")
	_, err := s.scheduler.Start(combatants, nil)
	s.Require().NoError(err)

	// a spends everything, c used a reaction off-turn
	s.Require().NoError(combatants[0].Consume(combat.ResourceAction))
	s.Require().NoError(combatants[0].Consume(combat.ResourceReaction))
	s.Require().NoError(combatants[2].Consume(combat.ResourceReaction))
	combatants[1].HasAction = false

	_, err = s.scheduler.NextTurn()
	s.Require().NoError(err)

	b := s.scheduler.Active()
	s.Assert().True(b.HasAction)
	s.Assert().True(b.HasBonusAction)
	s.Assert().True(b.HasReaction)

	s.Assert().False(combatants[0].HasAction)
	s.Assert().False(combatants[0].HasReaction)
	s.Assert().False(combatants[2].HasReaction)
}

func (s *SchedulerTestSuite) TestNextTurnOutOfCombat() {
	_, err := s.scheduler.NextTurn()
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *SchedulerTestSuite) TestEnd() {
	_, err := s.scheduler.Start(s.roster("a"), nil)
	s.Require().NoError(err)

	s.Assert().True(s.scheduler.End())
	s.Assert().False(s.scheduler.InCombat())
	s.Assert().Nil(s.scheduler.Active())
	s.Assert().Equal(0, s.scheduler.Round())
	s.Assert().False(s.scheduler.End())
}

func (s *SchedulerTestSuite) TestSnapshotRestore() {
	_, err := s.scheduler.Start(s.roster("a", "b", "c"), []combat.RollLogEntry{{TokenID: "a", Roll: 10, Total: 12}})
	s.Require().NoError(err)
	_, err = s.scheduler.NextTurn()
	s.Require().NoError(err)

	snap := s.scheduler.Snapshot()
	s.Assert().True(snap.InCombat)
	s.Assert().Equal(1, snap.TurnIndex)

	// snapshots are copies
	snap.Combatants[1].HasAction = false
	s.Assert().True(s.scheduler.Active().HasAction)

	restored := combat.NewScheduler(nil)
	s.Require().NoError(restored.Restore(snap))
	s.Assert().Equal("b", restored.Active().TokenID)
	s.Assert().False(restored.Active().HasAction)
	s.Assert().Equal(1, restored.Round())
	s.Assert().Len(restored.RollLog(), 1)
}

func (s *SchedulerTestSuite) TestRestoreRejectsCorruptSnapshots() {
	err := s.scheduler.Restore(&combat.Snapshot{InCombat: true})
	s.Assert().True(errors.IsInvalidArgument(err))

	err = s.scheduler.Restore(&combat.Snapshot{InCombat: true, Combatants: s.roster("a"), TurnIndex: 1})
	s.Assert().True(errors.IsInvalidArgument(err))

	s.Require().NoError(s.scheduler.Restore(nil))
	s.Assert().False(s.scheduler.InCombat())
}

func (s *SchedulerTestSuite) TestRemove() {
	_, err := s.scheduler.Start(s.roster("a", "b", "c"), nil)
	s.Require().NoError(err)
	_, err = s.scheduler.NextTurn()
	s.Require().NoError(err)

	// removing someone before the active combatant keeps b active
	s.Assert().True(s.scheduler.Remove("a"))
	s.Assert().Equal("b", s.scheduler.Active().TokenID)
	s.Assert().Equal(0, s.scheduler.TurnIndex())

	// removing the active combatant starts the next turn
	s.hooks.calls = nil
	s.Assert().True(s.scheduler.Remove("b"))
	s.Assert().Equal("c", s.scheduler.Active().TokenID)
	s.Assert().Equal([]string{"start:c"}, s.hooks.calls)

	s.Assert().False(s.scheduler.Remove("zzz"))
	s.Assert().True(s.scheduler.Remove("c"))
	s.Assert().False(s.scheduler.InCombat())
}
