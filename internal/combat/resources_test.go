package combat_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

type ResourcesTestSuite struct {
	suite.Suite
	combatant *combat.Combatant
}

func TestResourcesSuite(t *testing.T) {
	suite.Run(t, new(ResourcesTestSuite))
}

func (s *ResourcesTestSuite) SetupTest() {
	s.combatant = &combat.Combatant{TokenID: "token_1", Name: "Mira", Speed: 30}
	s.combatant.ResetForTurn()
}

func (s *ResourcesTestSuite) TestResetForTurn() {
	s.combatant.HasAction = false
	s.combatant.HasBonusAction = false
	s.combatant.HasReaction = false
	s.combatant.MovementRemaining = 5

	s.combatant.ResetForTurn()

	s.Assert().True(s.combatant.HasAction)
	s.Assert().True(s.combatant.HasBonusAction)
	s.Assert().True(s.combatant.HasReaction)
	s.Assert().Equal(30, s.combatant.MovementRemaining)
}

func (s *ResourcesTestSuite) TestConsume() {
	s.Require().NoError(s.combatant.Consume(combat.ResourceBonusAction))
	s.Assert().False(s.combatant.Has(combat.ResourceBonusAction))
	s.Assert().True(s.combatant.Has(combat.ResourceAction))

	err := s.combatant.Consume(combat.ResourceBonusAction)
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal("no bonus action remaining", errors.GetMessage(err))
	s.Assert().Equal("bonus_action", errors.GetMeta(err)["resource"])

	s.combatant.Refund(combat.ResourceBonusAction)
	s.Assert().True(s.combatant.Has(combat.ResourceBonusAction))
}

func (s *ResourcesTestSuite) TestUnknownResourceIsNeverAvailable() {
	s.Assert().False(s.combatant.Has(combat.Resource("legendary")))
	s.Assert().Error(s.combatant.Consume(combat.Resource("legendary")))
}

func (s *ResourcesTestSuite) TestSpendMovementAdvisory() {
	result, err := s.combatant.SpendMovement(20, combat.MovementAdvisory)
	s.Require().NoError(err)
	s.Assert().Equal(combat.MovementResult{SpentFeet: 20, RemainingFeet: 10}, result)

	result, err = s.combatant.SpendMovement(25, combat.MovementAdvisory)
	s.Require().NoError(err)
	s.Assert().True(result.Exceeded)
	s.Assert().Equal(0, result.RemainingFeet)
}

func (s *ResourcesTestSuite) TestSpendMovementStrict() {
	_, err := s.combatant.SpendMovement(35, combat.MovementStrict)
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal(30, s.combatant.MovementRemaining)

	result, err := s.combatant.SpendMovement(30, combat.MovementStrict)
	s.Require().NoError(err)
	s.Assert().False(result.Exceeded)
	s.Assert().Equal(0, result.RemainingFeet)

	_, err = s.combatant.SpendMovement(-5, combat.MovementStrict)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ResourcesTestSuite) TestParseMovementPolicy() {
	policy, err := combat.ParseMovementPolicy("")
	s.Require().NoError(err)
	s.Assert().Equal(combat.MovementAdvisory, policy)

	policy, err = combat.ParseMovementPolicy("strict")
	s.Require().NoError(err)
	s.Assert().Equal(combat.MovementStrict, policy)

	_, err = combat.ParseMovementPolicy("teleport")
	s.Assert().True(errors.IsInvalidArgument(err))
}
