package gameboard_test

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
	combatsnapshot "github.com/KirkDiggler/battlemap-api/internal/repositories/combat_snapshot"
	combatsnapshotmock "github.com/KirkDiggler/battlemap-api/internal/repositories/combat_snapshot/mock"
	"github.com/KirkDiggler/battlemap-api/internal/repositories/documents"
	"github.com/KirkDiggler/battlemap-api/internal/targeting"
)

// encounter holds the two tokens placed by setupTokens.
type encounter struct {
	thorin *entities.Token
	goblin *entities.Token
}

// setupTokens stores a dex 14 fighter and a dex 10 goblin and places them
// 10 ft apart.
func (s *OrchestratorTestSuite) setupTokens(svc gameboard.Service) encounter {
	_, err := svc.SaveCharacter(s.ctx, &gameboard.SaveCharacterInput{
		Character: &entities.CharacterRecord{ID: "char-1", Name: "Thorin", Dexterity: 14, Speed: 25},
	})
	s.Require().NoError(err)
	_, err = svc.SaveEnemy(s.ctx, &gameboard.SaveEnemyInput{
		Enemy: &entities.EnemyRecord{ID: "enemy-1", Name: "Goblin", Dexterity: 10},
	})
	s.Require().NoError(err)

	thorin, err := svc.AddToken(s.ctx, &gameboard.AddTokenInput{
		CampaignID: s.campaignID,
		Token: &gameboard.TokenSpec{
			Name:        "Thorin",
			Kind:        entities.TokenKindCharacter,
			CharacterID: "char-1",
			Position:    geometry.Point{X: 10, Y: 10},
		},
	})
	s.Require().NoError(err)
	goblin, err := svc.AddToken(s.ctx, &gameboard.AddTokenInput{
		CampaignID: s.campaignID,
		Token: &gameboard.TokenSpec{
			Name:     "Goblin",
			Kind:     entities.TokenKindMonster,
			EnemyID:  "enemy-1",
			Position: geometry.Point{X: 20, Y: 10},
		},
	})
	s.Require().NoError(err)

	return encounter{thorin: thorin.Token, goblin: goblin.Token}
}

// startCombat rolls 10 for Thorin (+2) and 15 for the goblin, so the goblin
// acts first.
func (s *OrchestratorTestSuite) startCombat(svc gameboard.Service) (encounter, *gameboard.StartCombatOutput) {
	enc := s.setupTokens(svc)

	_, err := svc.PrepareInitiative(s.ctx, &gameboard.PrepareInitiativeInput{CampaignID: s.campaignID})
	s.Require().NoError(err)

	s.roller.results = []int{10, 15}
	_, err = svc.RollInitiative(s.ctx, &gameboard.RollInitiativeInput{CampaignID: s.campaignID})
	s.Require().NoError(err)

	out, err := svc.StartCombat(s.ctx, &gameboard.StartCombatInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	return enc, out
}

func (s *OrchestratorTestSuite) nextTurn() *gameboard.NextTurnOutput {
	out, err := s.svc.NextTurn(s.ctx, &gameboard.NextTurnInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) use(actorID string, ability *gameboard.AbilityRef) (*gameboard.ActivateAbilityOutput, error) {
	return s.svc.ActivateAbility(s.ctx, &gameboard.ActivateAbilityInput{
		CampaignID: s.campaignID,
		ActorID:    actorID,
		Ability:    ability,
	})
}

func (s *OrchestratorTestSuite) statusesOf(tokenID string) []entities.Status {
	for _, t := range s.board().Scene.Tokens {
		if t.ID == tokenID {
			return t.Statuses
		}
	}
	s.FailNow("token not on the board", tokenID)
	return nil
}

func (s *OrchestratorTestSuite) TestPrepareInitiativeUsesRecords() {
	enc := s.setupTokens(s.svc)

	out, err := s.svc.PrepareInitiative(s.ctx, &gameboard.PrepareInitiativeInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Require().Len(out.Roster.Entries, 2)

	thorin := out.Roster.Find(enc.thorin.ID)
	s.Require().NotNil(thorin)
	s.Assert().Equal(2, thorin.DexModifier)
	s.Assert().Equal(25, thorin.Speed)
	s.Assert().Nil(thorin.Initiative)
	s.Assert().Empty(out.Roster.Missing)

	_, err = s.svc.PrepareInitiative(s.ctx, &gameboard.PrepareInitiativeInput{
		CampaignID: s.campaignID,
		TokenIDs:   []string{"token_404"},
	})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestStartCombatNeedsEveryInitiative() {
	enc := s.setupTokens(s.svc)

	_, err := s.svc.StartCombat(s.ctx, &gameboard.StartCombatInput{CampaignID: s.campaignID})
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = s.svc.PrepareInitiative(s.ctx, &gameboard.PrepareInitiativeInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	_, err = s.svc.SetInitiative(s.ctx, &gameboard.SetInitiativeInput{
		CampaignID: s.campaignID,
		TokenID:    enc.thorin.ID,
		Value:      18,
	})
	s.Require().NoError(err)

	_, err = s.svc.StartCombat(s.ctx, &gameboard.StartCombatInput{CampaignID: s.campaignID})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	state, err := s.svc.GetCombatState(s.ctx, &gameboard.GetCombatStateInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().False(state.Combat.InCombat)
	s.Require().NotNil(state.Roster)
	s.Assert().Equal([]string{enc.goblin.ID}, state.Roster.Pending())
}

func (s *OrchestratorTestSuite) TestCombatRotation() {
	enc, start := s.startCombat(s.svc)

	s.Assert().True(start.Combat.InCombat)
	s.Assert().Equal(1, start.Combat.Round)
	s.Require().NotNil(start.Combat.Active)
	s.Assert().Equal(enc.goblin.ID, start.Combat.Active.TokenID)
	s.Require().Len(start.Combat.RollLog, 2)
	s.Assert().Equal("Thorin rolled d20 (10) + 2 = 12", start.Combat.RollLog[0].Description())

	turn := s.nextTurn()
	s.Assert().Equal(enc.goblin.ID, turn.Transition.Ending.TokenID)
	s.Assert().Equal(enc.thorin.ID, turn.Transition.Starting.TokenID)
	s.Assert().Equal(1, turn.Transition.Round)

	turn = s.nextTurn()
	s.Assert().Equal(enc.goblin.ID, turn.Combat.Active.TokenID)
	s.Assert().Equal(2, turn.Combat.Round)

	saved, err := s.snapshots.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Require().NotNil(saved.Snapshot)
	s.Assert().Equal(2, saved.Snapshot.Round)
	s.Assert().Equal(0, saved.Snapshot.TurnIndex)

	b := s.board()
	s.Assert().Nil(b.Initiative)
	var types []string
	for _, entry := range b.Activity {
		types = append(types, entry.Type)
	}
	s.Assert().Contains(types, gameboard.EventCombatStarted)
	s.Assert().Contains(types, gameboard.EventTurnStarted)
}

func (s *OrchestratorTestSuite) TestCombatSurvivesRestart() {
	enc, _ := s.startCombat(s.svc)
	s.nextTurn()

	restarted := s.newService(nil)
	state, err := restarted.GetCombatState(s.ctx, &gameboard.GetCombatStateInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().True(state.Combat.InCombat)
	s.Assert().Equal(1, state.Combat.Round)
	s.Require().NotNil(state.Combat.Active)
	s.Assert().Equal(enc.thorin.ID, state.Combat.Active.TokenID)
	s.Assert().Len(state.Combat.Combatants, 2)
}

// dropActiveGoblin leaves Thorin dodging and the goblin active, then deletes
// the goblin from the stored scene behind the service's back.
func (s *OrchestratorTestSuite) dropActiveGoblin() encounter {
	enc, _ := s.startCombat(s.svc)
	s.nextTurn()
	_, err := s.use(enc.thorin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Dodge"})
	s.Require().NoError(err)
	s.nextTurn()

	scene, err := documents.GetAs[entities.Scene](s.ctx, s.docs, documents.CollectionScenes, s.sceneID)
	s.Require().NoError(err)
	scene.RemoveToken(enc.goblin.ID)
	s.Require().NoError(documents.SaveAs(s.ctx, s.docs, documents.CollectionScenes, s.sceneID, scene))
	return enc
}

func (s *OrchestratorTestSuite) TestRestorePrunesMissingActiveCombatant() {
	enc := s.dropActiveGoblin()

	restarted := s.newService(nil)
	state, err := restarted.GetCombatState(s.ctx, &gameboard.GetCombatStateInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Require().NotNil(state.Combat.Active)
	s.Assert().Equal(enc.thorin.ID, state.Combat.Active.TokenID)
	s.Assert().Len(state.Combat.Combatants, 1)

	// the handed-on turn expired Thorin's dodge and the store agrees
	stored, err := documents.GetAs[entities.Scene](s.ctx, s.docs, documents.CollectionScenes, s.sceneID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.FindToken(enc.thorin.ID))
	s.Assert().False(stored.FindToken(enc.thorin.ID).HasStatus(entities.StatusDodging))

	board, err := restarted.GetBoard(s.ctx, &gameboard.GetBoardInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().False(board.Board.Scene.FindToken(enc.thorin.ID).HasStatus(entities.StatusDodging))
}

func (s *OrchestratorTestSuite) TestRestoreKeepsStatusesWhenSaveFails() {
	enc := s.dropActiveGoblin()
	s.docs.failSaves = true

	restarted := s.newService(nil)
	board, err := restarted.GetBoard(s.ctx, &gameboard.GetBoardInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Require().NotNil(board.Board.Combat.Active)
	s.Assert().Equal(enc.thorin.ID, board.Board.Combat.Active.TokenID)
	s.Assert().True(board.Board.Scene.FindToken(enc.thorin.ID).HasStatus(entities.StatusDodging))
}

func (s *OrchestratorTestSuite) TestSnapshotFailureIsAWarning() {
	mockSnapshots := combatsnapshotmock.NewMockRepository(s.ctrl)
	mockSnapshots.EXPECT().Load(gomock.Any(), gomock.Any()).Return(&combatsnapshot.LoadOutput{}, nil).AnyTimes()
	mockSnapshots.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(&combatsnapshot.ClearOutput{}, nil).AnyTimes()
	mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.Internal("redis is down")).AnyTimes()

	svc := s.newService(func(cfg *gameboard.Config) { cfg.Snapshots = mockSnapshots })
	_, start := s.startCombat(svc)

	s.Assert().True(start.Combat.InCombat)
	s.Assert().NotEmpty(start.Warning)
}

func (s *OrchestratorTestSuite) TestDodgeExpiresAtOwnTurnStart() {
	enc, _ := s.startCombat(s.svc)

	out, err := s.use(enc.goblin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Dodge"})
	s.Require().NoError(err)
	s.Assert().Equal(targeting.OutcomeSelfApplied, out.Outcome.Kind)
	s.Assert().Equal(combat.ResourceAction, out.Outcome.Consumed)
	s.Assert().Contains(s.statusesOf(enc.goblin.ID), entities.StatusDodging)

	s.nextTurn()
	s.Assert().Contains(s.statusesOf(enc.goblin.ID), entities.StatusDodging)

	turn := s.nextTurn()
	s.Assert().NotContains(s.statusesOf(enc.goblin.ID), entities.StatusDodging)
	s.Assert().Equal([]targeting.StatusChange{{TokenID: enc.goblin.ID, Status: entities.StatusDodging}}, turn.Expired)
}

func (s *OrchestratorTestSuite) TestStartCombatOpensFirstTurn() {
	enc := s.setupTokens(s.svc)
	for _, id := range []string{enc.thorin.ID, enc.goblin.ID} {
		out, err := s.use(id, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Dodge"})
		s.Require().NoError(err)
		s.Assert().False(out.Outcome.OpenInitiative)
	}

	_, err := s.svc.PrepareInitiative(s.ctx, &gameboard.PrepareInitiativeInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.roller.results = []int{10, 15}
	_, err = s.svc.RollInitiative(s.ctx, &gameboard.RollInitiativeInput{CampaignID: s.campaignID})
	s.Require().NoError(err)

	start, err := s.svc.StartCombat(s.ctx, &gameboard.StartCombatInput{CampaignID: s.campaignID})
	s.Require().NoError(err)

	// the goblin's turn starts, so a dodge taken before the fight ends
	s.Assert().Equal([]targeting.StatusChange{{TokenID: enc.goblin.ID, Status: entities.StatusDodging}}, start.Expired)
	s.Assert().NotContains(s.statusesOf(enc.goblin.ID), entities.StatusDodging)
	s.Assert().Contains(s.statusesOf(enc.thorin.ID), entities.StatusDodging)
}

func (s *OrchestratorTestSuite) TestDisengageExpiresAtOwnTurnEnd() {
	enc, _ := s.startCombat(s.svc)

	_, err := s.use(enc.goblin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityMonster, Name: "Disengage"})
	s.Require().NoError(err)
	s.Assert().Contains(s.statusesOf(enc.goblin.ID), entities.StatusDisengaged)

	turn := s.nextTurn()
	s.Assert().NotContains(s.statusesOf(enc.goblin.ID), entities.StatusDisengaged)
	s.Require().Len(turn.Expired, 1)
	s.Assert().Equal(entities.StatusDisengaged, turn.Expired[0].Status)
}

func (s *OrchestratorTestSuite) TestActionEconomy() {
	enc, _ := s.startCombat(s.svc)

	_, err := s.use(enc.thorin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Dodge"})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Empty(s.statusesOf(enc.thorin.ID))

	_, err = s.use(enc.goblin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Hide"})
	s.Require().NoError(err)

	_, err = s.use(enc.goblin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Dodge"})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal("action", errors.GetMeta(err)["resource"])

	bonus, err := s.use(enc.goblin.ID, &gameboard.AbilityRef{
		Kind:        targeting.AbilitySpell,
		Name:        "Healing Word",
		CastingTime: "1 bonus action",
		Range:       "60 feet",
	})
	s.Require().NoError(err)
	s.Assert().Equal(targeting.OutcomeAwaitingTarget, bonus.Outcome.Kind)

	hit, err := s.svc.SelectTarget(s.ctx, &gameboard.SelectTargetInput{CampaignID: s.campaignID, TargetID: enc.thorin.ID})
	s.Require().NoError(err)
	s.Assert().Equal(combat.ResourceBonusAction, hit.Outcome.Consumed)
	s.Assert().Equal(10, hit.Outcome.DistanceFeet)
	s.Assert().False(hit.Outcome.OpenInitiative)
	s.Assert().Nil(hit.Initiative)

	state, err := s.svc.GetCombatState(s.ctx, &gameboard.GetCombatStateInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().False(state.Combat.Active.HasAction)
	s.Assert().False(state.Combat.Active.HasBonusAction)
	s.Assert().True(state.Combat.Active.HasReaction)
}

func (s *OrchestratorTestSuite) TestOutOfRangeKeepsTargeting() {
	enc := s.setupTokens(s.svc)
	_, err := s.svc.MoveToken(s.ctx, &gameboard.MoveTokenInput{
		CampaignID: s.campaignID,
		TokenID:    enc.goblin.ID,
		Position:   geometry.Point{X: 100, Y: 10},
	})
	s.Require().NoError(err)

	out, err := s.use(enc.thorin.ID, &gameboard.AbilityRef{
		Kind:        targeting.AbilitySpell,
		Name:        "Ray of Frost",
		CastingTime: "1 action",
		Range:       "30 feet",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Outcome.Session)
	s.Require().NotNil(out.Outcome.Session.Ellipse)

	_, err = s.svc.SelectTarget(s.ctx, &gameboard.SelectTargetInput{CampaignID: s.campaignID, TargetID: enc.goblin.ID})
	s.Require().Error(err)
	s.Assert().True(errors.IsOutOfRange(err))
	s.Assert().Equal(90, errors.GetMeta(err)["distance_ft"])
	s.Assert().NotNil(s.board().Targeting)

	cancel, err := s.svc.CancelTargeting(s.ctx, &gameboard.CancelTargetingInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().True(cancel.Cancelled)
	s.Assert().Nil(s.board().Targeting)
}

func (s *OrchestratorTestSuite) TestTargetingOutOfCombatOpensInitiative() {
	enc := s.setupTokens(s.svc)

	s.mockCatalog.EXPECT().
		GetSpell(gomock.Any(), "fire-bolt").
		Return(&entities.SpellRecord{Key: "fire-bolt", Name: "Fire Bolt", CastingTime: "1 action", Range: "120 feet"}, nil)

	_, err := s.use(enc.thorin.ID, &gameboard.AbilityRef{Kind: targeting.AbilitySpell, SpellKey: "fire-bolt"})
	s.Require().NoError(err)

	out, err := s.svc.SelectTarget(s.ctx, &gameboard.SelectTargetInput{CampaignID: s.campaignID, TargetID: enc.goblin.ID})
	s.Require().NoError(err)
	s.Assert().Equal("Thorin used Fire Bolt on Goblin", out.Outcome.Message)
	s.Assert().Empty(out.Outcome.Consumed)
	s.Assert().True(out.Outcome.OpenInitiative)
	s.Require().NotNil(out.Initiative)
	s.Assert().Len(out.Initiative.Entries, 2)
}

func (s *OrchestratorTestSuite) TestListAbilitiesReportsEconomy() {
	enc, _ := s.startCombat(s.svc)

	_, err := s.use(enc.goblin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Hide"})
	s.Require().NoError(err)

	goblin, err := s.svc.ListAbilities(s.ctx, &gameboard.ListAbilitiesInput{CampaignID: s.campaignID, TokenID: enc.goblin.ID})
	s.Require().NoError(err)
	s.Assert().Len(goblin.Abilities, 4)
	s.Assert().True(goblin.YourTurn)
	s.Require().NotNil(goblin.Economy)
	s.Assert().False(goblin.Economy.HasAction)
	s.Assert().True(goblin.Economy.HasBonusAction)
	s.Assert().Equal(30, goblin.Economy.MovementRemaining)

	thorin, err := s.svc.ListAbilities(s.ctx, &gameboard.ListAbilitiesInput{CampaignID: s.campaignID, TokenID: enc.thorin.ID})
	s.Require().NoError(err)
	s.Assert().False(thorin.YourTurn)
	s.Require().NotNil(thorin.Economy)
	s.Assert().Equal(25, thorin.Economy.Speed)

	_, err = s.svc.EndCombat(s.ctx, &gameboard.EndCombatInput{CampaignID: s.campaignID})
	s.Require().NoError(err)

	after, err := s.svc.ListAbilities(s.ctx, &gameboard.ListAbilitiesInput{CampaignID: s.campaignID, TokenID: enc.goblin.ID})
	s.Require().NoError(err)
	s.Assert().Nil(after.Economy)
	s.Assert().False(after.YourTurn)
}

func (s *OrchestratorTestSuite) TestUntargetedAbilityOutOfCombatOpensInitiative() {
	enc := s.setupTokens(s.svc)

	out, err := s.use(enc.thorin.ID, &gameboard.AbilityRef{
		Kind:        targeting.AbilityAction,
		Name:        "Use an Item",
		Description: "Drink a potion of healing.",
	})
	s.Require().NoError(err)
	s.Assert().Equal(targeting.OutcomeResolved, out.Outcome.Kind)
	s.Assert().True(out.Outcome.OpenInitiative)
	s.Require().NotNil(out.Initiative)
	s.Assert().Len(out.Initiative.Entries, 2)
	s.Assert().NotNil(s.board().Initiative)
}

func (s *OrchestratorTestSuite) TestHelpSelfIsRejectedWithoutCost() {
	enc, _ := s.startCombat(s.svc)
	s.nextTurn()

	out, err := s.use(enc.thorin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Help"})
	s.Require().NoError(err)
	s.Assert().Equal(targeting.OutcomeAwaitingTarget, out.Outcome.Kind)

	_, err = s.svc.SelectTarget(s.ctx, &gameboard.SelectTargetInput{CampaignID: s.campaignID, TargetID: enc.thorin.ID})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	state, err := s.svc.GetCombatState(s.ctx, &gameboard.GetCombatStateInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().True(state.Combat.Active.HasAction)
	s.Assert().Nil(s.board().Targeting)
}

func (s *OrchestratorTestSuite) TestEndCombatKeepsStatuses() {
	enc, _ := s.startCombat(s.svc)
	_, err := s.use(enc.goblin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Dodge"})
	s.Require().NoError(err)

	out, err := s.svc.EndCombat(s.ctx, &gameboard.EndCombatInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().True(out.Ended)
	s.Assert().Empty(out.Cleared)
	s.Assert().Contains(s.statusesOf(enc.goblin.ID), entities.StatusDodging)

	saved, err := s.snapshots.Load(s.ctx, combatsnapshot.LoadInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().Nil(saved.Snapshot)

	again, err := s.svc.EndCombat(s.ctx, &gameboard.EndCombatInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().False(again.Ended)
}

func (s *OrchestratorTestSuite) TestEndCombatClearsStatusesWhenConfigured() {
	s.svc = s.newService(func(cfg *gameboard.Config) { cfg.ClearStatusesOnCombatEnd = true })
	enc, _ := s.startCombat(s.svc)
	_, err := s.use(enc.goblin.ID, &gameboard.AbilityRef{Kind: targeting.AbilityAction, Name: "Dodge"})
	s.Require().NoError(err)

	out, err := s.svc.EndCombat(s.ctx, &gameboard.EndCombatInput{CampaignID: s.campaignID})
	s.Require().NoError(err)
	s.Assert().True(out.Ended)
	s.Require().Len(out.Cleared, 1)
	s.Assert().Empty(s.statusesOf(enc.goblin.ID))
}

func (s *OrchestratorTestSuite) TestRemovingActiveTokenAdvancesTurn() {
	enc, _ := s.startCombat(s.svc)

	out, err := s.svc.RemoveToken(s.ctx, &gameboard.RemoveTokenInput{CampaignID: s.campaignID, TokenID: enc.goblin.ID})
	s.Require().NoError(err)
	s.Assert().Equal(enc.goblin.ID, out.Token.ID)
	s.Assert().True(out.Combat.InCombat)
	s.Require().NotNil(out.Combat.Active)
	s.Assert().Equal(enc.thorin.ID, out.Combat.Active.TokenID)

	out, err = s.svc.RemoveToken(s.ctx, &gameboard.RemoveTokenInput{CampaignID: s.campaignID, TokenID: enc.thorin.ID})
	s.Require().NoError(err)
	s.Assert().False(out.Combat.InCombat)
	s.Assert().Empty(s.board().Scene.Tokens)
}

func (s *OrchestratorTestSuite) TestMovementSpendsOnlyOnOwnTurn() {
	enc, _ := s.startCombat(s.svc)

	out, err := s.svc.MoveToken(s.ctx, &gameboard.MoveTokenInput{
		CampaignID: s.campaignID,
		TokenID:    enc.goblin.ID,
		Position:   geometry.Point{X: 60, Y: 10},
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Movement)
	s.Assert().Equal(40, out.Movement.SpentFeet)
	s.Assert().True(out.Movement.Exceeded)
	s.Assert().Equal(0, out.Movement.RemainingFeet)

	out, err = s.svc.MoveToken(s.ctx, &gameboard.MoveTokenInput{
		CampaignID: s.campaignID,
		TokenID:    enc.thorin.ID,
		Position:   geometry.Point{X: 10, Y: 20},
	})
	s.Require().NoError(err)
	s.Assert().Nil(out.Movement)
}

func (s *OrchestratorTestSuite) TestStrictMovementRejectsOverspend() {
	s.svc = s.newService(func(cfg *gameboard.Config) { cfg.MovementPolicy = combat.MovementStrict })
	enc, _ := s.startCombat(s.svc)

	_, err := s.svc.MoveToken(s.ctx, &gameboard.MoveTokenInput{
		CampaignID: s.campaignID,
		TokenID:    enc.goblin.ID,
		Position:   geometry.Point{X: 60, Y: 10},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	for _, t := range s.board().Scene.Tokens {
		if t.ID == enc.goblin.ID {
			s.Assert().Equal(geometry.Point{X: 20, Y: 10}, t.Position)
		}
	}
}

func (s *OrchestratorTestSuite) TestSceneLockedDuringCombat() {
	s.startCombat(s.svc)

	second, err := s.svc.CreateScene(s.ctx, &gameboard.CreateSceneInput{
		CampaignID: s.campaignID, Name: "Goblin Trail", WidthSquares: 30, HeightSquares: 10,
	})
	s.Require().NoError(err)

	_, err = s.svc.ActivateScene(s.ctx, &gameboard.ActivateSceneInput{CampaignID: s.campaignID, SceneID: second.Scene.ID})
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = s.svc.PrepareInitiative(s.ctx, &gameboard.PrepareInitiativeInput{CampaignID: s.campaignID})
	s.Assert().True(errors.IsFailedPrecondition(err))
}
