package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rmaffei/partygames-go/internal/dependencies/mocks"
	"github.com/rmaffei/partygames-go/internal/model"
	"github.com/rmaffei/partygames-go/internal/storage/memory"
	"github.com/rmaffei/partygames-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) addPlayers(names ...string) []*model.Player {
	players := make([]*model.Player, 0, len(names))
	for _, name := range names {
		p, err := s.service.AddPlayer(s.ctx, name)
		s.Require().NoError(err)
		players = append(players, p)
	}
	return players
}

// AddPlayer tests

func (s *ServiceSuite) TestAddPlayerSucceeds() {
	player, err := s.service.AddPlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	s.NotEmpty(player.ID)
	s.Equal("Alice", player.Name)
	s.Equal(0, player.Points)
	s.Equal(0, player.ChallengesCompleted)
	s.Equal(0, player.DrinksCompleted)
	s.Equal(s.clock.Current, player.CreatedAt)
}

func (s *ServiceSuite) TestAddPlayerFirstBecomesActive() {
	players := s.addPlayers("Alice", "Bob")
	s.True(players[0].IsActive)
	s.False(players[1].IsActive)

	settings, err := s.service.Settings(s.ctx)
	s.Require().NoError(err)
	s.Equal(players[0].ID, settings.CurrentPlayerID)
}

func (s *ServiceSuite) TestAddPlayerTrimsName() {
	player, err := s.service.AddPlayer(s.ctx, "  Alice  ")
	s.Require().NoError(err)
	s.Equal("Alice", player.Name)
}

func (s *ServiceSuite) TestAddPlayerRejectsEmptyName() {
	_, err := s.service.AddPlayer(s.ctx, "   ")
	s.ErrorIs(err, model.ErrEmptyName)
}

func (s *ServiceSuite) TestListPlayersKeepsInsertionOrder() {
	s.addPlayers("Alice", "Bob", "Carol")

	players, err := s.service.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("Alice", players[0].Name)
	s.Equal("Bob", players[1].Name)
	s.Equal("Carol", players[2].Name)
}

// Turn rotation tests

func (s *ServiceSuite) TestCurrentPlayerFailsOnEmptyRoster() {
	_, err := s.service.CurrentPlayer(s.ctx)
	s.ErrorIs(err, model.ErrNoPlayers)
}

func (s *ServiceSuite) TestSetNextPlayerRotates() {
	players := s.addPlayers("Alice", "Bob", "Carol")

	next, err := s.service.SetNextPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(players[1].ID, next.ID)

	current, err := s.service.CurrentPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(players[1].ID, current.ID)
}

func (s *ServiceSuite) TestSetNextPlayerWrapsAround() {
	players := s.addPlayers("Alice", "Bob")

	_, err := s.service.SetNextPlayer(s.ctx)
	s.Require().NoError(err)
	next, err := s.service.SetNextPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(players[0].ID, next.ID)
}

func (s *ServiceSuite) TestSetFirstPlayerResetsRotation() {
	players := s.addPlayers("Alice", "Bob", "Carol")
	_, _ = s.service.SetNextPlayer(s.ctx)
	_, _ = s.service.SetNextPlayer(s.ctx)

	first, err := s.service.SetFirstPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(players[0].ID, first.ID)

	listed, _ := s.service.ListPlayers(s.ctx)
	s.True(listed[0].IsActive)
	s.False(listed[1].IsActive)
	s.False(listed[2].IsActive)
}

func (s *ServiceSuite) TestSetFirstPlayerFailsOnEmptyRoster() {
	_, err := s.service.SetFirstPlayer(s.ctx)
	s.ErrorIs(err, model.ErrNoPlayers)
}

// Points tests

func (s *ServiceSuite) TestUpdatePointsChallengeKind() {
	players := s.addPlayers("Alice")

	updated, err := s.service.UpdatePoints(s.ctx, players[0].ID, model.PointKindChallenge, 5)
	s.Require().NoError(err)
	s.Equal(5, updated.Points)
	s.Equal(1, updated.ChallengesCompleted)
	s.Equal(0, updated.DrinksCompleted)
}

func (s *ServiceSuite) TestUpdatePointsDrinkKind() {
	players := s.addPlayers("Alice")

	updated, err := s.service.UpdatePoints(s.ctx, players[0].ID, model.PointKindDrink, 3)
	s.Require().NoError(err)
	s.Equal(3, updated.Points)
	s.Equal(0, updated.ChallengesCompleted)
	s.Equal(1, updated.DrinksCompleted)
}

func (s *ServiceSuite) TestUpdatePointsTransferSkipsCounters() {
	players := s.addPlayers("Alice")

	updated, err := s.service.UpdatePoints(s.ctx, players[0].ID, model.PointKindTransfer, 4)
	s.Require().NoError(err)
	s.Equal(4, updated.Points)
	s.Equal(0, updated.ChallengesCompleted)
	s.Equal(0, updated.DrinksCompleted)
}

func (s *ServiceSuite) TestUpdatePointsFloorsAtZero() {
	players := s.addPlayers("Alice")
	_, _ = s.service.UpdatePoints(s.ctx, players[0].ID, model.PointKindChallenge, 3)

	updated, err := s.service.UpdatePoints(s.ctx, players[0].ID, model.PointKindTransfer, -10)
	s.Require().NoError(err)
	s.Equal(0, updated.Points)
}

func (s *ServiceSuite) TestUpdatePointsUnknownPlayer() {
	_, err := s.service.UpdatePoints(s.ctx, "nonexistent", model.PointKindChallenge, 1)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// RemovePlayer tests

func (s *ServiceSuite) TestRemovePlayerRedistributesEvenly() {
	players := s.addPlayers("Alice", "Bob", "Carol", "Dave")
	_, _ = s.service.UpdatePoints(s.ctx, players[0].ID, model.PointKindChallenge, 10)

	err := s.service.RemovePlayer(s.ctx, players[0].ID)
	s.Require().NoError(err)

	// 10 points over 3 remaining players: 3 each, 1 lost to rounding
	remaining, _ := s.service.ListPlayers(s.ctx)
	s.Require().Len(remaining, 3)
	total := 0
	for _, p := range remaining {
		s.Equal(3, p.Points)
		s.Equal(0, p.ChallengesCompleted)
		total += p.Points
	}
	s.Equal(9, total)
}

func (s *ServiceSuite) TestRemoveActivePlayerActivatesNext() {
	players := s.addPlayers("Alice", "Bob", "Carol")

	err := s.service.RemovePlayer(s.ctx, players[0].ID)
	s.Require().NoError(err)

	current, err := s.service.CurrentPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(players[1].ID, current.ID)
}

func (s *ServiceSuite) TestRemoveLastInOrderWrapsActivation() {
	players := s.addPlayers("Alice", "Bob", "Carol")
	_, _ = s.service.SetNextPlayer(s.ctx)
	_, _ = s.service.SetNextPlayer(s.ctx)

	err := s.service.RemovePlayer(s.ctx, players[2].ID)
	s.Require().NoError(err)

	current, err := s.service.CurrentPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(players[0].ID, current.ID)
}

func (s *ServiceSuite) TestRemoveInactivePlayerKeepsActive() {
	players := s.addPlayers("Alice", "Bob", "Carol")

	err := s.service.RemovePlayer(s.ctx, players[1].ID)
	s.Require().NoError(err)

	current, err := s.service.CurrentPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(players[0].ID, current.ID)
}

func (s *ServiceSuite) TestRemoveOnlyPlayerClearsCurrent() {
	players := s.addPlayers("Alice")

	err := s.service.RemovePlayer(s.ctx, players[0].ID)
	s.Require().NoError(err)

	settings, _ := s.service.Settings(s.ctx)
	s.Empty(settings.CurrentPlayerID)
}

func (s *ServiceSuite) TestRemoveUnknownPlayer() {
	s.addPlayers("Alice")
	err := s.service.RemovePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestRemoveAllPlayers() {
	s.addPlayers("Alice", "Bob")

	err := s.service.RemoveAllPlayers(s.ctx)
	s.Require().NoError(err)

	players, _ := s.service.ListPlayers(s.ctx)
	s.Empty(players)

	settings, _ := s.service.Settings(s.ctx)
	s.Empty(settings.CurrentPlayerID)
}

// ResetPoints tests

func (s *ServiceSuite) TestResetPointsZeroesEverything() {
	players := s.addPlayers("Alice", "Bob")
	_, _ = s.service.UpdatePoints(s.ctx, players[0].ID, model.PointKindChallenge, 7)
	_, _ = s.service.UpdatePoints(s.ctx, players[1].ID, model.PointKindDrink, 4)

	err := s.service.ResetPoints(s.ctx)
	s.Require().NoError(err)

	listed, _ := s.service.ListPlayers(s.ctx)
	for _, p := range listed {
		s.Equal(0, p.Points)
		s.Equal(0, p.ChallengesCompleted)
		s.Equal(0, p.DrinksCompleted)
	}
	// Rotation survives the reset
	s.True(listed[0].IsActive)
}

// Settings tests

func (s *ServiceSuite) TestSettingsDefaults() {
	settings, err := s.service.Settings(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.DefaultMaxPoints, settings.MaxPoints)
}

func (s *ServiceSuite) TestUpdateSettingsSucceeds() {
	settings, err := s.service.UpdateSettings(s.ctx, 100)
	s.Require().NoError(err)
	s.Equal(100, settings.MaxPoints)

	stored, _ := s.service.Settings(s.ctx)
	s.Equal(100, stored.MaxPoints)
}

func (s *ServiceSuite) TestUpdateSettingsValidatesBounds() {
	_, err := s.service.UpdateSettings(s.ctx, model.MinMaxPoints-1)
	s.ErrorIs(err, model.ErrInvalidMaxPoints)

	_, err = s.service.UpdateSettings(s.ctx, model.MaxMaxPoints+1)
	s.ErrorIs(err, model.ErrInvalidMaxPoints)

	_, err = s.service.UpdateSettings(s.ctx, model.MinMaxPoints)
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdateSettingsKeepsCurrentPlayer() {
	players := s.addPlayers("Alice")

	settings, err := s.service.UpdateSettings(s.ctx, 200)
	s.Require().NoError(err)
	s.Equal(players[0].ID, settings.CurrentPlayerID)
}
