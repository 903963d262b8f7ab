package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rmaffei/partygames-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		Name:      "Alice",
		Points:    5,
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.Points, retrieved.Points)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersKeepsInsertionOrder() {
	for _, id := range []model.PlayerID{"c", "a", "b"} {
		err := s.storage.SavePlayer(s.ctx, &model.Player{ID: id})
		s.Require().NoError(err)
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID("c"), players[0].ID)
	s.Equal(model.PlayerID("a"), players[1].ID)
	s.Equal(model.PlayerID("b"), players[2].ID)
}

func (s *StorageSuite) TestSavePlayerUpdateKeepsPosition() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "a", Name: "Alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "b", Name: "Bob"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "a", Name: "Alicia", Points: 3})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("Alicia", players[0].Name)
	s.Equal(3, players[0].Points)
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "a"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "b"})

	err := s.storage.DeletePlayer(s.ctx, "a")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "a")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, _ := s.storage.ListPlayers(s.ctx)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerID("b"), players[0].ID)
}

func (s *StorageSuite) TestDeletePlayerNotFound() {
	err := s.storage.DeletePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeleteAllPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "a"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "b"})

	err := s.storage.DeleteAllPlayers(s.ctx)
	s.Require().NoError(err)

	players, _ := s.storage.ListPlayers(s.ctx)
	s.Empty(players)
}

// Settings tests

func (s *StorageSuite) TestGetSettingsDefaultsWhenUnset() {
	settings, err := s.storage.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.DefaultMaxPoints, settings.MaxPoints)
	s.Empty(settings.CurrentPlayerID)
}

func (s *StorageSuite) TestSaveAndGetSettings() {
	err := s.storage.SaveSettings(s.ctx, model.GameSettings{
		MaxPoints:       75,
		CurrentPlayerID: "player-1",
	})
	s.Require().NoError(err)

	settings, err := s.storage.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(75, settings.MaxPoints)
	s.Equal(model.PlayerID("player-1"), settings.CurrentPlayerID)
}

// Session tests

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		State:       model.SessionStateChallengePresented,
		Decks:       []model.DeckID{"classic"},
		Challenge:   "Dance sem música por 30 segundos.",
		RoundPoints: 6,
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(session.State, retrieved.State)
	s.Equal(session.Challenge, retrieved.Challenge)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, &model.Session{State: model.SessionStateAwaitingSelection})

	err := s.storage.DeleteSession(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}
