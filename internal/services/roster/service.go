package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rmaffei/partygames-go/internal/dependencies/clock"
	"github.com/rmaffei/partygames-go/internal/model"
	"github.com/rmaffei/partygames-go/internal/storage"
)

// Service manages the player roster: lifecycle, turn rotation, points
// and counters, and the session-wide settings.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new roster Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// AddPlayer creates a player with zeroed points and counters. The first
// player added to an empty roster becomes the active player.
func (s *Service) AddPlayer(ctx context.Context, name string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyName
	}

	existing, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:        model.PlayerID(uuid.New().String()),
		Name:      name,
		IsActive:  len(existing) == 0,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	if player.IsActive {
		if err := s.saveCurrentPlayerID(ctx, player.ID); err != nil {
			return nil, err
		}
	}

	s.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
		slog.Bool("active", player.IsActive),
	)

	return player, nil
}

// GetPlayer retrieves a player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers returns all players in insertion order
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// CurrentPlayer returns the active player
func (s *Service) CurrentPlayer(ctx context.Context) (*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		if p.IsActive {
			return p, nil
		}
	}
	return nil, model.ErrNoPlayers
}

// SetFirstPlayer makes the first player in insertion order the active one
func (s *Service) SetFirstPlayer(ctx context.Context) (*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, model.ErrNoPlayers
	}
	if err := s.activate(ctx, players, 0); err != nil {
		return nil, err
	}
	return players[0], nil
}

// SetNextPlayer rotates the active flag to the next player in insertion
// order, wrapping around to the first
func (s *Service) SetNextPlayer(ctx context.Context) (*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, model.ErrNoPlayers
	}

	current := 0
	for i, p := range players {
		if p.IsActive {
			current = i
			break
		}
	}
	next := (current + 1) % len(players)

	if err := s.activate(ctx, players, next); err != nil {
		return nil, err
	}
	return players[next], nil
}

// UpdatePoints awards points to a player. Challenge and drink kinds also
// increment the matching counter; transfers only move points.
func (s *Service) UpdatePoints(ctx context.Context, id model.PlayerID, kind model.PointKind, points int) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Points += points
	if player.Points < 0 {
		player.Points = 0
	}

	switch kind {
	case model.PointKindChallenge:
		player.ChallengesCompleted++
	case model.PointKindDrink:
		player.DrinksCompleted++
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("points awarded",
		slog.String("player_id", string(id)),
		slog.String("kind", string(kind)),
		slog.Int("points", points),
		slog.Int("total", player.Points),
	)

	return player, nil
}

// RemovePlayer deletes a player and redistributes their points evenly
// among the remaining players. The remainder of the integer division is
// dropped. If the removed player was active, the next player in order
// becomes active.
func (s *Service) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}

	removedIdx := -1
	for i, p := range players {
		if p.ID == id {
			removedIdx = i
			break
		}
	}

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	remaining := make([]*model.Player, 0, len(players)-1)
	for _, p := range players {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == 0 {
		return s.saveCurrentPlayerID(ctx, "")
	}

	// Even redistribution, integer division; the remainder is lost
	if share := player.Points / len(remaining); share > 0 {
		for _, p := range remaining {
			if _, err := s.UpdatePoints(ctx, p.ID, model.PointKindTransfer, share); err != nil {
				return err
			}
		}
	}

	if player.IsActive {
		// Re-read after redistribution so the activation write does not
		// clobber freshly awarded points
		fresh, err := s.storage.ListPlayers(ctx)
		if err != nil {
			return err
		}
		next := removedIdx % len(fresh)
		if err := s.activate(ctx, fresh, next); err != nil {
			return err
		}
	}

	s.logger.Info("player removed",
		slog.String("player_id", string(id)),
		slog.Int("redistributed_points", player.Points),
		slog.Int("remaining_players", len(remaining)),
	)

	return nil
}

// RemoveAllPlayers clears the roster
func (s *Service) RemoveAllPlayers(ctx context.Context) error {
	if err := s.storage.DeleteAllPlayers(ctx); err != nil {
		return err
	}
	return s.saveCurrentPlayerID(ctx, "")
}

// ResetPoints zeroes every player's points and counters, keeping the
// roster and turn order intact
func (s *Service) ResetPoints(ctx context.Context) error {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}
	for _, p := range players {
		p.Points = 0
		p.ChallengesCompleted = 0
		p.DrinksCompleted = 0
		if err := s.storage.SavePlayer(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Settings returns the current game settings
func (s *Service) Settings(ctx context.Context) (model.GameSettings, error) {
	return s.storage.GetSettings(ctx)
}

// UpdateSettings sets the point limit for the session
func (s *Service) UpdateSettings(ctx context.Context, maxPoints int) (model.GameSettings, error) {
	if maxPoints < model.MinMaxPoints || maxPoints > model.MaxMaxPoints {
		return model.GameSettings{}, model.ErrInvalidMaxPoints
	}

	settings, err := s.storage.GetSettings(ctx)
	if err != nil {
		return model.GameSettings{}, err
	}

	settings.MaxPoints = maxPoints
	if err := s.storage.SaveSettings(ctx, settings); err != nil {
		return model.GameSettings{}, err
	}

	s.logger.Info("settings updated", slog.Int("max_points", maxPoints))

	return settings, nil
}

// activate marks players[idx] active and clears the flag everywhere else
func (s *Service) activate(ctx context.Context, players []*model.Player, idx int) error {
	for i, p := range players {
		active := i == idx
		if p.IsActive == active {
			continue
		}
		p.IsActive = active
		if err := s.storage.SavePlayer(ctx, p); err != nil {
			return err
		}
	}
	return s.saveCurrentPlayerID(ctx, players[idx].ID)
}

// saveCurrentPlayerID persists the active player reference in settings
func (s *Service) saveCurrentPlayerID(ctx context.Context, id model.PlayerID) error {
	settings, err := s.storage.GetSettings(ctx)
	if err != nil {
		return err
	}
	settings.CurrentPlayerID = id
	return s.storage.SaveSettings(ctx, settings)
}

// Interface for dependency injection
type ServiceInterface interface {
	AddPlayer(ctx context.Context, name string) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	CurrentPlayer(ctx context.Context) (*model.Player, error)
	SetFirstPlayer(ctx context.Context) (*model.Player, error)
	SetNextPlayer(ctx context.Context) (*model.Player, error)
	UpdatePoints(ctx context.Context, id model.PlayerID, kind model.PointKind, points int) (*model.Player, error)
	RemovePlayer(ctx context.Context, id model.PlayerID) error
	RemoveAllPlayers(ctx context.Context) error
	ResetPoints(ctx context.Context) error
	Settings(ctx context.Context) (model.GameSettings, error)
	UpdateSettings(ctx context.Context, maxPoints int) (model.GameSettings, error)
}

var _ ServiceInterface = (*Service)(nil)
