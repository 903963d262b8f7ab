package session

import (
	"context"
	"log/slog"
	"sort"

	"github.com/rmaffei/partygames-go/internal/catalog"
	"github.com/rmaffei/partygames-go/internal/dependencies/clock"
	"github.com/rmaffei/partygames-go/internal/dependencies/random"
	"github.com/rmaffei/partygames-go/internal/model"
	"github.com/rmaffei/partygames-go/internal/services/roster"
	"github.com/rmaffei/partygames-go/internal/storage"
)

// Controller manages the turn-based challenge state machine
type Controller struct {
	storage storage.Storage
	roster  roster.ServiceInterface
	catalog *catalog.Catalog
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	roster roster.ServiceInterface,
	catalog *catalog.Catalog,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		roster:  roster,
		catalog: catalog,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// AdvanceResult reports the outcome of a turn advance
type AdvanceResult struct {
	Session       *model.Session
	AwardedPlayer *model.Player
	PointsAwarded int
	Finished      bool
	NextPlayer    *model.Player
}

// Start begins a session over the given decks (default: classic).
// Requires at least one player; the first player in insertion order
// becomes the active one.
func (c *Controller) Start(ctx context.Context, decks []model.DeckID) (*model.Session, error) {
	if existing, err := c.storage.GetSession(ctx); err == nil && existing.State != model.SessionStateFinished {
		return nil, model.ErrSessionInProgress
	}

	if len(decks) == 0 {
		decks = []model.DeckID{catalog.DeckClassic}
	}
	// Validate deck selection up front
	if _, err := c.catalog.Challenges(decks); err != nil {
		return nil, err
	}

	if _, err := c.roster.SetFirstPlayer(ctx); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	session := &model.Session{
		State:     model.SessionStateAwaitingSelection,
		Decks:     decks,
		StartedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session started", slog.Int("decks", len(decks)))

	return session, nil
}

// Get retrieves the current session
func (c *Controller) Get(ctx context.Context) (*model.Session, error) {
	return c.storage.GetSession(ctx)
}

// GenerateChallenge draws a uniformly random challenge from the union of
// the enabled decks and rolls the round point value. Previously shown
// challenges are not tracked, so repeats are possible.
func (c *Controller) GenerateChallenge(ctx context.Context) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.State == model.SessionStateFinished {
		return nil, model.ErrSessionFinished
	}

	challenges, err := c.catalog.Challenges(session.Decks)
	if err != nil {
		return nil, err
	}

	session.Challenge = challenges[c.random.Intn(len(challenges))]
	session.RoundPoints = c.random.IntRange(model.MinRoundPoints, model.MaxRoundPoints)
	session.State = model.SessionStateChallengePresented
	session.CompletedChallenge = false
	session.HasDrunk = false
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// MarkActions records the active player's round actions
func (c *Controller) MarkActions(ctx context.Context, completedChallenge, drank bool) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.State == model.SessionStateFinished {
		return nil, model.ErrSessionFinished
	}
	if session.State == model.SessionStateAwaitingSelection {
		return nil, model.ErrNoChallenge
	}

	session.CompletedChallenge = completedChallenge
	session.HasDrunk = drank
	if session.HasAction() {
		session.State = model.SessionStateRoundResolved
	} else {
		session.State = model.SessionStateChallengePresented
	}
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// AdvanceTurn closes the round: awards the round points once per selected
// action (completing the challenge and drinking are independent awards, so
// a player can earn up to twice the round value), checks the win
// condition after every award, then rotates to the next player and draws
// a new challenge. Advancing without any action selected is rejected.
func (c *Controller) AdvanceTurn(ctx context.Context) (*AdvanceResult, error) {
	session, err := c.storage.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.State == model.SessionStateFinished {
		return nil, model.ErrSessionFinished
	}
	if !session.HasAction() {
		return nil, model.ErrNoActionSelected
	}

	current, err := c.roster.CurrentPlayer(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := c.roster.Settings(ctx)
	if err != nil {
		return nil, err
	}

	result := &AdvanceResult{Session: session}

	kinds := make([]model.PointKind, 0, 2)
	if session.CompletedChallenge {
		kinds = append(kinds, model.PointKindChallenge)
	}
	if session.HasDrunk {
		kinds = append(kinds, model.PointKindDrink)
	}

	for _, kind := range kinds {
		awarded, err := c.roster.UpdatePoints(ctx, current.ID, kind, session.RoundPoints)
		if err != nil {
			return nil, err
		}
		result.AwardedPlayer = awarded
		result.PointsAwarded += session.RoundPoints

		if awarded.Points >= settings.MaxPoints {
			return c.finish(ctx, session, result)
		}
	}

	next, err := c.roster.SetNextPlayer(ctx)
	if err != nil {
		return nil, err
	}
	result.NextPlayer = next

	session.CompletedChallenge = false
	session.HasDrunk = false
	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	if _, err := c.GenerateChallenge(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// finish ends the session, picking the winner and top drinker
func (c *Controller) finish(ctx context.Context, session *model.Session, result *AdvanceResult) (*AdvanceResult, error) {
	players, err := c.roster.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	session.State = model.SessionStateFinished
	session.WinnerID = pickWinner(players)
	session.TopDrinkerID = pickTopDrinker(players)
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	result.Finished = true

	c.logger.Info("session finished",
		slog.String("winner_id", string(session.WinnerID)),
		slog.String("top_drinker_id", string(session.TopDrinkerID)),
	)

	return result, nil
}

// Summary returns the end-of-session report
func (c *Controller) Summary(ctx context.Context) (*model.SessionSummary, error) {
	session, err := c.storage.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.State != model.SessionStateFinished {
		return nil, model.ErrSessionNotFound
	}

	winner, err := c.roster.GetPlayer(ctx, session.WinnerID)
	if err != nil {
		return nil, err
	}
	topDrinker, err := c.roster.GetPlayer(ctx, session.TopDrinkerID)
	if err != nil {
		return nil, err
	}

	return &model.SessionSummary{
		Winner:     *winner,
		TopDrinker: *topDrinker,
		FinishedAt: session.UpdatedAt,
	}, nil
}

// RemovePlayer drops a player mid-session, redistributing their points
// through the roster. An emptied roster ends the session.
func (c *Controller) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	if err := c.roster.RemovePlayer(ctx, id); err != nil {
		return err
	}

	players, err := c.roster.ListPlayers(ctx)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		return c.storage.DeleteSession(ctx)
	}
	return nil
}

// End discards the session
func (c *Controller) End(ctx context.Context) error {
	return c.storage.DeleteSession(ctx)
}

// pickWinner sorts by points descending with a stable sort, so ties
// resolve to the earlier-added player, and returns the leader
func pickWinner(players []*model.Player) model.PlayerID {
	if len(players) == 0 {
		return ""
	}
	sorted := make([]*model.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})
	return sorted[0].ID
}

// pickTopDrinker returns the player with the most drinks, earliest-added
// winning ties
func pickTopDrinker(players []*model.Player) model.PlayerID {
	if len(players) == 0 {
		return ""
	}
	top := players[0]
	for _, p := range players[1:] {
		if p.DrinksCompleted > top.DrinksCompleted {
			top = p
		}
	}
	return top.ID
}

// Interface for dependency injection
type ControllerInterface interface {
	Start(ctx context.Context, decks []model.DeckID) (*model.Session, error)
	Get(ctx context.Context) (*model.Session, error)
	GenerateChallenge(ctx context.Context) (*model.Session, error)
	MarkActions(ctx context.Context, completedChallenge, drank bool) (*model.Session, error)
	AdvanceTurn(ctx context.Context) (*AdvanceResult, error)
	Summary(ctx context.Context) (*model.SessionSummary, error)
	RemovePlayer(ctx context.Context, id model.PlayerID) error
	End(ctx context.Context) error
}

var _ ControllerInterface = (*Controller)(nil)
