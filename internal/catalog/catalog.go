// Package catalog holds the compiled-in game catalog: the playable game
// variants, their static scoring metadata, and the challenge decks.
// The catalog is immutable reference data injected into the services that
// need it, never ambient state.
package catalog

import (
	"github.com/rmaffei/partygames-go/internal/model"
)

// Catalog is an immutable set of games, metadata and challenge decks
type Catalog struct {
	games     []model.Game
	metadata  map[model.GameID]model.GameMetadata
	decks     map[model.DeckID]model.Deck
	deckOrder []model.DeckID
}

// New builds a catalog from explicit data. Deck order follows the slice.
func New(games []model.Game, metadata []model.GameMetadata, decks []model.Deck) *Catalog {
	c := &Catalog{
		games:    make([]model.Game, len(games)),
		metadata: make(map[model.GameID]model.GameMetadata, len(metadata)),
		decks:    make(map[model.DeckID]model.Deck, len(decks)),
	}
	copy(c.games, games)
	for _, m := range metadata {
		c.metadata[m.ID] = m
	}
	for _, d := range decks {
		c.decks[d.ID] = d
		c.deckOrder = append(c.deckOrder, d.ID)
	}
	return c
}

// Games returns the catalog games in catalog order
func (c *Catalog) Games() []model.Game {
	games := make([]model.Game, len(c.games))
	copy(games, c.games)
	return games
}

// Game returns the game with the given id
func (c *Catalog) Game(id model.GameID) (model.Game, bool) {
	for _, g := range c.games {
		if g.ID == id {
			return g, true
		}
	}
	return model.Game{}, false
}

// Metadata returns the raw metadata entry for the game, ok=false on miss.
// Reason generation uses this lookup and short-circuits when it misses.
func (c *Catalog) Metadata(id model.GameID) (model.GameMetadata, bool) {
	m, ok := c.metadata[id]
	return m, ok
}

// MetadataFor returns the metadata for the game, falling back to the
// default record for ids without an explicit entry. Total: never fails,
// so scoring works for every catalog game.
func (c *Catalog) MetadataFor(id model.GameID) model.GameMetadata {
	if m, ok := c.metadata[id]; ok {
		return m
	}
	return DefaultMetadata(id)
}

// DefaultMetadata is the record used for games without an explicit
// metadata entry
func DefaultMetadata(id model.GameID) model.GameMetadata {
	return model.GameMetadata{
		ID:              id,
		Tags:            []string{"casual"},
		MinPlayers:      2,
		MaxPlayers:      6,
		AverageDuration: 15,
		AlcoholLevel:    5,
		SocialLevel:     5,
	}
}

// Decks returns all decks in catalog order
func (c *Catalog) Decks() []model.Deck {
	decks := make([]model.Deck, 0, len(c.deckOrder))
	for _, id := range c.deckOrder {
		decks = append(decks, c.decks[id])
	}
	return decks
}

// Deck returns the deck with the given id
func (c *Catalog) Deck(id model.DeckID) (model.Deck, bool) {
	d, ok := c.decks[id]
	return d, ok
}

// Challenges returns the union of challenges from the given decks, in
// deck-then-index order. Unknown deck ids fail the whole call.
func (c *Catalog) Challenges(ids []model.DeckID) ([]string, error) {
	if len(ids) == 0 {
		return nil, model.ErrNoDecks
	}
	var challenges []string
	for _, id := range ids {
		deck, ok := c.decks[id]
		if !ok {
			return nil, model.ErrDeckNotFound
		}
		challenges = append(challenges, deck.Challenges...)
	}
	return challenges, nil
}
