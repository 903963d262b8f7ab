package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rmaffei/partygames-go/internal/model"
)

type CatalogSuite struct {
	suite.Suite
	catalog *Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupTest() {
	s.catalog = Default()
}

func (s *CatalogSuite) TestGamesReturnsAllInOrder() {
	games := s.catalog.Games()
	s.Len(games, 7)
	s.Equal(model.GameID("classic"), games[0].ID)
	s.Equal(model.GameID("guess-who"), games[6].ID)
}

func (s *CatalogSuite) TestGamesReturnsCopy() {
	games := s.catalog.Games()
	games[0].Name = "mutated"
	s.Equal("Modo Clássico", s.catalog.Games()[0].Name)
}

func (s *CatalogSuite) TestGameLookup() {
	game, ok := s.catalog.Game("roulette")
	s.True(ok)
	s.Equal("Roleta", game.Name)

	_, ok = s.catalog.Game("nonexistent")
	s.False(ok)
}

func (s *CatalogSuite) TestMetadataMissesWithoutEntry() {
	_, ok := s.catalog.Metadata("guess-who")
	s.False(ok)

	meta, ok := s.catalog.Metadata("roulette")
	s.True(ok)
	s.Equal(8, meta.AlcoholLevel)
}

func (s *CatalogSuite) TestMetadataForFallsBackToDefault() {
	meta := s.catalog.MetadataFor("guess-who")
	s.Equal(model.GameID("guess-who"), meta.ID)
	s.Equal([]string{"casual"}, meta.Tags)
	s.Equal(5, meta.AlcoholLevel)
	s.Equal(5, meta.SocialLevel)
}

func (s *CatalogSuite) TestMetadataForUsesExplicitEntry() {
	meta := s.catalog.MetadataFor("coin-flip")
	s.Equal(2, meta.AlcoholLevel)
	s.True(meta.HasTag("rápido"))
}

func (s *CatalogSuite) TestDecksReturnsCatalogOrder() {
	decks := s.catalog.Decks()
	s.Len(decks, 3)
	s.Equal(DeckClassic, decks[0].ID)
	s.Equal(model.DeckID("party"), decks[1].ID)
	s.Equal(model.DeckID("hot"), decks[2].ID)
}

func (s *CatalogSuite) TestDeckLookup() {
	deck, ok := s.catalog.Deck(DeckClassic)
	s.True(ok)
	s.Len(deck.Challenges, 10)

	_, ok = s.catalog.Deck("nonexistent")
	s.False(ok)
}

func (s *CatalogSuite) TestChallengesUnionsDecks() {
	classic, _ := s.catalog.Deck(DeckClassic)
	party, _ := s.catalog.Deck("party")

	challenges, err := s.catalog.Challenges([]model.DeckID{DeckClassic, "party"})
	s.Require().NoError(err)
	s.Len(challenges, len(classic.Challenges)+len(party.Challenges))
	s.Equal(classic.Challenges[0], challenges[0])
	s.Equal(party.Challenges[0], challenges[len(classic.Challenges)])
}

func (s *CatalogSuite) TestChallengesFailsOnUnknownDeck() {
	_, err := s.catalog.Challenges([]model.DeckID{DeckClassic, "nonexistent"})
	s.ErrorIs(err, model.ErrDeckNotFound)
}

func (s *CatalogSuite) TestChallengesFailsOnEmptySelection() {
	_, err := s.catalog.Challenges(nil)
	s.ErrorIs(err, model.ErrNoDecks)
}
