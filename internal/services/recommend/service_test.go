package recommend

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rmaffei/partygames-go/internal/catalog"
	"github.com/rmaffei/partygames-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(catalog.Default())
}

// MatchScore tests

func (s *ServiceSuite) TestMatchScoreAlcoholAffinityWithDrinkers() {
	// Two alcoholic drinks: ideal level is 5, roulette sits at 8
	profile := model.UserProfile{FavoriteDrinks: []string{"cerveja", "vinho"}}
	meta := catalog.Default().MetadataFor("roulette")

	s.Equal(58, s.service.MatchScore(meta, profile))
}

func (s *ServiceSuite) TestMatchScoreAlcoholPenaltyWithoutDrinkers() {
	// No alcoholic drinks: low-alcohol games score best
	profile := model.UserProfile{FavoriteDrinks: []string{"água"}}
	meta := catalog.Default().MetadataFor("coin-flip")

	s.Equal(66, s.service.MatchScore(meta, profile))
}

func (s *ServiceSuite) TestMatchScoreStacksNetworkAndGenderTerms() {
	profile := model.UserProfile{Gender: "homem", FavoriteSocialNetwork: "X"}
	meta := catalog.Default().MetadataFor("classic")

	// 50 + (20-12) alcohol, +15 estratégia via X, +5 estratégia and
	// +5 alcohol>5 via gender
	s.Equal(83, s.service.MatchScore(meta, profile))
}

func (s *ServiceSuite) TestMatchScoreIgnoresUnknownNetworkAndGender() {
	meta := catalog.Default().MetadataFor("classic")
	base := s.service.MatchScore(meta, model.UserProfile{})
	other := s.service.MatchScore(meta, model.UserProfile{
		Gender:                "outro",
		FavoriteSocialNetwork: "orkut",
	})
	s.Equal(base, other)
}

func (s *ServiceSuite) TestMatchScoreClampsAt100() {
	meta := model.GameMetadata{
		ID:           "synthetic",
		Tags:         []string{"estratégia", "físico", "para-grupos"},
		AlcoholLevel: 10,
		SocialLevel:  9,
	}
	profile := model.UserProfile{
		Gender:                "homem",
		FavoriteSocialNetwork: "facebook",
		FavoriteDrinks:        alcoholicDrinks,
	}

	s.Equal(100, s.service.MatchScore(meta, profile))
}

func (s *ServiceSuite) TestMatchScoreStaysInRange() {
	profiles := []model.UserProfile{
		{},
		{Gender: "homem"},
		{Gender: "mulher", FavoriteSocialNetwork: "instagram"},
		{FavoriteSocialNetwork: "tiktok", FavoriteDrinks: []string{"vodka"}},
		{FavoriteDrinks: []string{"água", "suco"}},
		{Gender: "homem", FavoriteSocialNetwork: "facebook", FavoriteDrinks: alcoholicDrinks},
	}

	for _, profile := range profiles {
		for _, rec := range s.service.GenerateRecommendations(profile) {
			s.GreaterOrEqual(rec.MatchScore, 0)
			s.LessOrEqual(rec.MatchScore, 100)
		}
	}
}

// Ranking tests

func (s *ServiceSuite) TestGenerateRecommendationsCoversWholeCatalog() {
	recs := s.service.GenerateRecommendations(model.UserProfile{})
	s.Len(recs, 7)

	seen := make(map[model.GameID]bool)
	for _, rec := range recs {
		seen[rec.ID] = true
	}
	s.Len(seen, 7)
}

func (s *ServiceSuite) TestGenerateRecommendationsSortsDescending() {
	recs := s.service.GenerateRecommendations(model.UserProfile{})
	for i := 1; i < len(recs); i++ {
		s.GreaterOrEqual(recs[i-1].MatchScore, recs[i].MatchScore)
	}
	// With an empty profile the alcohol penalty dominates, so the
	// lightest game leads
	s.Equal(model.GameID("coin-flip"), recs[0].ID)
}

func (s *ServiceSuite) TestGenerateRecommendationsIsDeterministic() {
	profile := model.UserProfile{Gender: "mulher", FavoriteSocialNetwork: "instagram"}
	first := s.service.GenerateRecommendations(profile)
	second := s.service.GenerateRecommendations(profile)
	s.Equal(first, second)
}

func (s *ServiceSuite) TestTopRecommendationsDefaultsToThree() {
	recs := s.service.TopRecommendations(model.UserProfile{}, 0)
	s.Len(recs, DefaultTopCount)

	full := s.service.GenerateRecommendations(model.UserProfile{})
	s.Equal(full[:DefaultTopCount], recs)
}

func (s *ServiceSuite) TestTopRecommendationsCapsAtCatalogSize() {
	recs := s.service.TopRecommendations(model.UserProfile{}, 100)
	s.Len(recs, 7)
}

func (s *ServiceSuite) TestTopRecommendationsReturnsPrefix() {
	full := s.service.GenerateRecommendations(model.UserProfile{})
	s.Equal(full[:2], s.service.TopRecommendations(model.UserProfile{}, 2))
}

func (s *ServiceSuite) TestGameRecommendationFindsGame() {
	profile := model.UserProfile{FavoriteDrinks: []string{"cerveja", "vinho"}}
	rec := s.service.GameRecommendation("roulette", profile)
	s.Require().NotNil(rec)
	s.Equal(58, rec.MatchScore)
	s.Equal("Roleta", rec.Name)
}

func (s *ServiceSuite) TestGameRecommendationUnknownGameIsNil() {
	s.Nil(s.service.GameRecommendation("nonexistent", model.UserProfile{}))
}

// ReasonsToPlay tests

func (s *ServiceSuite) TestReasonsAlwaysAtLeastTwoWithMetadata() {
	profiles := []model.UserProfile{
		{},
		{Gender: "homem", FavoriteSocialNetwork: "tiktok", FavoriteDrinks: []string{"gin"}},
		{Gender: "mulher", FavoriteDrinks: []string{"água"}},
	}

	for _, profile := range profiles {
		for _, game := range catalog.Default().Games() {
			if _, ok := catalog.Default().Metadata(game.ID); !ok {
				continue
			}
			reasons := s.service.ReasonsToPlay(game.ID, profile)
			s.GreaterOrEqual(len(reasons), 2, "game %s", game.ID)
		}
	}
}

func (s *ServiceSuite) TestReasonsEmptyWithoutMetadata() {
	reasons := s.service.ReasonsToPlay("guess-who", model.UserProfile{
		Gender:         "homem",
		FavoriteDrinks: []string{"cerveja"},
	})
	s.NotNil(reasons)
	s.Empty(reasons)
}

func (s *ServiceSuite) TestReasonsReflectDrinkingProfile() {
	reasons := s.service.ReasonsToPlay("roulette", model.UserProfile{
		FavoriteDrinks: []string{"cerveja"},
	})
	s.Contains(reasons, "Combina com quem curte um bom drink: aqui os goles são frequentes.")
}

func (s *ServiceSuite) TestReasonsReflectSoberProfile() {
	reasons := s.service.ReasonsToPlay("mimic", model.UserProfile{
		FavoriteDrinks: []string{"água"},
	})
	s.Contains(reasons, "Dá para aproveitar a festa sem exagerar no álcool.")
}

func (s *ServiceSuite) TestReasonsReflectGenderAndNetwork() {
	reasons := s.service.ReasonsToPlay("mimic", model.UserProfile{
		Gender:                "homem",
		FavoriteSocialNetwork: "instagram",
	})
	s.Contains(reasons, "Desafios físicos para mostrar quem aguenta mais.")
	s.Contains(reasons, "Momentos que rendem stories perfeitos.")
}

func (s *ServiceSuite) TestGenerateRecommendationsPropagatesReasons() {
	recs := s.service.GenerateRecommendations(model.UserProfile{})
	for _, rec := range recs {
		if rec.ID == "guess-who" {
			s.Empty(rec.ReasonsToPlay)
		} else {
			s.GreaterOrEqual(len(rec.ReasonsToPlay), 2)
		}
	}
}
