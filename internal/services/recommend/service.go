// Package recommend ranks catalog games against a user profile.
// Scoring is a pure function of the catalog and the profile: no stored
// state, safe for concurrent use.
package recommend

import (
	"math"
	"sort"

	"github.com/rmaffei/partygames-go/internal/catalog"
	"github.com/rmaffei/partygames-go/internal/model"
)

// DefaultTopCount is the number of entries returned when the caller does
// not ask for a specific count
const DefaultTopCount = 3

// alcoholicDrinks is the fixed set matched (case-sensitive) against the
// profile's favorite drinks
var alcoholicDrinks = []string{"cerveja", "vinho", "vodka", "whisky", "tequila", "gin"}

// Service is the recommendation scoring engine
type Service struct {
	catalog *catalog.Catalog
}

// New creates a recommendation Service over the given catalog
func New(catalog *catalog.Catalog) *Service {
	return &Service{catalog: catalog}
}

// GenerateRecommendations scores every catalog game against the profile
// and returns them sorted by match score descending. The sort is stable:
// ties keep catalog order.
func (s *Service) GenerateRecommendations(profile model.UserProfile) []model.GameRecommendation {
	games := s.catalog.Games()
	recs := make([]model.GameRecommendation, 0, len(games))

	for _, game := range games {
		meta := s.catalog.MetadataFor(game.ID)
		recs = append(recs, model.GameRecommendation{
			ID:            game.ID,
			Name:          game.Name,
			Description:   game.Description,
			Route:         game.Route,
			MatchScore:    s.MatchScore(meta, profile),
			Tags:          meta.Tags,
			ReasonsToPlay: s.ReasonsToPlay(game.ID, profile),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	return recs
}

// TopRecommendations returns the first count entries of the full ranking.
// A count of zero or less falls back to DefaultTopCount.
func (s *Service) TopRecommendations(profile model.UserProfile, count int) []model.GameRecommendation {
	if count <= 0 {
		count = DefaultTopCount
	}
	recs := s.GenerateRecommendations(profile)
	if count > len(recs) {
		count = len(recs)
	}
	return recs[:count]
}

// GameRecommendation returns the entry for a single game, or nil when the
// id is not in the catalog
func (s *Service) GameRecommendation(id model.GameID, profile model.UserProfile) *model.GameRecommendation {
	recs := s.GenerateRecommendations(profile)
	for i := range recs {
		if recs[i].ID == id {
			return &recs[i]
		}
	}
	return nil
}

// MatchScore computes the 0-100 compatibility rating between a game and a
// profile. Deterministic: base 50, an alcohol-affinity term, one
// social-network term, one gender term, then clamp to [0,100] and round
// half away from zero (math.Round).
func (s *Service) MatchScore(meta model.GameMetadata, profile model.UserProfile) int {
	score := 50.0

	// Alcohol affinity
	alcoholic := 0
	for _, d := range alcoholicDrinks {
		if profile.HasDrink(d) {
			alcoholic++
		}
	}
	if alcoholic > 0 {
		ideal := math.Min(float64(alcoholic)*2.5, 10)
		score += 20 - 4*math.Abs(float64(meta.AlcoholLevel)-ideal)
	} else {
		score += 20 - 2*float64(meta.AlcoholLevel)
	}

	// Social network affinity
	switch profile.FavoriteSocialNetwork {
	case "instagram":
		if meta.HasTag("social") {
			score += 10
		}
		if meta.SocialLevel > 7 {
			score += 5
		}
	case "tiktok":
		if meta.HasTag("dinâmico") {
			score += 10
		}
		if meta.HasTag("rápido") {
			score += 10
		}
	case "X":
		if meta.HasTag("estratégia") {
			score += 15
		}
		if meta.HasTag("conhecimento") {
			score += 5
		}
	case "facebook":
		if meta.HasTag("para-grupos") {
			score += 10
		}
		if meta.SocialLevel > 6 {
			score += 10
		}
	}

	// Gender affinity
	switch profile.Gender {
	case "homem":
		if meta.HasTag("estratégia") {
			score += 5
		}
		if meta.HasTag("físico") {
			score += 5
		}
		if meta.AlcoholLevel > 5 {
			score += 5
		}
	case "mulher":
		if meta.HasTag("social") {
			score += 7
		}
		if meta.HasTag("conhecimento") {
			score += 5
		}
		if meta.SocialLevel > 7 {
			score += 5
		}
	}

	return int(math.Round(math.Min(100, math.Max(0, score))))
}

// ReasonsToPlay builds the human-readable justifications for a game.
// Games without a metadata entry get an empty list; every other game gets
// at least two reasons. Unlike scoring, this looks the metadata up
// directly and does not fall back to the default record.
func (s *Service) ReasonsToPlay(id model.GameID, profile model.UserProfile) []string {
	meta, ok := s.catalog.Metadata(id)
	if !ok {
		return []string{}
	}

	reasons := []string{}

	switch profile.Gender {
	case "homem":
		if meta.HasTag("físico") {
			reasons = append(reasons, "Desafios físicos para mostrar quem aguenta mais.")
		}
	case "mulher":
		if meta.HasTag("social") {
			reasons = append(reasons, "Ótimo para socializar e conhecer melhor a galera.")
		}
	}

	switch profile.FavoriteSocialNetwork {
	case "instagram":
		if meta.HasTag("visual") {
			reasons = append(reasons, "Momentos que rendem stories perfeitos.")
		}
	case "tiktok":
		if meta.HasTag("dinâmico") {
			reasons = append(reasons, "Ritmo acelerado, no estilo dos seus vídeos favoritos.")
		}
	}

	likesAlcohol := false
	for _, d := range alcoholicDrinks {
		if profile.HasDrink(d) {
			likesAlcohol = true
			break
		}
	}
	if likesAlcohol && meta.AlcoholLevel > 5 {
		reasons = append(reasons, "Combina com quem curte um bom drink: aqui os goles são frequentes.")
	}
	if profile.HasDrink("água") && meta.AlcoholLevel < 5 {
		reasons = append(reasons, "Dá para aproveitar a festa sem exagerar no álcool.")
	}

	// Generic fallbacks keyed on tags; several may apply
	if len(reasons) < 2 {
		if meta.HasTag("para-grupos") {
			reasons = append(reasons, "Funciona muito bem em grupos grandes.")
		}
		if meta.HasTag("rápido") {
			reasons = append(reasons, "Partidas rápidas, perfeitas para animar a festa.")
		}
		if meta.HasTag("casual") {
			reasons = append(reasons, "Regras simples: qualquer um entra na rodada.")
		}
		if meta.HasTag("estratégia") {
			reasons = append(reasons, "Um toque de estratégia deixa a disputa mais interessante.")
		}
	}

	// Unconditional fillers guarantee at least two reasons
	if len(reasons) < 2 {
		reasons = append(reasons,
			"Diversão garantida para a sua festa.",
			"Fácil de começar, difícil de parar.",
		)
	}

	return reasons
}

// Interface for dependency injection
type ServiceInterface interface {
	GenerateRecommendations(profile model.UserProfile) []model.GameRecommendation
	TopRecommendations(profile model.UserProfile, count int) []model.GameRecommendation
	GameRecommendation(id model.GameID, profile model.UserProfile) *model.GameRecommendation
	MatchScore(meta model.GameMetadata, profile model.UserProfile) int
	ReasonsToPlay(id model.GameID, profile model.UserProfile) []string
}

var _ ServiceInterface = (*Service)(nil)
