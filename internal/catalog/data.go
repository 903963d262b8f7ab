package catalog

import "github.com/rmaffei/partygames-go/internal/model"

// DeckClassic is the default deck for challenge draws
const DeckClassic model.DeckID = "classic"

// Default returns the built-in catalog shipped with the binary
func Default() *Catalog {
	return New(defaultGames, defaultMetadata, defaultDecks)
}

var defaultGames = []model.Game{
	{
		ID:          "classic",
		Name:        "Modo Clássico",
		Description: "Desafios por turnos: cumpra o desafio ou beba para ganhar pontos.",
		Route:       "/games/classic",
	},
	{
		ID:          "roulette",
		Name:        "Roleta",
		Description: "Gire a roleta e deixe a sorte decidir quem bebe.",
		Route:       "/games/roulette",
	},
	{
		ID:          "truth-or-dare",
		Name:        "Verdade ou Desafio",
		Description: "Responda com sinceridade ou encare o desafio do grupo.",
		Route:       "/games/truth-or-dare",
	},
	{
		ID:          "never-have-i-ever",
		Name:        "Eu Nunca",
		Description: "Quem já fez, bebe. Descubra os segredos dos amigos.",
		Route:       "/games/never-have-i-ever",
	},
	{
		ID:          "mimic",
		Name:        "Mímica",
		Description: "Represente sem falar e faça o grupo adivinhar.",
		Route:       "/games/mimic",
	},
	{
		ID:          "coin-flip",
		Name:        "Cara ou Coroa",
		Description: "Um palpite, uma moeda, um gole.",
		Route:       "/games/coin-flip",
	},
	{
		ID:          "guess-who",
		Name:        "Quem Sou Eu",
		Description: "Descubra o personagem colado na sua testa.",
		Route:       "/games/guess-who",
	},
}

// guess-who deliberately has no metadata entry: it scores through the
// default record and produces no tailored reasons
var defaultMetadata = []model.GameMetadata{
	{
		ID:              "classic",
		Tags:            []string{"para-grupos", "dinâmico", "estratégia"},
		MinPlayers:      2,
		MaxPlayers:      12,
		AverageDuration: 30,
		AlcoholLevel:    6,
		SocialLevel:     7,
	},
	{
		ID:              "roulette",
		Tags:            []string{"sorte", "rápido", "dinâmico"},
		MinPlayers:      2,
		MaxPlayers:      10,
		AverageDuration: 20,
		AlcoholLevel:    8,
		SocialLevel:     6,
	},
	{
		ID:              "truth-or-dare",
		Tags:            []string{"social", "para-grupos", "conhecimento"},
		MinPlayers:      3,
		MaxPlayers:      15,
		AverageDuration: 25,
		AlcoholLevel:    4,
		SocialLevel:     9,
	},
	{
		ID:              "never-have-i-ever",
		Tags:            []string{"social", "conhecimento", "para-grupos"},
		MinPlayers:      3,
		MaxPlayers:      12,
		AverageDuration: 20,
		AlcoholLevel:    7,
		SocialLevel:     8,
	},
	{
		ID:              "mimic",
		Tags:            []string{"físico", "visual", "dinâmico", "para-grupos"},
		MinPlayers:      4,
		MaxPlayers:      16,
		AverageDuration: 30,
		AlcoholLevel:    3,
		SocialLevel:     8,
	},
	{
		ID:              "coin-flip",
		Tags:            []string{"rápido", "casual", "sorte"},
		MinPlayers:      2,
		MaxPlayers:      8,
		AverageDuration: 5,
		AlcoholLevel:    2,
		SocialLevel:     4,
	},
}

var defaultDecks = []model.Deck{
	{
		ID:   DeckClassic,
		Name: "Clássico",
		Challenges: []string{
			"Imite um animal até alguém adivinhar qual é.",
			"Conte sua história mais vergonhosa.",
			"Fale com sotaque até a sua próxima vez.",
			"Deixe o grupo escolher uma foto sua para postar.",
			"Dance sem música por 30 segundos.",
			"Elogie cada pessoa da roda.",
			"Troque de lugar com a pessoa à sua direita.",
			"Mande uma mensagem de voz cantando para o terceiro contato.",
			"Fique sem usar o celular pelas próximas três rodadas.",
			"Conte uma piada; se ninguém rir, beba.",
		},
	},
	{
		ID:   "party",
		Name: "Festa",
		Challenges: []string{
			"Proponha um brinde dramático.",
			"Faça uma pose de estátua até a próxima rodada.",
			"Invente um apelido para cada jogador.",
			"Cante o refrão da última música que ouviu.",
			"Deixe o grupo mudar seu papel de parede do celular.",
			"Fale apenas sussurrando até sua próxima vez.",
		},
	},
	{
		ID:   "hot",
		Name: "Picante",
		Challenges: []string{
			"Revele seu crush mais inesperado.",
			"Mostre a última curtida nas suas redes.",
			"Conte a pior cantada que já usou.",
			"Deixe alguém enviar uma mensagem do seu celular.",
			"Responda uma pergunta do grupo sem mentir.",
		},
	},
}
