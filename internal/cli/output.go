package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rmaffei/partygames-go/internal/api/response"
)

// Output handles formatting and printing of command results
type Output struct {
	format string
}

// NewOutput creates an Output for the given format ("text" or "json")
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print renders a result in the configured format
func (o *Output) Print(v any) error {
	if o.format == "json" {
		return o.printJSON(v)
	}
	return o.printText(v)
}

// PrintError writes an error to stderr
func (o *Output) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintMessage writes a plain message, skipped in json mode
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		return
	}
	fmt.Println(msg)
}

func (o *Output) printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (o *Output) printText(v any) error {
	switch t := v.(type) {
	case response.Player:
		printPlayer(t)
	case []response.Player:
		if len(t) == 0 {
			fmt.Println("No players.")
			return nil
		}
		for _, p := range t {
			printPlayer(p)
		}
	case response.Settings:
		fmt.Printf("Max points: %d\n", t.MaxPoints)
		if t.CurrentPlayerID != nil {
			fmt.Printf("Current player: %s\n", *t.CurrentPlayerID)
		}
	case response.Session:
		printSession(t)
	case response.AdvanceResult:
		if t.AwardedPlayer != nil {
			fmt.Printf("%s earned %d point(s) (total %d)\n",
				t.AwardedPlayer.Name, t.PointsAwarded, t.AwardedPlayer.Points)
		}
		if t.Finished {
			fmt.Println("Session finished!")
		} else if t.NextPlayer != nil {
			fmt.Printf("Next up: %s\n", t.NextPlayer.Name)
		}
	case response.SessionSummary:
		fmt.Printf("Winner:      %s (%d points)\n", t.Winner.Name, t.Winner.Points)
		fmt.Printf("Top drinker: %s (%d drinks)\n", t.TopDrinker.Name, t.TopDrinker.DrinksCompleted)
		fmt.Printf("Finished at: %s\n", t.FinishedAt.Format("2006-01-02 15:04:05"))
	case []response.Game:
		for _, g := range t {
			fmt.Printf("%-20s %s\n", g.ID, g.Name)
		}
	case []response.Deck:
		for _, d := range t {
			fmt.Printf("%-10s %s (%d challenges)\n", d.ID, d.Name, d.Challenges)
		}
	case response.Recommendation:
		printRecommendation(t)
	case []response.Recommendation:
		for i, r := range t {
			if i > 0 {
				fmt.Println()
			}
			printRecommendation(r)
		}
	default:
		return o.printJSON(v)
	}
	return nil
}

func printPlayer(p response.Player) {
	marker := " "
	if p.IsActive {
		marker = "*"
	}
	fmt.Printf("%s %-36s %-20s %3d pts (challenges: %d, drinks: %d)\n",
		marker, p.ID, p.Name, p.Points, p.ChallengesCompleted, p.DrinksCompleted)
}

func printSession(s response.Session) {
	fmt.Printf("State: %s\n", s.State)
	fmt.Printf("Decks: %s\n", strings.Join(s.Decks, ", "))
	if s.Challenge != "" {
		fmt.Printf("Challenge (%d pts): %s\n", s.RoundPoints, s.Challenge)
		fmt.Printf("Completed: %t  Drank: %t\n", s.CompletedChallenge, s.HasDrunk)
	}
	if s.Winner != nil {
		fmt.Printf("Winner: %s\n", *s.Winner)
	}
	if s.TopDrinker != nil {
		fmt.Printf("Top drinker: %s\n", *s.TopDrinker)
	}
}

func printRecommendation(r response.Recommendation) {
	fmt.Printf("%s — score %d\n", r.Name, r.MatchScore)
	if len(r.Tags) > 0 {
		fmt.Printf("  tags: %s\n", strings.Join(r.Tags, ", "))
	}
	for _, reason := range r.ReasonsToPlay {
		fmt.Printf("  - %s\n", reason)
	}
}
