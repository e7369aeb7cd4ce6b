package entities

import (
	"slices"
	"strings"

	"eduhack/internal/domain"
)

const (
	neutralCompatibility = 0.5
	compatibilityBonus   = 0.1
)

// Compatibility scores how well a team fits a challenge, in [0, 1].
//
// The base is the share of required technologies found among the team's
// skills, compared case-insensitively. Mentor presence, role balance and a
// level matching the difficulty add a bonus each.
func Compatibility(t *Team, c *Challenge) float64 {
	if len(t.Members) == 0 {
		return 0
	}
	required := lowerSet(c.TechnologyList())
	if len(required) == 0 {
		return neutralCompatibility
	}
	skills := lowerSet(t.SkillUnion())
	matches := 0
	for tech := range required {
		if skills[tech] {
			matches++
		}
	}
	score := float64(matches) / float64(len(required))
	if t.HasMentor() {
		score += compatibilityBonus
	}
	if t.IsBalanced() {
		score += compatibilityBonus
	}
	if levelMatchesDifficulty(t.AverageExperience(), c.Difficulty) {
		score += compatibilityBonus
	}
	return min(score, 1.0)
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = true
	}
	return set
}

func levelMatchesDifficulty(level, difficulty string) bool {
	switch level {
	case domain.LevelAdvanced:
		return difficulty == domain.DifficultyAdvanced
	case domain.LevelIntermediate:
		return difficulty == domain.DifficultyIntermediate
	case domain.LevelBeginner:
		return difficulty == domain.DifficultyBasic
	default:
		return false
	}
}

// Compatibility quality buckets.
const (
	QualityExcellent = "excelente"
	QualityGood      = "buena"
	QualityFair      = "regular"
	QualityLow       = "baja"
)

// CompatibilityQuality buckets a score for display.
func CompatibilityQuality(score float64) string {
	switch {
	case score >= 0.8:
		return QualityExcellent
	case score >= 0.6:
		return QualityGood
	case score >= 0.4:
		return QualityFair
	default:
		return QualityLow
	}
}

// Recommendation is a challenge ranked for a team.
type Recommendation struct {
	Challenge *Challenge
	Score     float64
}

// RankChallenges scores the available challenges for the team, best first.
// Ties keep the input order.
func RankChallenges(t *Team, challenges []*Challenge) []Recommendation {
	out := make([]Recommendation, 0, len(challenges))
	for _, c := range challenges {
		if !c.Available() {
			continue
		}
		out = append(out, Recommendation{Challenge: c, Score: Compatibility(t, c)})
	}
	slices.SortStableFunc(out, func(a, b Recommendation) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return out
}
