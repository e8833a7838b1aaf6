package leaderboard

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/dmorneau/sabrpage/internal/models"
)

const searchThreshold = 0.7

// FindPlayer resolves a possibly-misspelled name to the closest player by
// normalized Levenshtein similarity. The second return is false when
// nothing clears the similarity threshold.
func FindPlayer(players []models.Player, name string) (models.Player, bool) {
	var best models.Player
	bestScore := -1.0

	for _, p := range players {
		fullName := strings.ToLower(p.Name)
		distance := fuzzy.LevenshteinDistance(strings.ToLower(name), fullName)
		maxLen := float64(max(len(name), len(fullName)))
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/maxLen

		if similarity > searchThreshold && similarity > bestScore {
			bestScore = similarity
			best = p
		}
	}

	return best, bestScore >= 0
}
