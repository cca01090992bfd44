package match

import (
	"sort"
	"strings"
)

// MinScore is the similarity a candidate needs to be suggested.
const MinScore = 0.5

// Closest returns up to limit candidates most similar to name, best first.
// Candidates scoring below MinScore are dropped; ties keep alphabetical order.
func Closest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	seen := make(map[string]bool, len(candidates))

	var ranked []scored
	for _, c := range candidates {
		if c == name || seen[c] {
			continue
		}

		seen[c] = true

		score := NormalizedLevenshteinScore(name, c)
		if strings.EqualFold(name, c) {
			score = 1
		}

		if score >= MinScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
