package knowledge

import (
	"strings"
)

// MatchThreshold is the similarity score an entry must exceed to be accepted.
const MatchThreshold = 0.7

// Match scans the table in order and returns the first entry whose question or
// keywords are similar enough to the input, or ok=false when nothing clears
// the bar. Deterministic and side-effect free.
func (b *Base) Match(text string) (Entry, bool) {
	query := normalize(text)
	if query == "" {
		return Entry{}, false
	}

	for _, category := range b.categories {
		for _, entry := range category.Entries {
			if b.accepts(query, entry) {
				return entry, true
			}
		}
	}
	return Entry{}, false
}

func (b *Base) accepts(query string, entry Entry) bool {
	question := normalize(entry.Question)

	score := similarity(query, question)
	for _, keyword := range entry.Keywords {
		if s := similarity(query, normalize(keyword)); s > score {
			score = s
		}
	}

	return score > MatchThreshold || strings.Contains(query, question)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// similarity is token-overlap Jaccard over whitespace-split words, in [0,1].
func similarity(a, b string) float64 {
	wordsA := tokenSet(a)
	wordsB := tokenSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection

	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[strings.Trim(w, `.,!?'"`)] = struct{}{}
	}
	return set
}
