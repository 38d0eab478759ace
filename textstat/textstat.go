// Package textstat computes auxiliary document text metrics: keyword density
// and a Flesch-style readability estimate.
package textstat

import (
	"regexp"
	"sort"
	"strings"
)

var (
	wordRe     = regexp.MustCompile(`[a-zA-Z][a-zA-Z'+.#-]*`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// minKeywordLength excludes short stop-ish tokens from keyword density.
const minKeywordLength = 3

// KeywordDensity returns the topN most frequent words (lowercased, tokens of
// three or more characters). Ties break alphabetically so the selection is
// deterministic.
func KeywordDensity(text string, topN int) map[string]int {
	counts := make(map[string]int)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		w = strings.Trim(w, ".-'")
		if len(w) < minKeywordLength {
			continue
		}
		counts[w]++
	}

	type kv struct {
		word  string
		count int
	}
	ranked := make([]kv, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, kv{w, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	top := make(map[string]int, len(ranked))
	for _, e := range ranked {
		top[e.word] = e.count
	}
	return top
}

// Readability estimates a Flesch reading-ease score from sentence, word, and
// vowel-group counts, clamped into [0, 100]. Resume prose is fragmentary, so
// this is an orientation value, not a typographic measurement.
func Readability(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := len(sentenceRe.FindAllString(text, -1))
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// countSyllables approximates syllables as runs of consecutive vowels.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	inGroup := false
	for _, r := range word {
		if isVowel(r) {
			if !inGroup {
				count++
			}
			inGroup = true
		} else {
			inGroup = false
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
