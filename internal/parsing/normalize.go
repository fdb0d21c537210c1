package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// stopWords filters common English words that add noise to keyword analysis.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"get": true, "has": true, "him": true, "his": true, "how": true,
	"its": true, "may": true, "new": true, "now": true, "see": true,
	"two": true, "who": true, "will": true, "with": true, "have": true,
	"from": true, "they": true, "been": true, "much": true, "some": true,
	"time": true, "very": true, "when": true, "here": true, "just": true,
	"like": true, "make": true, "many": true, "over": true, "such": true,
	"take": true, "than": true, "them": true, "well": true, "were": true,
}

var (
	tokenRe     = regexp.MustCompile(`[a-z]{3,}`)
	acronymRe   = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	dottedRe    = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9]*\.[a-z]{2,}\b`)
	plusPlusRe  = regexp.MustCompile(`\b[A-Za-z]\+\+`)
)

// Tokenize splits text into lowercase alphabetic tokens of length >= 3 with
// stop words removed. It is a pure, total function: empty input yields an
// empty slice.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	words := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// WordCount pairs a token with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequency returns the topN most frequent tokens in text, ties broken
// alphabetically so the result is deterministic.
func WordFrequency(text string, topN int) []WordCount {
	counts := make(map[string]int)
	for _, tok := range Tokenize(text) {
		counts[tok]++
	}

	freq := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		freq = append(freq, WordCount{Word: word, Count: count})
	}
	sort.Slice(freq, func(i, j int) bool {
		if freq[i].Count != freq[j].Count {
			return freq[i].Count > freq[j].Count
		}
		return freq[i].Word < freq[j].Word
	})

	if topN > 0 && len(freq) > topN {
		freq = freq[:topN]
	}
	return freq
}

// ExtractATSKeywords pulls ATS-style terms out of text: uppercase acronyms
// (SQL, AWS), dotted technology names (Node.js, scikit.learn) and ++-suffixed
// language names (C++). Results are deduplicated case-insensitively and
// sorted for determinism.
func ExtractATSKeywords(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var keywords []string
	add := func(matches []string) {
		for _, m := range matches {
			lower := strings.ToLower(m)
			if !seen[lower] {
				seen[lower] = true
				keywords = append(keywords, m)
			}
		}
	}

	add(acronymRe.FindAllString(text, -1))
	add(dottedRe.FindAllString(text, -1))
	add(plusPlusRe.FindAllString(text, -1))

	sort.Strings(keywords)
	return keywords
}
