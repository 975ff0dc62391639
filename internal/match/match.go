package match

import (
	"strings"
	"unicode"
)

// MinSimilarity is the lowest score Suggest accepts.
const MinSimilarity = 0.6

// NormalizeKey lowercases s and strips the separators _, - and spaces.
func NormalizeKey(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// Levenshtein computes the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep ra the shorter one so the rows stay small.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity scores two keys after normalization.
// 1.0 means identical, 0.0 means completely different.
func Similarity(a, b string) float64 {
	na, nb := NormalizeKey(a), NormalizeKey(b)

	la, lb := len([]rune(na)), len([]rune(nb))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(na, nb))/float64(max(la, lb))
}

// Suggest returns the candidate most similar to want, if any scores at
// least MinSimilarity. An exact match is never suggested. Ties keep the
// earlier candidate.
func Suggest(want string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		if c == want {
			continue
		}

		score := Similarity(want, c)
		if score >= MinSimilarity && score > bestScore {
			best, bestScore = c, score
		}
	}

	return best, best != ""
}
