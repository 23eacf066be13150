package errors

import (
	"strings"

	"github.com/claylang/clay/internal/token"
)

// SuggestKeyword returns a hint naming the reserved word a mistyped
// identifier most likely meant, or "" when no keyword is close. Ties go to
// the keyword listed first by token.Keywords.
func SuggestKeyword(word string) string {
	if word == "" || token.IsKeyword(word) {
		return ""
	}
	lower := strings.ToLower(word)
	best, bestDist := "", keywordEditLimit(lower)+1
	for _, kw := range token.Keywords() {
		if d := editDistance(lower, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	if best == "" {
		return ""
	}
	return "Did you mean '" + best + "'?"
}

// keywordEditLimit is the number of edits tolerated for a word of this
// length. Keywords are short, so anything past two edits is a new word.
func keywordEditLimit(word string) int {
	if len(word) <= 4 {
		return 1
	}
	return 2
}

// editDistance is the Levenshtein distance between two ASCII words, computed
// over a single rolling row.
func editDistance(a, b string) int {
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			above := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min(above+1, row[j-1]+1, diag+cost)
			diag = above
		}
	}
	return row[len(b)]
}
