// Package search ranks questions against a free-text query. It is stateless
// on purpose: the HTTP layer fetches the candidate questions from the store
// per request and ranks them here, so no record is ever cached in-process.
//
//   - Unicode-aware tokenization (letters and digits, lowercased)
//   - Jaccard similarity between the query token set and each question's
//     title+content token set: score = |Q ∩ D| / |Q ∪ D|
//   - Deterministic ordering: score descending, then question id ascending
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// Result is a ranked question with its similarity score.
type Result struct {
	Question domain.Question `json:"question"`
	Score    float64         `json:"score"`
}

// Rank scores every question against query and returns up to k results with a
// nonzero score, best first. k <= 0 means no cap. An empty or all-symbol
// query yields no results.
func Rank(query string, questions []domain.Question, k int) []Result {
	qTokens := tokenize(query)
	if len(qTokens) == 0 {
		return nil
	}

	results := make([]Result, 0, len(questions))
	for _, q := range questions {
		score := jaccard(qTokens, tokenize(q.Title+" "+q.Content))
		if score > 0 {
			results = append(results, Result{Question: q, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Question.ID < results[j].Question.ID
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results
}

// tokenize splits s into a lowercased set of letter/digit runs.
func tokenize(s string) map[string]struct{} {
	out := make(map[string]struct{})
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			out[b.String()] = struct{}{}
			b.Reset()
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()
	return out
}

// jaccard computes |a ∩ b| / |a ∪ b| for two token sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
