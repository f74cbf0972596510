// Package scoring grades the objective (closed-form) part of a test by
// exact string match against a per-level answer key.
package scoring

import (
	"fmt"
	"strings"

	"github.com/risusan11/eikenhub/internal/model"
)

// Result is the outcome of objective grading for one submission.
type Result struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Total returns the number of objective questions at a level, or 0 for
// an unknown level.
func Total(level model.Level) int {
	return len(answerKeys[level])
}

// IsEssayLevel reports whether the level's test includes a free-text
// essay graded by the AI grader.
func IsEssayLevel(level model.Level) bool {
	return essayLevels[level]
}

// Grade counts the submitted answers that exactly match the answer key.
// Both sides are trimmed before comparison; case and punctuation are
// compared verbatim. There is no partial credit.
func Grade(level model.Level, answers map[string]string) (Result, error) {
	key, ok := answerKeys[level]
	if !ok {
		return Result{}, fmt.Errorf("unknown level %q", level)
	}

	score := 0
	for id, want := range key {
		if strings.TrimSpace(answers[id]) == strings.TrimSpace(want) {
			score++
		}
	}
	return Result{Score: score, Total: len(key)}, nil
}
