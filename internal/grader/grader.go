// Package grader builds an essay grading prompt, calls a generative
// endpoint exactly once, and normalizes whatever payload shape comes
// back into a WritingResult. Grading never returns an error: every
// failure mode resolves to an all-zero bilingual fallback result.
package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/risusan11/eikenhub/internal/i18n"
	"github.com/risusan11/eikenhub/internal/metrics"
	"github.com/risusan11/eikenhub/internal/model"
)

// Backend produces a raw model response for a grading prompt.
type Backend interface {
	Complete(ctx context.Context, prompt string) (Response, error)
	Name() string
}

// Response carries the loosely typed payload variants a generation
// endpoint may return. The response schema is never assumed statically;
// normalize tries each variant in order.
type Response struct {
	FunctionArgs json.RawMessage // function-call style argument payload
	Structured   string          // structured-output body
	Text         string          // free-form text
}

// Service grades essays through a Backend with a bounded timeout.
type Service struct {
	backend Backend
	timeout time.Duration
}

func New(backend Backend, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{backend: backend, timeout: timeout}
}

// targetWords maps a level to the approximate model-answer length the
// prompt asks for. Unlisted levels fall back to 30.
var targetWords = map[model.Level]int{
	model.Level5:    20,
	model.Level4:    25,
	model.Level3:    30,
	model.LevelPre2: 40,
	model.Level2:    50,
	model.LevelPre1: 60,
	model.Level1:    70,
}

// GradeWriting grades an essay at the given level. An empty or
// whitespace-only essay short-circuits without calling the backend.
func (s *Service) GradeWriting(ctx context.Context, text string, level model.Level) model.WritingResult {
	if strings.TrimSpace(text) == "" {
		metrics.EssayGrades.WithLabelValues("empty").Inc()
		return fallbackResult("GradeNoEssay")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.backend.Complete(ctx, buildPrompt(text, level))
	if err != nil {
		slog.Error("essay grading call failed", "backend", s.backend.Name(), "level", level, "error", err)
		metrics.EssayGrades.WithLabelValues("failed").Inc()
		return fallbackResult("GradeFailed")
	}

	result, ok := normalize(resp)
	if !ok {
		slog.Warn("essay grading payload unusable", "backend", s.backend.Name(), "level", level)
		metrics.EssayGrades.WithLabelValues("incomplete").Inc()
		return fallbackResult("GradeIncomplete")
	}

	metrics.EssayGrades.WithLabelValues("graded").Inc()
	return result
}

func fallbackResult(msgID string) model.WritingResult {
	en, ja := i18n.Pair(msgID)
	return model.WritingResult{CommentEN: en, CommentJA: ja, ModelAnswer: "N/A"}
}

func buildPrompt(text string, level model.Level) string {
	target, ok := targetWords[level]
	if !ok {
		target = 30
	}

	var sb strings.Builder
	sb.WriteString("You are an official EIKEN writing examiner.\n")
	sb.WriteString("Return JSON ONLY.\n\n")
	fmt.Fprintf(&sb, "modelAnswer must be about %d words.\n\n", target)
	sb.WriteString("{\n")
	sb.WriteString("  \"content\": number,\n")
	sb.WriteString("  \"organization\": number,\n")
	sb.WriteString("  \"vocabulary\": number,\n")
	sb.WriteString("  \"grammar\": number,\n")
	sb.WriteString("  \"comment_en\": \"string\",\n")
	sb.WriteString("  \"comment_ja\": \"string\",\n")
	sb.WriteString("  \"modelAnswer\": \"string\"\n")
	sb.WriteString("}\n\n")
	sb.WriteString("Essay:\n")
	sb.WriteString(text)
	return sb.String()
}
