package scoring

import (
	"strings"
	"testing"

	"github.com/risusan11/eikenhub/internal/model"
)

// perfectAnswers returns a submission matching the full answer key.
func perfectAnswers(t *testing.T, level model.Level) map[string]string {
	t.Helper()
	key, ok := answerKeys[level]
	if !ok {
		t.Fatalf("no answer key for level %q", level)
	}
	answers := make(map[string]string, len(key))
	for id, want := range key {
		answers[id] = want
	}
	return answers
}

func TestGradeAllCorrectLevel5(t *testing.T) {
	res, err := Grade(model.Level5, perfectAnswers(t, model.Level5))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 25 || res.Total != 25 {
		t.Errorf("expected 25/25, got %d/%d", res.Score, res.Total)
	}
}

func TestGradeBounds(t *testing.T) {
	for _, level := range model.AllLevels {
		t.Run(string(level), func(t *testing.T) {
			empty, err := Grade(level, nil)
			if err != nil {
				t.Fatalf("Grade with no answers: %v", err)
			}
			if empty.Score != 0 {
				t.Errorf("no answers should score 0, got %d", empty.Score)
			}

			full, err := Grade(level, perfectAnswers(t, level))
			if err != nil {
				t.Fatalf("Grade: %v", err)
			}
			if full.Score != full.Total {
				t.Errorf("perfect submission scored %d/%d", full.Score, full.Total)
			}
		})
	}
}

func TestGradeTrimsBothSides(t *testing.T) {
	answers := map[string]string{"q1": "  play \n"}
	res, err := Grade(model.Level5, answers)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 1 {
		t.Errorf("expected padded answer to match, got score %d", res.Score)
	}
}

func TestGradeCaseSensitive(t *testing.T) {
	answers := map[string]string{"q1": "Play"}
	res, err := Grade(model.Level5, answers)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("case mismatch must not score, got %d", res.Score)
	}
}

func TestGradeUnknownLevel(t *testing.T) {
	if _, err := Grade(model.Level("Risu"), nil); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestTotals(t *testing.T) {
	wants := map[model.Level]int{
		model.Level5:      25,
		model.Level4:      30,
		model.Level3:      24,
		model.LevelPre2:   34,
		model.Level2:      32,
		model.LevelPre1:   34,
		model.Level1:      34,
		model.LevelNaraku: 39,
	}
	for level, want := range wants {
		if got := Total(level); got != want {
			t.Errorf("Total(%s) = %d, want %d", level, got, want)
		}
	}
	if Total(model.Level("bogus")) != 0 {
		t.Error("unknown level should have total 0")
	}
}

func TestIsEssayLevel(t *testing.T) {
	for _, level := range []model.Level{model.Level5, model.Level4} {
		if IsEssayLevel(level) {
			t.Errorf("level %s should be objective-only", level)
		}
	}
	for _, level := range []model.Level{model.Level3, model.LevelPre2, model.Level2, model.LevelPre1, model.Level1, model.LevelNaraku} {
		if !IsEssayLevel(level) {
			t.Errorf("level %s should include an essay", level)
		}
	}
}

func TestKeysHaveNoBlankAnswers(t *testing.T) {
	for level, key := range answerKeys {
		for id, want := range key {
			if strings.TrimSpace(want) == "" {
				t.Errorf("level %s question %s has a blank expected answer", level, id)
			}
		}
	}
}
