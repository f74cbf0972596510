package grader

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/risusan11/eikenhub/internal/model"
)

// jsonBlock matches from the first { to the last } across newlines.
var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

// normalize extracts a WritingResult from whichever payload variant the
// endpoint produced: function-call arguments, a structured-output body,
// then the first {...} block embedded in free text. Each attempt either
// yields a typed result or falls through to the next.
func normalize(resp Response) (model.WritingResult, bool) {
	if len(resp.FunctionArgs) > 0 {
		if res, ok := decode(resp.FunctionArgs); ok {
			return res, true
		}
	}
	if s := strings.TrimSpace(resp.Structured); s != "" {
		if res, ok := decode([]byte(s)); ok {
			return res, true
		}
	}
	if block := jsonBlock.FindString(resp.Text); block != "" {
		if res, ok := decode([]byte(block)); ok {
			return res, true
		}
	}
	return model.WritingResult{}, false
}

// rawResult tolerates fractional sub-scores and ignores any total field
// the model emitted.
type rawResult struct {
	Content      float64 `json:"content"`
	Organization float64 `json:"organization"`
	Vocabulary   float64 `json:"vocabulary"`
	Grammar      float64 `json:"grammar"`
	CommentEN    string  `json:"comment_en"`
	CommentJA    string  `json:"comment_ja"`
	ModelAnswer  string  `json:"modelAnswer"`
}

func decode(payload []byte) (model.WritingResult, bool) {
	if !bytes.HasPrefix(bytes.TrimSpace(payload), []byte("{")) {
		return model.WritingResult{}, false
	}
	var raw rawResult
	if err := json.Unmarshal(payload, &raw); err != nil {
		return model.WritingResult{}, false
	}

	res := model.WritingResult{
		Content:      int(raw.Content),
		Organization: int(raw.Organization),
		Vocabulary:   int(raw.Vocabulary),
		Grammar:      int(raw.Grammar),
		CommentEN:    raw.CommentEN,
		CommentJA:    raw.CommentJA,
		ModelAnswer:  raw.ModelAnswer,
	}
	// Recomputed server-side; models sometimes emit an inconsistent total.
	res.Total = res.Content + res.Organization + res.Vocabulary + res.Grammar
	if res.ModelAnswer == "" {
		res.ModelAnswer = "N/A"
	}
	return res, true
}
