package handler

import (
	"net/http"
	"strings"

	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/scoring"
)

func (h *Handler) handleSaveScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User    string         `json:"user"`
		Level   string         `json:"level"`
		Score   int            `json:"score"`
		Words   int            `json:"words"`
		Details map[string]int `json:"details"`
		Time    string         `json:"time"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.User == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no user"})
		return
	}
	level, ok := model.ParseLevel(req.Level)
	if !ok {
		fail(w, http.StatusBadRequest, "unknown level: "+req.Level)
		return
	}

	rec := model.ScoreRecord{Score: req.Score, Words: req.Words, Details: req.Details, Time: req.Time}
	if err := h.social.SaveScore(req.User, level, rec); err != nil {
		fail(w, http.StatusInternalServerError, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) handleScores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.social.ListScores())
}

// handleSubmitTest grades the answer sheet server-side, grades the
// essay when the level has a writing section, and records the combined
// score when a name is supplied.
func (h *Handler) handleSubmitTest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User    string            `json:"user"`
		Level   string            `json:"level"`
		Answers map[string]string `json:"answers"`
		Essay   string            `json:"essay"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "message": err.Error()})
		return
	}
	level, ok := model.ParseLevel(req.Level)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "message": "unknown level: " + req.Level})
		return
	}

	res, err := scoring.Grade(level, req.Answers)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "message": err.Error()})
		return
	}

	resp := map[string]any{"ok": true, "score": res.Score, "total": res.Total}
	rec := model.ScoreRecord{
		Score:   res.Score,
		Details: map[string]int{"correct": res.Score, "total": res.Total},
	}

	if scoring.IsEssayLevel(level) {
		writing := h.grader.GradeWriting(r.Context(), req.Essay, level)
		rec.Score = res.Score + writing.Total
		rec.Words = len(strings.Fields(req.Essay))
		rec.Details = map[string]int{"readingListening": res.Score, "writing": writing.Total}
		resp["score"] = rec.Score
		resp["total"] = res.Total + 16
		resp["writing"] = writing
	}

	if req.User != "" {
		if err := h.social.SaveScore(req.User, level, rec); err != nil {
			writeJSON(w, http.StatusOK, map[string]any{"ok": false, "message": localizeErr(err)})
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGradeWriting grades a single essay. The response is always 200:
// grading failures surface as all-zero fallback results.
func (h *Handler) handleGradeWriting(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string `json:"text"`
		Level string `json:"level"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.grader.GradeWriting(r.Context(), req.Text, model.Level(req.Level)))
}
