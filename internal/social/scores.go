package social

import (
	"sort"

	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/store"
)

// SaveScore records one test attempt. A later attempt for the same
// (user, level) pair overwrites the earlier one.
func (s *Service) SaveScore(name string, level model.Level, rec model.ScoreRecord) error {
	if name == "" {
		return ErrUserNotFound
	}
	if rec.Time == "" {
		rec.Time = now()
	}
	scores := store.Load(s.store, docScores, model.Scores{})
	if scores[name] == nil {
		scores[name] = make(map[model.Level]model.ScoreRecord)
	}
	scores[name][level] = rec
	return store.Save(s.store, docScores, scores)
}

// ListScores flattens every stored attempt into ranking rows sorted by
// score, best first.
func (s *Service) ListScores() []model.ScoreEntry {
	scores := store.Load(s.store, docScores, model.Scores{})
	entries := make([]model.ScoreEntry, 0, len(scores))
	for name, byLevel := range scores {
		for level, rec := range byLevel {
			entries = append(entries, model.ScoreEntry{
				Name:    name,
				Level:   level,
				Score:   rec.Score,
				Details: rec.Details,
				Date:    rec.Time,
			})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}
