package social

import (
	"github.com/google/uuid"

	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/realtime"
	"github.com/risusan11/eikenhub/internal/store"
)

// Notify appends an inbox entry for the user and pushes it to their
// personal room.
func (s *Service) Notify(user, typ, from, text string) {
	n := model.Notification{
		ID:   uuid.NewString(),
		Type: typ,
		From: from,
		Text: text,
		Time: now(),
	}
	doc := store.Load(s.store, docNotifications, model.Notifications{})
	doc[user] = append(doc[user], n)
	_ = store.Save(s.store, docNotifications, doc)
	s.pub.Publish(user, realtime.EventNotification, n)
}

// Notifications returns the user's inbox in arrival order.
func (s *Service) Notifications(user string) []model.Notification {
	doc := store.Load(s.store, docNotifications, model.Notifications{})
	if doc[user] == nil {
		return []model.Notification{}
	}
	return doc[user]
}
