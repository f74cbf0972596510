// Package social implements the community fabric: profiles, score
// rankings, bulletin boards, friends and the notification inbox. All
// state lives in flat JSON documents under the data directory.
package social

import (
	"errors"
	"time"

	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/store"
)

// Document names under the data directory.
const (
	docUsers         = "users"
	docScores        = "scores"
	docServers       = "servers"
	docNotifications = "notifications"
	docFriends       = "friends"
)

// postsDoc names the per-board post collection.
func postsDoc(boardID string) string { return "posts_" + boardID }

// Sentinel errors. Handlers translate these into localized responses.
var (
	ErrNameRequired     = errors.New("name required")
	ErrUserNotFound     = errors.New("no user")
	ErrBoardExists      = errors.New("board already exists")
	ErrAlreadyFriends   = errors.New("already friends")
	ErrAlreadyRequested = errors.New("already requested")
	ErrPostNotFound     = errors.New("post not found")
)

// Publisher pushes an event to every subscriber of a topic. Board IDs
// and usernames are both topics.
type Publisher interface {
	Publish(topic, event string, data any)
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, any) {}

// Service owns all community state.
type Service struct {
	store *store.Store
	pub   Publisher
}

func New(st *store.Store, pub Publisher) *Service {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &Service{store: st, pub: pub}
}

func now() string { return time.Now().Format(model.TimeLayout) }

// touchUser applies XP and counter deltas, creating the profile if the
// user has never registered.
func (s *Service) touchUser(name string, xp, posts, likes int) {
	users := store.Load(s.store, docUsers, model.Users{})
	u, ok := users[name]
	if !ok {
		u = model.DefaultUser()
	}
	u.XP += xp
	u.Posts += posts
	u.Likes += likes
	users[name] = u
	_ = store.Save(s.store, docUsers, users)
}
