package social

import (
	"github.com/risusan11/eikenhub/internal/i18n"
	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/store"
)

// Friends returns the user's side of the friend graph with non-nil
// slices.
func (s *Service) Friends(user string) model.FriendRecord {
	doc := store.Load(s.store, docFriends, model.Friends{})
	rec := doc[user]
	if rec.Friends == nil {
		rec.Friends = []string{}
	}
	if rec.Requests == nil {
		rec.Requests = []string{}
	}
	return rec
}

// RequestFriend files a pending request on the target's record and
// notifies them. Repeat requests and requests to existing friends are
// rejected.
func (s *Service) RequestFriend(from, to string) error {
	if from == "" || to == "" || from == to {
		return ErrNameRequired
	}
	doc := store.Load(s.store, docFriends, model.Friends{})
	rec := doc[to]
	if contains(rec.Friends, from) {
		return ErrAlreadyFriends
	}
	if contains(rec.Requests, from) {
		return ErrAlreadyRequested
	}
	rec.Requests = append(rec.Requests, from)
	doc[to] = rec
	if err := store.Save(s.store, docFriends, doc); err != nil {
		return err
	}
	s.Notify(to, "friend", from, i18n.Td("FriendRequestNotice", map[string]any{"From": from}))
	return nil
}

// AcceptFriend makes the friendship symmetric and clears the pending
// request on both sides. Accepting twice is a no-op.
func (s *Service) AcceptFriend(user, from string) error {
	if user == "" || from == "" {
		return ErrNameRequired
	}
	doc := store.Load(s.store, docFriends, model.Friends{})

	rec := doc[user]
	rec.Requests = remove(rec.Requests, from)
	if !contains(rec.Friends, from) {
		rec.Friends = append(rec.Friends, from)
	}
	doc[user] = rec

	other := doc[from]
	other.Requests = remove(other.Requests, user)
	if !contains(other.Friends, user) {
		other.Friends = append(other.Friends, user)
	}
	doc[from] = other

	return store.Save(s.store, docFriends, doc)
}

// DenyFriend drops the pending request without notifying the sender.
func (s *Service) DenyFriend(user, from string) error {
	if user == "" || from == "" {
		return ErrNameRequired
	}
	doc := store.Load(s.store, docFriends, model.Friends{})
	rec := doc[user]
	rec.Requests = remove(rec.Requests, from)
	doc[user] = rec
	return store.Save(s.store, docFriends, doc)
}

// RemoveFriend severs the friendship on both sides.
func (s *Service) RemoveFriend(user, other string) error {
	if user == "" || other == "" {
		return ErrNameRequired
	}
	doc := store.Load(s.store, docFriends, model.Friends{})

	rec := doc[user]
	rec.Friends = remove(rec.Friends, other)
	doc[user] = rec

	or := doc[other]
	or.Friends = remove(or.Friends, user)
	doc[other] = or

	return store.Save(s.store, docFriends, doc)
}
