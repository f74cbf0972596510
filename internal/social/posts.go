package social

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/risusan11/eikenhub/internal/i18n"
	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/realtime"
	"github.com/risusan11/eikenhub/internal/store"
)

var (
	slugRE = regexp.MustCompile(`\s+`)

	// mentionRE matches @name for ASCII word characters plus hiragana,
	// katakana and kanji usernames.
	mentionRE = regexp.MustCompile(`@([\wぁ-んァ-ン一-龥]+)`)
)

func defaultBoards() model.Boards {
	return model.Boards{{ID: "general", Name: "メインサーバー"}}
}

// Boards lists every board, seeding the default board on first read.
func (s *Service) Boards() model.Boards {
	boards := store.Load(s.store, docServers, model.Boards{})
	if len(boards) == 0 {
		boards = defaultBoards()
		_ = store.Save(s.store, docServers, boards)
	}
	return boards
}

// CreateBoard adds a board. The ID is the trimmed display name with
// whitespace runs replaced by underscores; duplicate IDs are rejected.
func (s *Service) CreateBoard(name string) (model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Board{}, ErrNameRequired
	}
	id := slugRE.ReplaceAllString(name, "_")

	boards := s.Boards()
	for _, b := range boards {
		if b.ID == id {
			return model.Board{}, ErrBoardExists
		}
	}
	board := model.Board{ID: id, Name: name}
	boards = append(boards, board)
	if err := store.Save(s.store, docServers, boards); err != nil {
		return model.Board{}, err
	}
	if !s.store.Exists(postsDoc(id)) {
		if err := store.Save(s.store, postsDoc(id), model.Posts{}); err != nil {
			return model.Board{}, err
		}
	}
	return board, nil
}

// Posts returns the board's posts, newest first. Reading a board the
// first time materializes its empty document.
func (s *Service) Posts(boardID string) model.Posts {
	posts := store.Load(s.store, postsDoc(boardID), model.Posts{})
	if !s.store.Exists(postsDoc(boardID)) {
		_ = store.Save(s.store, postsDoc(boardID), posts)
	}
	return posts
}

// CreatePost prepends a post, awards the author 5 XP and a post count,
// notifies mentioned users and pushes newPost to the board room.
func (s *Service) CreatePost(boardID, name, text, image string) (model.Post, error) {
	if name == "" || (strings.TrimSpace(text) == "" && image == "") {
		return model.Post{}, ErrNameRequired
	}

	post := model.Post{
		ID:         uuid.NewString(),
		Name:       name,
		Text:       text,
		Image:      image,
		Date:       now(),
		LikedUsers: []string{},
		Replies:    []model.Reply{},
	}

	posts := s.Posts(boardID)
	posts = append(model.Posts{post}, posts...)
	if err := store.Save(s.store, postsDoc(boardID), posts); err != nil {
		return model.Post{}, err
	}

	s.touchUser(name, 5, 1, 0)
	s.notifyMentions(name, text)
	s.pub.Publish(boardID, realtime.EventNewPost, post)
	return post, nil
}

// LikeUpdate is the wire payload for like count changes.
type LikeUpdate struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}

// ApplyLike records a like when diff is 1 and an unlike otherwise.
// Likes are idempotent per user: liking an already-liked post is a
// no-op, so each user appears in likedUsers at most once and the author
// is rewarded 1 XP and a like only the first time. Unliking removes the
// user and decrements the count, never below zero.
func (s *Service) ApplyLike(boardID, postID, user string, diff int) (LikeUpdate, error) {
	posts := s.Posts(boardID)
	idx := -1
	for i := range posts {
		if posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return LikeUpdate{}, ErrPostNotFound
	}

	post := &posts[idx]
	if diff == 1 {
		if !contains(post.LikedUsers, user) {
			post.LikedUsers = append(post.LikedUsers, user)
			post.Likes++
			s.touchUser(post.Name, 1, 0, 1)
		}
	} else if contains(post.LikedUsers, user) {
		post.LikedUsers = remove(post.LikedUsers, user)
		if post.Likes > 0 {
			post.Likes--
		}
	}

	if err := store.Save(s.store, postsDoc(boardID), posts); err != nil {
		return LikeUpdate{}, err
	}
	update := LikeUpdate{ID: post.ID, Likes: post.Likes}
	s.pub.Publish(boardID, realtime.EventLikeUpdate, update)
	return update, nil
}

// ReplyEvent is the wire payload for new replies.
type ReplyEvent struct {
	PostID string      `json:"postId"`
	Reply  model.Reply `json:"reply"`
}

// AddReply appends a reply, awards the author 2 XP and pushes newReply
// to the board room.
func (s *Service) AddReply(boardID, postID, name, text string) (model.Reply, error) {
	if name == "" || strings.TrimSpace(text) == "" {
		return model.Reply{}, ErrNameRequired
	}

	posts := s.Posts(boardID)
	idx := -1
	for i := range posts {
		if posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Reply{}, ErrPostNotFound
	}

	reply := model.Reply{ID: uuid.NewString(), Name: name, Text: text, Date: now()}
	posts[idx].Replies = append(posts[idx].Replies, reply)
	if err := store.Save(s.store, postsDoc(boardID), posts); err != nil {
		return model.Reply{}, err
	}

	s.touchUser(name, 2, 0, 0)
	s.notifyMentions(name, text)
	s.pub.Publish(boardID, realtime.EventNewReply, ReplyEvent{PostID: postID, Reply: reply})
	return reply, nil
}

// DeleteEvent is the wire payload for post and reply deletions.
type DeleteEvent struct {
	ID      string `json:"id"`
	ReplyID string `json:"replyId,omitempty"`
}

// DeletePost removes a post and pushes deletePost to the board room.
func (s *Service) DeletePost(boardID, postID string) error {
	posts := s.Posts(boardID)
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != postID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return ErrPostNotFound
	}
	if err := store.Save(s.store, postsDoc(boardID), kept); err != nil {
		return err
	}
	s.pub.Publish(boardID, realtime.EventDeletePost, DeleteEvent{ID: postID})
	return nil
}

// DeleteReply removes a reply from its parent post.
func (s *Service) DeleteReply(boardID, postID, replyID string) error {
	posts := s.Posts(boardID)
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		replies := posts[i].Replies
		kept := replies[:0]
		for _, r := range replies {
			if r.ID != replyID {
				kept = append(kept, r)
			}
		}
		if len(kept) == len(replies) {
			return ErrPostNotFound
		}
		posts[i].Replies = kept
		if err := store.Save(s.store, postsDoc(boardID), posts); err != nil {
			return err
		}
		s.pub.Publish(boardID, realtime.EventDeleteReply, DeleteEvent{ID: postID, ReplyID: replyID})
		return nil
	}
	return ErrPostNotFound
}

// notifyMentions sends a notification to every registered user
// mentioned as @name, skipping self-mentions and duplicates.
func (s *Service) notifyMentions(from, text string) {
	users := store.Load(s.store, docUsers, model.Users{})
	seen := make(map[string]bool)
	for _, m := range mentionRE.FindAllStringSubmatch(text, -1) {
		target := m[1]
		if target == from || seen[target] {
			continue
		}
		seen[target] = true
		if _, ok := users[target]; !ok {
			continue
		}
		s.Notify(target, "mention", from, i18n.Td("MentionNotice", map[string]any{"From": from, "Text": text}))
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
