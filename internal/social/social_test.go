package social

import (
	"strings"
	"testing"

	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/store"
)

type publishedEvent struct {
	Topic string
	Event string
	Data  any
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(topic, event string, data any) {
	p.events = append(p.events, publishedEvent{topic, event, data})
}

func newTestService(t *testing.T) (*Service, *recordingPublisher) {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	pub := &recordingPublisher{}
	return New(st, pub), pub
}

func TestRegisterCreatesDefaultProfile(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.Register("alice")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if p.Icon != "/icons/default.png" {
		t.Errorf("icon = %q", p.Icon)
	}
	if p.Status != "online" {
		t.Errorf("status = %q, want online", p.Status)
	}
	if p.Level != 1 {
		t.Errorf("level = %d, want 1 at 0 XP", p.Level)
	}

	if _, err := svc.Register(""); err != ErrNameRequired {
		t.Errorf("empty name: err = %v", err)
	}
	if _, err := svc.Register("   \t"); err != ErrNameRequired {
		t.Errorf("whitespace name: err = %v", err)
	}
}

func TestRegisterExistingKeepsXP(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register("alice"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.CreatePost("general", "alice", "hello", ""); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	p, err := svc.Register("alice")
	if err != nil {
		t.Fatalf("Register again: %v", err)
	}
	if p.XP != 5 || p.Posts != 1 {
		t.Errorf("profile after re-register = %+v", p)
	}
}

func TestSaveScoreOverwrites(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.SaveScore("", model.Level3, model.ScoreRecord{Score: 1}); err != ErrUserNotFound {
		t.Errorf("empty user: err = %v", err)
	}

	if err := svc.SaveScore("alice", model.Level3, model.ScoreRecord{Score: 10, Words: 30}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	if err := svc.SaveScore("alice", model.Level3, model.ScoreRecord{Score: 20, Words: 40}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	entries := svc.ListScores()
	if len(entries) != 1 {
		t.Fatalf("expected one entry after overwrite, got %d", len(entries))
	}
	if entries[0].Score != 20 {
		t.Errorf("score = %d, want 20", entries[0].Score)
	}
	if entries[0].Date == "" {
		t.Error("date not stamped")
	}
}

func TestListScoresSortedByScore(t *testing.T) {
	svc, _ := newTestService(t)

	_ = svc.SaveScore("alice", model.Level3, model.ScoreRecord{Score: 10})
	_ = svc.SaveScore("bob", model.Level3, model.ScoreRecord{Score: 30})
	_ = svc.SaveScore("carol", model.Level5, model.ScoreRecord{Score: 20})

	entries := svc.ListScores()
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score < entries[i].Score {
			t.Fatalf("not sorted desc: %v", entries)
		}
	}
	if entries[0].Name != "bob" {
		t.Errorf("top entry = %q", entries[0].Name)
	}
}

func TestBoardsSeedDefault(t *testing.T) {
	svc, _ := newTestService(t)

	boards := svc.Boards()
	if len(boards) != 1 || boards[0].ID != "general" {
		t.Fatalf("boards = %v", boards)
	}
	if boards[0].Name != "メインサーバー" {
		t.Errorf("default board name = %q", boards[0].Name)
	}
}

func TestCreateBoardSlugAndDuplicate(t *testing.T) {
	svc, _ := newTestService(t)

	b, err := svc.CreateBoard("My Study  Room")
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if b.ID != "My_Study_Room" {
		t.Errorf("id = %q", b.ID)
	}
	if b.Name != "My Study  Room" {
		t.Errorf("name = %q", b.Name)
	}

	if _, err := svc.CreateBoard("My Study  Room"); err != ErrBoardExists {
		t.Errorf("duplicate: err = %v", err)
	}
	if _, err := svc.CreateBoard("   "); err != ErrNameRequired {
		t.Errorf("blank: err = %v", err)
	}

	if posts := svc.Posts("My_Study_Room"); len(posts) != 0 {
		t.Errorf("new board posts = %v", posts)
	}
}

func TestCreatePostAwardsXP(t *testing.T) {
	svc, pub := newTestService(t)

	post, err := svc.CreatePost("general", "alice", "hello world", "")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID == "" || post.Date == "" {
		t.Errorf("post not stamped: %+v", post)
	}

	p, _ := svc.Profile("alice")
	if p.XP != 5 || p.Posts != 1 {
		t.Errorf("author stats = xp %d posts %d", p.XP, p.Posts)
	}

	if len(pub.events) == 0 || pub.events[len(pub.events)-1].Event != "newPost" {
		t.Errorf("newPost not published: %v", pub.events)
	}

	posts := svc.Posts("general")
	if len(posts) != 1 || posts[0].ID != post.ID {
		t.Errorf("posts = %v", posts)
	}
}

func TestCreatePostNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)

	first, _ := svc.CreatePost("general", "alice", "first", "")
	second, _ := svc.CreatePost("general", "alice", "second", "")

	posts := svc.Posts("general")
	if len(posts) != 2 {
		t.Fatalf("got %d posts", len(posts))
	}
	if posts[0].ID != second.ID || posts[1].ID != first.ID {
		t.Error("posts not newest first")
	}
}

func TestLikeTwiceCountsOnce(t *testing.T) {
	svc, _ := newTestService(t)

	post, _ := svc.CreatePost("general", "alice", "like me", "")

	up, err := svc.ApplyLike("general", post.ID, "bob", 1)
	if err != nil {
		t.Fatalf("ApplyLike: %v", err)
	}
	if up.Likes != 1 {
		t.Errorf("likes = %d, want 1", up.Likes)
	}

	// A repeat like from the same user is a no-op.
	up, err = svc.ApplyLike("general", post.ID, "bob", 1)
	if err != nil {
		t.Fatalf("ApplyLike: %v", err)
	}
	if up.Likes != 1 {
		t.Errorf("likes after second like = %d, want 1", up.Likes)
	}

	posts := svc.Posts("general")
	var bobLikes int
	for _, u := range posts[0].LikedUsers {
		if u == "bob" {
			bobLikes++
		}
	}
	if bobLikes != 1 {
		t.Errorf("likedUsers contains bob %d times, want exactly 1", bobLikes)
	}

	// Author rewarded only for the first like.
	author, _ := svc.Profile("alice")
	if author.XP != 6 || author.Likes != 1 {
		t.Errorf("author stats after repeat like = xp %d likes %d", author.XP, author.Likes)
	}
}

func TestUnlikeRemovesAndClamps(t *testing.T) {
	svc, _ := newTestService(t)

	post, _ := svc.CreatePost("general", "alice", "like me", "")
	if _, err := svc.ApplyLike("general", post.ID, "bob", 1); err != nil {
		t.Fatalf("ApplyLike: %v", err)
	}

	up, err := svc.ApplyLike("general", post.ID, "bob", -1)
	if err != nil {
		t.Fatalf("ApplyLike: %v", err)
	}
	if up.Likes != 0 {
		t.Errorf("likes after unlike = %d, want 0", up.Likes)
	}

	// Unliking without a recorded like changes nothing.
	up, err = svc.ApplyLike("general", post.ID, "carol", -1)
	if err != nil {
		t.Fatalf("ApplyLike: %v", err)
	}
	if up.Likes != 0 {
		t.Errorf("likes after stray unlike = %d, want 0", up.Likes)
	}

	if _, err := svc.ApplyLike("general", "missing", "bob", 1); err != ErrPostNotFound {
		t.Errorf("missing post: err = %v", err)
	}
}

func TestAddReplyAwardsXP(t *testing.T) {
	svc, pub := newTestService(t)

	post, _ := svc.CreatePost("general", "alice", "question", "")
	reply, err := svc.AddReply("general", post.ID, "bob", "answer")
	if err != nil {
		t.Fatalf("AddReply: %v", err)
	}
	if reply.ID == "" || reply.Name != "bob" {
		t.Errorf("reply = %+v", reply)
	}

	p, _ := svc.Profile("bob")
	if p.XP != 2 {
		t.Errorf("replier xp = %d, want 2", p.XP)
	}

	posts := svc.Posts("general")
	if len(posts[0].Replies) != 1 {
		t.Errorf("replies = %v", posts[0].Replies)
	}

	last := pub.events[len(pub.events)-1]
	if last.Event != "newReply" || last.Topic != "general" {
		t.Errorf("newReply not published: %+v", last)
	}

	if _, err := svc.AddReply("general", "missing", "bob", "x"); err != ErrPostNotFound {
		t.Errorf("missing post: err = %v", err)
	}
}

func TestDeletePostAndReply(t *testing.T) {
	svc, pub := newTestService(t)

	post, _ := svc.CreatePost("general", "alice", "bye", "")
	reply, _ := svc.AddReply("general", post.ID, "bob", "see ya")

	if err := svc.DeleteReply("general", post.ID, reply.ID); err != nil {
		t.Fatalf("DeleteReply: %v", err)
	}
	if err := svc.DeleteReply("general", post.ID, reply.ID); err != ErrPostNotFound {
		t.Errorf("deleting twice: err = %v", err)
	}

	if err := svc.DeletePost("general", post.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if err := svc.DeletePost("general", post.ID); err != ErrPostNotFound {
		t.Errorf("deleting twice: err = %v", err)
	}
	if posts := svc.Posts("general"); len(posts) != 0 {
		t.Errorf("posts = %v", posts)
	}

	last := pub.events[len(pub.events)-1]
	if last.Event != "deletePost" {
		t.Errorf("deletePost not published: %+v", last)
	}
}

func TestMentionNotifiesRegisteredUsersOnly(t *testing.T) {
	svc, pub := newTestService(t)

	_, _ = svc.Register("Alice")
	_, _ = svc.Register("Bob")

	_, err := svc.CreatePost("general", "Bob", "hi @Alice and @Nobody and @Bob", "")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	got := svc.Notifications("Alice")
	if len(got) != 1 {
		t.Fatalf("Alice notifications = %v", got)
	}
	if got[0].Type != "mention" || got[0].From != "Bob" {
		t.Errorf("notification = %+v", got[0])
	}
	if !strings.Contains(got[0].Text, "Bob") {
		t.Errorf("text = %q", got[0].Text)
	}

	// No self-mention notification.
	if n := svc.Notifications("Bob"); len(n) != 0 {
		t.Errorf("Bob notifications = %v", n)
	}
	if n := svc.Notifications("Nobody"); len(n) != 0 {
		t.Errorf("unregistered user notified: %v", n)
	}

	var toAlice int
	for _, ev := range pub.events {
		if ev.Topic == "Alice" && ev.Event == "notification" {
			toAlice++
		}
	}
	if toAlice != 1 {
		t.Errorf("notification events to Alice = %d", toAlice)
	}
}

func TestMentionJapaneseName(t *testing.T) {
	svc, _ := newTestService(t)

	_, _ = svc.Register("たろう")
	_, _ = svc.CreatePost("general", "alice", "こんにちは @たろう", "")

	if got := svc.Notifications("たろう"); len(got) != 1 {
		t.Fatalf("notifications = %v", got)
	}
}

func TestFriendFlow(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.RequestFriend("alice", "alice"); err != ErrNameRequired {
		t.Errorf("self request: err = %v", err)
	}

	if err := svc.RequestFriend("alice", "bob"); err != nil {
		t.Fatalf("RequestFriend: %v", err)
	}
	if err := svc.RequestFriend("alice", "bob"); err != ErrAlreadyRequested {
		t.Errorf("repeat request: err = %v", err)
	}

	rec := svc.Friends("bob")
	if len(rec.Requests) != 1 || rec.Requests[0] != "alice" {
		t.Fatalf("bob requests = %v", rec.Requests)
	}
	if n := svc.Notifications("bob"); len(n) != 1 || n[0].Type != "friend" {
		t.Errorf("bob notifications = %v", n)
	}

	if err := svc.AcceptFriend("bob", "alice"); err != nil {
		t.Fatalf("AcceptFriend: %v", err)
	}
	// Accepting twice is a no-op.
	if err := svc.AcceptFriend("bob", "alice"); err != nil {
		t.Fatalf("AcceptFriend again: %v", err)
	}

	rec = svc.Friends("bob")
	if len(rec.Friends) != 1 || len(rec.Requests) != 0 {
		t.Errorf("bob record = %+v", rec)
	}
	if other := svc.Friends("alice"); len(other.Friends) != 1 || other.Friends[0] != "bob" {
		t.Errorf("alice record = %+v", other)
	}

	if err := svc.RequestFriend("alice", "bob"); err != ErrAlreadyFriends {
		t.Errorf("request to friend: err = %v", err)
	}

	if err := svc.RemoveFriend("alice", "bob"); err != nil {
		t.Fatalf("RemoveFriend: %v", err)
	}
	if rec := svc.Friends("alice"); len(rec.Friends) != 0 {
		t.Errorf("alice friends = %v", rec.Friends)
	}
	if rec := svc.Friends("bob"); len(rec.Friends) != 0 {
		t.Errorf("bob friends = %v", rec.Friends)
	}
}

func TestDenyFriend(t *testing.T) {
	svc, _ := newTestService(t)

	_ = svc.RequestFriend("alice", "bob")
	if err := svc.DenyFriend("bob", "alice"); err != nil {
		t.Fatalf("DenyFriend: %v", err)
	}
	rec := svc.Friends("bob")
	if len(rec.Requests) != 0 || len(rec.Friends) != 0 {
		t.Errorf("bob record after deny = %+v", rec)
	}
}

func TestUpdateProfileFields(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.UpdateProfile("alice", "learning English", "studying", "")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if p.Bio != "learning English" {
		t.Errorf("bio = %q", p.Bio)
	}
	if p.Status != "studying" {
		t.Errorf("status = %q", p.Status)
	}
	if p.Icon != "/icons/default.png" {
		t.Errorf("empty icon overwrote default: %q", p.Icon)
	}

	p, err = svc.UpdateBanner("alice", "/uploads/banner.png")
	if err != nil {
		t.Fatalf("UpdateBanner: %v", err)
	}
	if p.Banner != "/uploads/banner.png" {
		t.Errorf("banner = %q", p.Banner)
	}

	p, err = svc.SetIcon("alice", "/icons/cat.png")
	if err != nil {
		t.Fatalf("SetIcon: %v", err)
	}
	if p.Icon != "/icons/cat.png" {
		t.Errorf("icon = %q", p.Icon)
	}
	if p.Bio != "learning English" {
		t.Errorf("bio lost: %q", p.Bio)
	}
}
