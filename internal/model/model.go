package model

import "math"

// Level identifies an EIKEN-style test level.
type Level string

const (
	Level5      Level = "5"
	Level4      Level = "4"
	Level3      Level = "3"
	LevelPre2   Level = "Pre2"
	Level2      Level = "2"
	LevelPre1   Level = "Pre1"
	Level1      Level = "1"
	LevelNaraku Level = "Naraku"
)

// AllLevels lists every level tag, easiest first.
var AllLevels = []Level{Level5, Level4, Level3, LevelPre2, Level2, LevelPre1, Level1, LevelNaraku}

// ParseLevel validates a level tag.
func ParseLevel(s string) (Level, bool) {
	for _, l := range AllLevels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// TimeLayout is the display timestamp format used in stored records.
const TimeLayout = "2006/01/02 15:04:05"

// User is a profile record keyed by the self-asserted username.
type User struct {
	Bio    string `json:"bio"`
	Icon   string `json:"icon"`
	Banner string `json:"banner"`
	Status string `json:"status"`
	XP     int    `json:"xp"`
	Posts  int    `json:"posts"`
	Likes  int    `json:"likes"`
}

// DefaultUser returns the profile a user starts with.
func DefaultUser() User {
	return User{
		Bio:    "",
		Icon:   "/icons/default.png",
		Banner: "/icons/default_banner.jpg",
		Status: "offline",
	}
}

// CalcLevel derives the display level from accumulated XP.
// The level is never stored; it is recomputed on every read.
func CalcLevel(xp int) int {
	return int(math.Floor(1 + math.Sqrt(float64(xp)/15)))
}

// Profile is a user record with the derived level attached.
type Profile struct {
	User
	Level int `json:"level"`
}

// ScoreRecord is one test attempt. A resubmission for the same
// (user, level) pair overwrites the previous record.
type ScoreRecord struct {
	Score   int            `json:"score"`
	Words   int            `json:"words"`
	Details map[string]int `json:"details"`
	Time    string         `json:"time"`
}

// ScoreEntry is a flattened row of the ranking listing.
type ScoreEntry struct {
	Name    string         `json:"name"`
	Level   Level          `json:"level"`
	Score   int            `json:"score"`
	Details map[string]int `json:"details"`
	Date    string         `json:"date"`
}

// Reply is a child record owned by its parent post.
type Reply struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
	Date string `json:"date"`
}

// Post is a bulletin-board entry. LikedUsers dedups likes per user.
type Post struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Text       string   `json:"text"`
	Image      string   `json:"image,omitempty"`
	Date       string   `json:"date"`
	Likes      int      `json:"likes"`
	LikedUsers []string `json:"likedUsers"`
	Replies    []Reply  `json:"replies"`
}

// Board is a named, isolated collection of posts. The ID is the display
// name with whitespace replaced by underscores and must be unique.
type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FriendRecord holds one user's side of the friend graph. Friends is
// symmetric; Requests holds pending inbound usernames in arrival order.
type FriendRecord struct {
	Friends  []string `json:"friends"`
	Requests []string `json:"requests"`
}

// Notification is an inbox entry. It is never mutated after creation.
type Notification struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	From string `json:"from,omitempty"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// WritingResult is the essay grading payload. Total always equals the
// sum of the four rubric sub-scores.
type WritingResult struct {
	Content      int    `json:"content"`
	Organization int    `json:"organization"`
	Vocabulary   int    `json:"vocabulary"`
	Grammar      int    `json:"grammar"`
	Total        int    `json:"total"`
	CommentEN    string `json:"comment_en"`
	CommentJA    string `json:"comment_ja"`
	ModelAnswer  string `json:"modelAnswer"`
}

// Document types, one per stored collection.
type (
	Users         map[string]User
	Scores        map[string]map[Level]ScoreRecord
	Boards        []Board
	Posts         []Post
	Friends       map[string]FriendRecord
	Notifications map[string][]Notification
)
