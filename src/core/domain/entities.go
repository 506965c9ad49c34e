package domain

import "time"

// VoteKind is the reaction a player can leave on a comment.
type VoteKind string

const (
	VoteLike    VoteKind = "like"
	VoteDislike VoteKind = "dislike"
)

// Valid reports whether the kind is one of the two allowed reactions.
func (k VoteKind) Valid() bool {
	return k == VoteLike || k == VoteDislike
}

// Player represents a roster member.
// Password is the stored credential and must never be serialized.
type Player struct {
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	CanRate   bool      `json:"can_rate"`
	CreatedAt time.Time `json:"created_at"`
}

// Round represents a rating period. The round with the greatest ID is the
// current one; locked rounds are read-only and feed the overall leaderboard.
type Round struct {
	ID        int64     `json:"id"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating is a single peer rating within a round. The (MatchID, Rater, Ratee)
// triple is unique, which makes submission one-shot per round.
type Rating struct {
	MatchID   int64
	Rater     string
	Ratee     string
	Score     int
	CreatedAt time.Time
}

// RatingEntry is one (ratee, score) pair inside a submission.
type RatingEntry struct {
	Ratee string
	Score int
}

// Comment is an anonymous note attached to a round. No author is stored.
type Comment struct {
	ID        int64
	MatchID   int64
	Body      string
	CreatedAt time.Time
}
