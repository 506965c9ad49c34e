package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"squadrate/src/core/domain"
	"squadrate/src/core/ports"
)

// MemoryRepository is an in-memory implementation of RatingRepository used by
// tests. It mirrors the Postgres adapter's error mapping: the same domain
// errors come back for duplicate players, duplicate submissions, and missing
// rows.
type MemoryRepository struct {
	mu       sync.RWMutex
	players  map[string]domain.Player
	rounds   []domain.Round
	ratings  []domain.Rating
	comments map[int64]domain.Comment
	votes    map[int64]map[string]domain.VoteKind

	nextRoundID   int64
	nextCommentID int64
}

var _ ports.RatingRepository = (*MemoryRepository)(nil)

// NewMemoryRepository returns an empty repository with the first round open,
// matching the seed migration.
func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{
		players:  make(map[string]domain.Player),
		comments: make(map[int64]domain.Comment),
		votes:    make(map[int64]map[string]domain.VoteKind),
	}
	r.nextRoundID = 1
	r.rounds = append(r.rounds, domain.Round{ID: 1, CreatedAt: time.Now()})
	return r
}

func (r *MemoryRepository) Health(ctx context.Context) error {
	return nil
}

// Players

func (r *MemoryRepository) GetPlayer(ctx context.Context, name string) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[name]
	if !ok {
		return nil, domain.NewNotFoundError("player")
	}
	return &p, nil
}

func (r *MemoryRepository) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	players := make([]domain.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}

func (r *MemoryRepository) CreatePlayer(ctx context.Context, name, password string, canRate bool) (*domain.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[name]; ok {
		return nil, domain.NewConflictError("player name already taken")
	}
	p := domain.Player{Name: name, Password: password, CanRate: canRate, CreatedAt: time.Now()}
	r.players[name] = p
	return &p, nil
}

func (r *MemoryRepository) DeletePlayer(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[name]; !ok {
		return domain.NewNotFoundError("player")
	}
	delete(r.players, name)

	// Cascade, the way the foreign keys do.
	kept := r.ratings[:0]
	for _, rt := range r.ratings {
		if rt.Rater != name && rt.Ratee != name {
			kept = append(kept, rt)
		}
	}
	r.ratings = kept
	for _, voters := range r.votes {
		delete(voters, name)
	}
	return nil
}

func (r *MemoryRepository) SetCanRate(ctx context.Context, name string, canRate bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[name]
	if !ok {
		return domain.NewNotFoundError("player")
	}
	p.CanRate = canRate
	r.players[name] = p
	return nil
}

// Rounds

func (r *MemoryRepository) GetCurrentRound(ctx context.Context) (*domain.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.rounds) == 0 {
		return nil, domain.NewNotFoundError("round")
	}
	round := r.rounds[len(r.rounds)-1]
	return &round, nil
}

func (r *MemoryRepository) SetRoundLocked(ctx context.Context, roundID int64, locked bool) (*domain.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rounds {
		if r.rounds[i].ID == roundID {
			r.rounds[i].Locked = locked
			round := r.rounds[i]
			return &round, nil
		}
	}
	return nil, domain.NewNotFoundError("round")
}

func (r *MemoryRepository) ResetRound(ctx context.Context) (*domain.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rounds) > 0 {
		r.rounds[len(r.rounds)-1].Locked = true
	}
	r.nextRoundID++
	round := domain.Round{ID: r.nextRoundID, CreatedAt: time.Now()}
	r.rounds = append(r.rounds, round)
	return &round, nil
}

// Ratings

func (r *MemoryRepository) HasSubmitted(ctx context.Context, matchID int64, rater string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.ratings {
		if rt.MatchID == matchID && rt.Rater == rater {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) InsertRatings(ctx context.Context, matchID int64, rater string, entries []domain.RatingEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.ratings {
		if rt.MatchID == matchID && rt.Rater == rater {
			return domain.NewConflictError("already submitted this round")
		}
	}
	now := time.Now()
	for _, e := range entries {
		r.ratings = append(r.ratings, domain.Rating{
			MatchID:   matchID,
			Rater:     rater,
			Ratee:     e.Ratee,
			Score:     e.Score,
			CreatedAt: now,
		})
	}
	return nil
}

func (r *MemoryRepository) GetRoundProgress(ctx context.Context, matchID int64) (*ports.RoundProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raters := make(map[string]bool)
	for _, rt := range r.ratings {
		if rt.MatchID == matchID {
			raters[rt.Rater] = true
		}
	}
	eligible := 0
	for _, p := range r.players {
		if p.CanRate {
			eligible++
		}
	}
	return &ports.RoundProgress{Submitted: len(raters), Eligible: eligible}, nil
}

func (r *MemoryRepository) GetRoundLeaderboard(ctx context.Context, matchID int64) ([]ports.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.aggregate(func(rt domain.Rating) bool { return rt.MatchID == matchID }), nil
}

func (r *MemoryRepository) GetOverallLeaderboard(ctx context.Context) ([]ports.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	locked := make(map[int64]bool)
	for _, round := range r.rounds {
		if round.Locked {
			locked[round.ID] = true
		}
	}
	return r.aggregate(func(rt domain.Rating) bool { return locked[rt.MatchID] }), nil
}

func (r *MemoryRepository) aggregate(include func(domain.Rating) bool) []ports.LeaderboardEntry {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, rt := range r.ratings {
		if include(rt) {
			sums[rt.Ratee] += rt.Score
			counts[rt.Ratee]++
		}
	}
	var entries []ports.LeaderboardEntry
	for ratee, sum := range sums {
		entries = append(entries, ports.LeaderboardEntry{
			Ratee:   ratee,
			Average: float64(sum) / float64(counts[ratee]),
			Count:   counts[ratee],
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}
		return entries[i].Ratee < entries[j].Ratee
	})
	return entries
}

// Comments

func (r *MemoryRepository) CreateComment(ctx context.Context, matchID int64, body string) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextCommentID++
	c := domain.Comment{ID: r.nextCommentID, MatchID: matchID, Body: body, CreatedAt: time.Now()}
	r.comments[c.ID] = c
	return &c, nil
}

func (r *MemoryRepository) GetComment(ctx context.Context, commentID int64) (*domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.comments[commentID]
	if !ok {
		return nil, domain.NewNotFoundError("comment")
	}
	return &c, nil
}

func (r *MemoryRepository) ListComments(ctx context.Context, matchID int64, viewer string) ([]ports.CommentView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var views []ports.CommentView
	for _, c := range r.comments {
		if c.MatchID != matchID {
			continue
		}
		view := ports.CommentView{Comment: c}
		for voter, kind := range r.votes[c.ID] {
			switch kind {
			case domain.VoteLike:
				view.Likes++
			case domain.VoteDislike:
				view.Dislikes++
			}
			if voter == viewer {
				k := kind
				view.MyVote = &k
			}
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Comment.ID > views[j].Comment.ID })
	return views, nil
}

func (r *MemoryRepository) DeleteComment(ctx context.Context, commentID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[commentID]; !ok {
		return domain.NewNotFoundError("comment")
	}
	delete(r.comments, commentID)
	delete(r.votes, commentID)
	return nil
}

// Comment votes

func (r *MemoryRepository) GetCommentVote(ctx context.Context, commentID int64, voter string) (*domain.VoteKind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kind, ok := r.votes[commentID][voter]
	if !ok {
		return nil, nil
	}
	return &kind, nil
}

func (r *MemoryRepository) UpsertCommentVote(ctx context.Context, commentID int64, voter string, kind domain.VoteKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[commentID]; !ok {
		return domain.NewNotFoundError("comment")
	}
	if r.votes[commentID] == nil {
		r.votes[commentID] = make(map[string]domain.VoteKind)
	}
	r.votes[commentID][voter] = kind
	return nil
}

func (r *MemoryRepository) DeleteCommentVote(ctx context.Context, commentID int64, voter string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.votes[commentID], voter)
	return nil
}

func (r *MemoryRepository) CountCommentVotes(ctx context.Context, commentID int64) (*ports.VoteCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var c ports.VoteCounts
	for _, kind := range r.votes[commentID] {
		switch kind {
		case domain.VoteLike:
			c.Likes++
		case domain.VoteDislike:
			c.Dislikes++
		}
	}
	return &c, nil
}
