package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"squadrate/src/core/domain"
	"squadrate/src/core/ports"
	"squadrate/src/infra/db"
)

// PostgresRepository implements RatingRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

var _ ports.RatingRepository = (*PostgresRepository)(nil)

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// Players

func (r *PostgresRepository) GetPlayer(ctx context.Context, name string) (*domain.Player, error) {
	const q = `
		SELECT name, password, can_rate, created_at
		FROM players
		WHERE name = $1
	`
	var p domain.Player
	if err := r.pool.QueryRow(ctx, q, name).Scan(&p.Name, &p.Password, &p.CanRate, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("player")
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	const q = `
		SELECT name, password, can_rate, created_at
		FROM players
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.Name, &p.Password, &p.CanRate, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *PostgresRepository) CreatePlayer(ctx context.Context, name, password string, canRate bool) (*domain.Player, error) {
	const q = `
		INSERT INTO players (name, password, can_rate)
		VALUES ($1, $2, $3)
		RETURNING name, password, can_rate, created_at
	`
	var p domain.Player
	err := r.pool.QueryRow(ctx, q, name, password, canRate).Scan(&p.Name, &p.Password, &p.CanRate, &p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("player name already taken")
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) DeletePlayer(ctx context.Context, name string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM players WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("player")
	}
	return nil
}

func (r *PostgresRepository) SetCanRate(ctx context.Context, name string, canRate bool) error {
	res, err := r.pool.Exec(ctx, `UPDATE players SET can_rate = $2 WHERE name = $1`, name, canRate)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("player")
	}
	return nil
}

// Rounds

func (r *PostgresRepository) GetCurrentRound(ctx context.Context) (*domain.Round, error) {
	const q = `
		SELECT match_id, locked, created_at
		FROM matches
		ORDER BY match_id DESC
		LIMIT 1
	`
	var rd domain.Round
	if err := r.pool.QueryRow(ctx, q).Scan(&rd.ID, &rd.Locked, &rd.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("round")
		}
		return nil, err
	}
	return &rd, nil
}

func (r *PostgresRepository) SetRoundLocked(ctx context.Context, roundID int64, locked bool) (*domain.Round, error) {
	const q = `
		UPDATE matches
		SET locked = $2
		WHERE match_id = $1
		RETURNING match_id, locked, created_at
	`
	var rd domain.Round
	if err := r.pool.QueryRow(ctx, q, roundID, locked).Scan(&rd.ID, &rd.Locked, &rd.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("round")
		}
		return nil, err
	}
	return &rd, nil
}

func (r *PostgresRepository) ResetRound(ctx context.Context) (*domain.Round, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const lockQ = `
		UPDATE matches
		SET locked = TRUE
		WHERE match_id = (SELECT MAX(match_id) FROM matches)
	`
	if _, err := tx.Exec(ctx, lockQ); err != nil {
		return nil, err
	}

	const insertQ = `
		INSERT INTO matches (locked)
		VALUES (FALSE)
		RETURNING match_id, locked, created_at
	`
	var rd domain.Round
	if err := tx.QueryRow(ctx, insertQ).Scan(&rd.ID, &rd.Locked, &rd.CreatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &rd, nil
}

// Ratings

func (r *PostgresRepository) HasSubmitted(ctx context.Context, matchID int64, rater string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM ratings WHERE match_id = $1 AND rater = $2
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, matchID, rater).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRepository) InsertRatings(ctx context.Context, matchID int64, rater string, entries []domain.RatingEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
		INSERT INTO ratings (match_id, rater, ratee, score)
		VALUES ($1, $2, $3, $4)
	`
	for _, e := range entries {
		if _, err := tx.Exec(ctx, q, matchID, rater, e.Ratee, e.Score); err != nil {
			if isUniqueViolation(err) {
				return domain.NewConflictError("already submitted this round")
			}
			if isForeignKeyViolation(err) {
				return domain.NewValidationError("ratee", "unknown player: "+e.Ratee)
			}
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetRoundProgress(ctx context.Context, matchID int64) (*ports.RoundProgress, error) {
	const q = `
		SELECT
			(SELECT COUNT(DISTINCT rater) FROM ratings WHERE match_id = $1),
			(SELECT COUNT(*) FROM players WHERE can_rate)
	`
	var p ports.RoundProgress
	if err := r.pool.QueryRow(ctx, q, matchID).Scan(&p.Submitted, &p.Eligible); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) GetRoundLeaderboard(ctx context.Context, matchID int64) ([]ports.LeaderboardEntry, error) {
	const q = `
		SELECT ratee, AVG(score)::float8, COUNT(*)
		FROM ratings
		WHERE match_id = $1
		GROUP BY ratee
		ORDER BY AVG(score) DESC, ratee
	`
	return r.queryLeaderboard(ctx, q, matchID)
}

func (r *PostgresRepository) GetOverallLeaderboard(ctx context.Context) ([]ports.LeaderboardEntry, error) {
	const q = `
		SELECT rt.ratee, AVG(rt.score)::float8, COUNT(*)
		FROM ratings rt
		JOIN matches m ON m.match_id = rt.match_id
		WHERE m.locked
		GROUP BY rt.ratee
		ORDER BY AVG(rt.score) DESC, rt.ratee
	`
	return r.queryLeaderboard(ctx, q)
}

func (r *PostgresRepository) queryLeaderboard(ctx context.Context, q string, args ...any) ([]ports.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ports.LeaderboardEntry
	for rows.Next() {
		var e ports.LeaderboardEntry
		if err := rows.Scan(&e.Ratee, &e.Average, &e.Count); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Comments

func (r *PostgresRepository) CreateComment(ctx context.Context, matchID int64, body string) (*domain.Comment, error) {
	const q = `
		INSERT INTO comments (match_id, body)
		VALUES ($1, $2)
		RETURNING comment_id, match_id, body, created_at
	`
	var c domain.Comment
	if err := r.pool.QueryRow(ctx, q, matchID, body).Scan(&c.ID, &c.MatchID, &c.Body, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) GetComment(ctx context.Context, commentID int64) (*domain.Comment, error) {
	const q = `
		SELECT comment_id, match_id, body, created_at
		FROM comments
		WHERE comment_id = $1
	`
	var c domain.Comment
	if err := r.pool.QueryRow(ctx, q, commentID).Scan(&c.ID, &c.MatchID, &c.Body, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("comment")
		}
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) ListComments(ctx context.Context, matchID int64, viewer string) ([]ports.CommentView, error) {
	const q = `
		SELECT c.comment_id, c.match_id, c.body, c.created_at,
			COUNT(v.voter) FILTER (WHERE v.kind = 'like'),
			COUNT(v.voter) FILTER (WHERE v.kind = 'dislike'),
			MAX(v.kind) FILTER (WHERE v.voter = $2)
		FROM comments c
		LEFT JOIN comment_votes v ON v.comment_id = c.comment_id
		WHERE c.match_id = $1
		GROUP BY c.comment_id, c.match_id, c.body, c.created_at
		ORDER BY c.created_at DESC, c.comment_id DESC
	`
	rows, err := r.pool.Query(ctx, q, matchID, viewer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []ports.CommentView
	for rows.Next() {
		var cv ports.CommentView
		var mine *string
		if err := rows.Scan(
			&cv.Comment.ID, &cv.Comment.MatchID, &cv.Comment.Body, &cv.Comment.CreatedAt,
			&cv.Likes, &cv.Dislikes, &mine,
		); err != nil {
			return nil, err
		}
		if mine != nil {
			kind := domain.VoteKind(*mine)
			cv.MyVote = &kind
		}
		views = append(views, cv)
	}
	return views, rows.Err()
}

func (r *PostgresRepository) DeleteComment(ctx context.Context, commentID int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("comment")
	}
	return nil
}

// Comment votes

func (r *PostgresRepository) GetCommentVote(ctx context.Context, commentID int64, voter string) (*domain.VoteKind, error) {
	const q = `
		SELECT kind FROM comment_votes
		WHERE comment_id = $1 AND voter = $2
	`
	var kind domain.VoteKind
	if err := r.pool.QueryRow(ctx, q, commentID, voter).Scan(&kind); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &kind, nil
}

func (r *PostgresRepository) UpsertCommentVote(ctx context.Context, commentID int64, voter string, kind domain.VoteKind) error {
	const q = `
		INSERT INTO comment_votes (comment_id, voter, kind)
		VALUES ($1, $2, $3)
		ON CONFLICT (comment_id, voter) DO UPDATE SET kind = EXCLUDED.kind
	`
	if _, err := r.pool.Exec(ctx, q, commentID, voter, kind); err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError("comment")
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) DeleteCommentVote(ctx context.Context, commentID int64, voter string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM comment_votes WHERE comment_id = $1 AND voter = $2`, commentID, voter)
	return err
}

func (r *PostgresRepository) CountCommentVotes(ctx context.Context, commentID int64) (*ports.VoteCounts, error) {
	const q = `
		SELECT
			COUNT(*) FILTER (WHERE kind = 'like'),
			COUNT(*) FILTER (WHERE kind = 'dislike')
		FROM comment_votes
		WHERE comment_id = $1
	`
	var c ports.VoteCounts
	if err := r.pool.QueryRow(ctx, q, commentID).Scan(&c.Likes, &c.Dislikes); err != nil {
		return nil, err
	}
	return &c, nil
}
