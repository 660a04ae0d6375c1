package outcome

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"

	"github.com/mcdev12/lettersoup/go/internal/sqlutil"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

var ErrResultNotFound = errors.New("match result not found")

type Repository struct {
	db      *sql.DB
	queries *Queries
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:      db,
		queries: NewQueries(db),
	}
}

// RecordResult stores the final ranking of a match. Recording the same match twice is a
// no-op, so a seat that observes game over again after a restart does not fail.
func (r *Repository) RecordResult(ctx context.Context, res Result) error {
	params, err := toInsertParams(res)
	if err != nil {
		return err
	}

	err = sqlutil.Run(ctx, r.db, func(tx *sql.Tx) *Queries {
		return NewQueries(tx)
	}, func(q *Queries) error {
		return q.InsertMatchResult(ctx, params)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			log.Debug().Str("match_id", res.MatchID).Msg("match result already recorded")
			return nil
		}
		return fmt.Errorf("failed to record match result: %w", err)
	}

	log.Info().
		Str("match_id", res.MatchID).
		Bool("draw", res.Draw).
		Str("winner", res.Winner).
		Int("players", len(res.Ranking)).
		Msg("recorded match result")
	return nil
}

// GetResult loads a previously recorded match result.
func (r *Repository) GetResult(ctx context.Context, matchID string) (*Result, error) {
	row, err := r.queries.GetMatchResult(ctx, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}
	return fromRow(row)
}

func toInsertParams(res Result) (InsertMatchResultParams, error) {
	payload, err := json.Marshal(res.Ranking)
	if err != nil {
		return InsertMatchResultParams{}, fmt.Errorf("failed to marshal ranking: %w", err)
	}
	return InsertMatchResultParams{
		MatchID:    res.MatchID,
		Draw:       res.Draw,
		Winner:     sqlutil.ToNullString(res.Winner),
		Ranking:    pqtype.NullRawMessage{RawMessage: payload, Valid: len(res.Ranking) > 0},
		RecordedAt: sqlutil.ToNullTime(res.RecordedAt),
	}, nil
}

func fromRow(row MatchResultRow) (*Result, error) {
	res := &Result{
		MatchID: row.MatchID,
		Draw:    row.Draw,
		Winner:  sqlutil.FromNullString(row.Winner),
		Ranking: Ranking{},
	}
	if row.RecordedAt.Valid {
		res.RecordedAt = row.RecordedAt.Time
	}
	if row.Ranking.Valid {
		if err := json.Unmarshal(row.Ranking.RawMessage, &res.Ranking); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ranking: %w", err)
		}
	}
	return res, nil
}
