package outcome

import (
	"context"
	"database/sql"

	"github.com/sqlc-dev/pqtype"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Queries holds the SQL used by the results repository.
type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

const insertMatchResult = `
INSERT INTO match_results (match_id, draw, winner, ranking, recorded_at)
VALUES ($1, $2, $3, $4, $5)
`

type InsertMatchResultParams struct {
	MatchID    string
	Draw       bool
	Winner     sql.NullString
	Ranking    pqtype.NullRawMessage
	RecordedAt sql.NullTime
}

func (q *Queries) InsertMatchResult(ctx context.Context, arg InsertMatchResultParams) error {
	_, err := q.db.ExecContext(ctx, insertMatchResult,
		arg.MatchID,
		arg.Draw,
		arg.Winner,
		arg.Ranking,
		arg.RecordedAt,
	)
	return err
}

const getMatchResult = `
SELECT match_id, draw, winner, ranking, recorded_at
FROM match_results
WHERE match_id = $1
`

type MatchResultRow struct {
	MatchID    string
	Draw       bool
	Winner     sql.NullString
	Ranking    pqtype.NullRawMessage
	RecordedAt sql.NullTime
}

func (q *Queries) GetMatchResult(ctx context.Context, matchID string) (MatchResultRow, error) {
	row := q.db.QueryRowContext(ctx, getMatchResult, matchID)
	var r MatchResultRow
	err := row.Scan(&r.MatchID, &r.Draw, &r.Winner, &r.Ranking, &r.RecordedAt)
	return r, err
}
