package sqlutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txLog records what a recordingDriver connection was asked to do.
type txLog struct {
	mu          sync.Mutex
	begins      int
	commits     int
	rollbacks   int
	commitErr   error
	rollbackErr error
}

func (l *txLog) counts() (begins, commits, rollbacks int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.begins, l.commits, l.rollbacks
}

var (
	txLogsMu sync.Mutex
	txLogs   = map[string]*txLog{}
)

func init() {
	sql.Register("sqlutil-recording", recordingDriver{})
}

type recordingDriver struct{}

func (recordingDriver) Open(name string) (driver.Conn, error) {
	txLogsMu.Lock()
	defer txLogsMu.Unlock()
	return &recordingConn{log: txLogs[name]}, nil
}

type recordingConn struct{ log *txLog }

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("statements not supported")
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) Begin() (driver.Tx, error) {
	c.log.mu.Lock()
	defer c.log.mu.Unlock()
	c.log.begins++
	return &recordingTx{log: c.log}, nil
}

type recordingTx struct{ log *txLog }

func (tx *recordingTx) Commit() error {
	tx.log.mu.Lock()
	defer tx.log.mu.Unlock()
	tx.log.commits++
	return tx.log.commitErr
}

func (tx *recordingTx) Rollback() error {
	tx.log.mu.Lock()
	defer tx.log.mu.Unlock()
	tx.log.rollbacks++
	return tx.log.rollbackErr
}

func openRecordingDB(t *testing.T, log *txLog) *sql.DB {
	t.Helper()
	txLogsMu.Lock()
	txLogs[t.Name()] = log
	txLogsMu.Unlock()

	db, err := sql.Open("sqlutil-recording", t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type txQueries struct{ tx *sql.Tx }

func newTxQueries(tx *sql.Tx) *txQueries { return &txQueries{tx: tx} }

func TestRunCommitsOnSuccess(t *testing.T) {
	log := &txLog{}
	db := openRecordingDB(t, log)

	var bound *sql.Tx
	err := Run(context.Background(), db, newTxQueries, func(q *txQueries) error {
		bound = q.tx
		return nil
	})
	require.NoError(t, err)
	assert.NotNil(t, bound)

	begins, commits, rollbacks := log.counts()
	assert.Equal(t, 1, begins)
	assert.Equal(t, 1, commits)
	assert.Zero(t, rollbacks)
}

func TestRunRollsBackWhenFnFails(t *testing.T) {
	log := &txLog{}
	db := openRecordingDB(t, log)
	errInsert := errors.New("duplicate key")

	err := Run(context.Background(), db, newTxQueries, func(*txQueries) error { return errInsert })
	assert.Equal(t, errInsert, err)

	_, commits, rollbacks := log.counts()
	assert.Zero(t, commits)
	assert.Equal(t, 1, rollbacks)
}

func TestRunReportsRollbackFailure(t *testing.T) {
	errConn := errors.New("connection reset")
	db := openRecordingDB(t, &txLog{rollbackErr: errConn})
	errInsert := errors.New("duplicate key")

	err := Run(context.Background(), db, newTxQueries, func(*txQueries) error { return errInsert })
	require.Error(t, err)
	assert.ErrorIs(t, err, errInsert)
	assert.ErrorIs(t, err, errConn)
	assert.ErrorContains(t, err, "failed to roll back transaction")
}

func TestRunWrapsCommitFailure(t *testing.T) {
	errConn := errors.New("connection reset")
	db := openRecordingDB(t, &txLog{commitErr: errConn})

	err := Run(context.Background(), db, newTxQueries, func(*txQueries) error { return nil })
	assert.ErrorIs(t, err, errConn)
	assert.ErrorContains(t, err, "failed to commit transaction")
}
