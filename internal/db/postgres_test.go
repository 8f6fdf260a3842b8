package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestWithTransactionCommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{tx: tx}

	called := false
	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, gotTx pgx.Tx) error {
		called = true
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		assert.Same(t, tx, gotTx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{tx: tx}

	boom := errors.New("insert failed")
	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{tx: tx}

	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
			panic("boom")
		})
	})

	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestWithTransactionBeginFailure(t *testing.T) {
	beginner := &fakeBeginner{err: errors.New("pool exhausted")}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}

func TestWithTransactionCommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("connection lost")}
	beginner := &fakeBeginner{tx: tx}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
}
