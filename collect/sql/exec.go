package sql

import (
	"context"
	"database/sql"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
	"github.com/lguimbarda/min-collect/collect/core"
)

// Execer runs statements. *sql.DB, *sql.Tx and *sql.Conn implement it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ExecResult is the output of the exec collectors. Written counts the
// statements that succeeded.
type ExecResult struct {
	collecterrors.Result
	RowsAffected int64
	LastInsertId int64
}

// Exec runs a statement for every item, with the arguments binder makes
// from it. It stops on the first failed statement.
type Exec[T any] struct {
	ctx    context.Context
	db     Execer
	query  string
	binder func(T) []any
	res    ExecResult
	tally  collecterrors.Tally
}

// NewExec returns an Exec running query on db.
func NewExec[T any](ctx context.Context, db Execer, query string, binder func(T) []any) *Exec[T] {
	return &Exec[T]{ctx: ctx, db: db, query: query, binder: binder}
}

func (e *Exec[T]) Collect(item T) core.Signal {
	if e.tally.Failed() {
		return core.Stop
	}
	r, err := e.db.ExecContext(e.ctx, e.query, e.binder(item)...)
	if err == nil {
		e.record(r)
	}
	return e.tally.Record(err)
}

func (e *Exec[T]) CollectRef(item *T) core.Signal {
	return e.Collect(*item)
}

func (e *Exec[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](e, items)
}

func (e *Exec[T]) CollectThenFinish(items core.Iterator[T]) ExecResult {
	return core.FinishEach[T, ExecResult](e, items)
}

func (e *Exec[T]) IntoCollector() core.Collector[T, ExecResult] { return e }

func (e *Exec[T]) Finish() ExecResult {
	e.res.Result = e.tally.Result
	return e.res
}

func (e *Exec[T]) BreakHint() core.Signal {
	return e.tally.Hint()
}

func (e *Exec[T]) record(r sql.Result) {
	if n, err := r.RowsAffected(); err == nil {
		e.res.RowsAffected += n
	}
	if id, err := r.LastInsertId(); err == nil {
		e.res.LastInsertId = id
	}
}

// Batch runs a prepared statement for every item inside one transaction,
// begun at the first item. Finish commits it, or rolls it back when a
// statement failed, in which case no item counts as written.
type Batch[T any] struct {
	ctx    context.Context
	db     *sql.DB
	query  string
	binder func(T) []any

	tx   *sql.Tx
	stmt *sql.Stmt
	exec *Exec[T]
	err  error
}

// NewBatch returns a Batch running query on db.
func NewBatch[T any](ctx context.Context, db *sql.DB, query string, binder func(T) []any) *Batch[T] {
	return &Batch[T]{ctx: ctx, db: db, query: query, binder: binder}
}

// begin opens the transaction and prepares the statement.
func (b *Batch[T]) begin() bool {
	if b.exec != nil {
		return true
	}
	if b.err != nil {
		return false
	}
	tx, err := b.db.BeginTx(b.ctx, nil)
	if err != nil {
		b.err = collecterrors.Wrap(err, "begin")
		return false
	}
	stmt, err := tx.PrepareContext(b.ctx, b.query)
	if err != nil {
		tx.Rollback()
		b.err = collecterrors.Wrap(err, "prepare")
		return false
	}
	b.tx, b.stmt = tx, stmt
	b.exec = NewExec[T](b.ctx, stmtExecer{stmt}, b.query, b.binder)
	return true
}

func (b *Batch[T]) Collect(item T) core.Signal {
	if !b.begin() {
		return core.Stop
	}
	return b.exec.Collect(item)
}

func (b *Batch[T]) CollectRef(item *T) core.Signal {
	return b.Collect(*item)
}

func (b *Batch[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](b, items)
}

func (b *Batch[T]) CollectThenFinish(items core.Iterator[T]) ExecResult {
	return core.FinishEach[T, ExecResult](b, items)
}

func (b *Batch[T]) IntoCollector() core.Collector[T, ExecResult] { return b }

func (b *Batch[T]) Finish() ExecResult {
	if b.exec == nil {
		return ExecResult{Result: collecterrors.Result{Err: b.err}}
	}
	res := b.exec.Finish()
	b.stmt.Close()
	if res.Err != nil {
		b.tx.Rollback()
		return ExecResult{Result: collecterrors.Result{Err: res.Err}}
	}
	if err := b.tx.Commit(); err != nil {
		return ExecResult{Result: collecterrors.Result{Err: collecterrors.Wrap(err, "commit")}}
	}
	return res
}

func (b *Batch[T]) BreakHint() core.Signal {
	if b.err != nil {
		return core.Stop
	}
	if b.exec == nil {
		return core.Continue
	}
	return b.exec.BreakHint()
}

// stmtExecer runs a prepared statement, ignoring the query text.
type stmtExecer struct {
	stmt *sql.Stmt
}

func (s stmtExecer) ExecContext(ctx context.Context, _ string, args ...any) (sql.Result, error) {
	return s.stmt.ExecContext(ctx, args...)
}
