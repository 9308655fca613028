package postgres

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// call is one statement received by fakeDB.
type call struct {
	sql  string
	args []any
}

// fakeDB is a scripted DBTX. Each Query/QueryRow/Exec consumes the next
// result in order.
type fakeDB struct {
	results []result
	calls   []call
}

type result struct {
	rows [][]any
	tag  string
	err  error
}

func (f *fakeDB) next(sql string, args []any) result {
	f.calls = append(f.calls, call{sql: sql, args: args})
	if len(f.results) == 0 {
		return result{err: fmt.Errorf("unexpected statement: %s", sql)}
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r := f.next(sql, args)
	return pgconn.NewCommandTag(r.tag), r.err
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r := f.next(sql, args)
	if r.err != nil {
		return nil, r.err
	}
	return &fakeRows{rows: r.rows, idx: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r := f.next(sql, args)
	if r.err != nil {
		return fakeRow{err: r.err}
	}
	if len(r.rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: r.rows[0]}
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	rows   [][]any
	idx    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.rows[r.idx], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.idx], nil
}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(v))
	}
	return nil
}

// fakeTx records how a transaction ended.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}
