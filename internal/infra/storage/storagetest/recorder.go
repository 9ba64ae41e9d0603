// Package storagetest подменяет PostgreSQL в тестах репозиториев:
// драйвер database/sql, который запоминает SQL и отвечает заданной ошибкой или строками.
package storagetest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
)

// Query выполненный запрос и его аргументы
type Query struct {
	SQL  string
	Args []interface{}
}

// Recorder состояние фейковой базы
type Recorder struct {
	mu       sync.Mutex
	queries  []Query
	err      error
	columns  []string
	rows     [][]driver.Value
	affected int64
}

// Open возвращает *sql.DB поверх Recorder; база закрывается по окончании теста
func Open(t *testing.T) (*sql.DB, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	db := sql.OpenDB(connector{rec: rec})
	t.Cleanup(func() { _ = db.Close() })
	return db, rec
}

// InTx открывает транзакцию и кладёт её в контекст так же, как txmanager
func InTx(t *testing.T, db *sql.DB) context.Context {
	t.Helper()
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("storagetest: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback() })
	return dbmetrics.WithTx(context.Background(), tx)
}

// FailWith задаёт ошибку для всех следующих запросов
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// ReturnRows задаёт строки, которые вернёт каждый следующий SELECT
func (r *Recorder) ReturnRows(columns []string, rows ...[]driver.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.columns = columns
	r.rows = rows
}

// SetRowsAffected задаёт результат RowsAffected для Exec
func (r *Recorder) SetRowsAffected(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.affected = n
}

// Queries копия журнала запросов
func (r *Recorder) Queries() []Query {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Query, len(r.queries))
	copy(out, r.queries)
	return out
}

// Last последний выполненный запрос; пустой, если запросов не было
func (r *Recorder) Last() Query {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queries) == 0 {
		return Query{}
	}
	return r.queries[len(r.queries)-1]
}

func (r *Recorder) record(query string, args []driver.NamedValue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	values := make([]interface{}, len(args))
	for i, a := range args {
		values[i] = a.Value
	}
	r.queries = append(r.queries, Query{SQL: query, Args: values})
	return r.err
}

func (r *Recorder) result() *rows {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &rows{columns: r.columns, values: r.rows}
}

func (r *Recorder) rowsAffected() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.affected
}

type connector struct {
	rec *Recorder
}

func (c connector) Connect(context.Context) (driver.Conn, error) {
	return &conn{rec: c.rec}, nil
}

func (c connector) Driver() driver.Driver {
	return recorderDriver{rec: c.rec}
}

type recorderDriver struct {
	rec *Recorder
}

func (d recorderDriver) Open(string) (driver.Conn, error) {
	return &conn{rec: d.rec}, nil
}

type conn struct {
	rec *Recorder
}

func (c *conn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("storagetest: prepared statements are not supported")
}

func (c *conn) Close() error { return nil }

func (c *conn) Begin() (driver.Tx, error) { return tx{}, nil }

// CheckNamedValue пропускает аргументы как есть, чтобы тесты видели исходные значения
func (c *conn) CheckNamedValue(*driver.NamedValue) error { return nil }

func (c *conn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	if err := c.rec.record(query, args); err != nil {
		return nil, err
	}
	return driver.RowsAffected(c.rec.rowsAffected()), nil
}

func (c *conn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	if err := c.rec.record(query, args); err != nil {
		return nil, err
	}
	return c.rec.result(), nil
}

type tx struct{}

func (tx) Commit() error   { return nil }
func (tx) Rollback() error { return nil }

type rows struct {
	columns []string
	values  [][]driver.Value
	pos     int
}

func (r *rows) Columns() []string { return r.columns }

func (r *rows) Close() error { return nil }

func (r *rows) Next(dest []driver.Value) error {
	if r.pos >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.pos])
	r.pos++
	return nil
}
