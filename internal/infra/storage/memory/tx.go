// Package memory is an in-process storage driver for local runs and tests.
// Records are kept behind per-repository RWMutexes; transactional units are
// serialized by TxManager, which also rolls back writes made by a failed unit.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoTransaction возвращается, когда операция требует транзакцию
var ErrNoTransaction = errors.New("memory: operation requires a transaction")

type txKey struct{}

type txState struct {
	undo []func()
}

func txFromContext(ctx context.Context) (*txState, bool) {
	st, ok := ctx.Value(txKey{}).(*txState)
	return st, ok
}

// inTx сообщает, выполняется ли код внутри транзакции TxManager
func inTx(ctx context.Context) bool {
	_, ok := txFromContext(ctx)
	return ok
}

// onRollback регистрирует компенсирующее действие для текущей транзакции
func onRollback(ctx context.Context, fn func()) {
	if st, ok := txFromContext(ctx); ok {
		st.undo = append(st.undo, fn)
	}
}

// TxManager сериализует транзакционные операции одним мьютексом писателя
type TxManager struct {
	mu sync.Mutex
}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	st := &txState{}
	defer func() {
		if p := recover(); p != nil {
			st.rollback()
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, st)); err != nil {
		st.rollback()
		return err
	}
	return nil
}

func (st *txState) rollback() {
	for i := len(st.undo) - 1; i >= 0; i-- {
		st.undo[i]()
	}
	st.undo = nil
}

type clock func() time.Time
