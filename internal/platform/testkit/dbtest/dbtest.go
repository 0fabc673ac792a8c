// Package dbtest provides a transaction runner for service tests that bind fake repos
package dbtest

import (
	"context"
	"errors"
	"sync"

	"hangman/internal/platform/store"
)

// ErrDirect is returned by queries issued outside a bound repo
var ErrDirect = errors.New("dbtest: direct query")

// Tx runs fn in place and counts transactions
// Fail is returned after fn succeeds, one entry per transaction
type Tx struct {
	mu    sync.Mutex
	calls int
	Fail  []error
}

// Calls returns how many transactions were started
func (t *Tx) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

func (t *Tx) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	if err := fn(t); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.Fail) > 0 {
		err := t.Fail[0]
		t.Fail = t.Fail[1:]
		return err
	}
	return nil
}

func (t *Tx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, ErrDirect }
func (t *Tx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, ErrDirect }
func (t *Tx) QueryRow(context.Context, string, ...any) store.Row            { return errRow{} }

// Ping reports the runner as healthy
func (t *Tx) Ping(context.Context) error { return nil }

type errRow struct{}

func (errRow) Scan(...any) error { return ErrDirect }
