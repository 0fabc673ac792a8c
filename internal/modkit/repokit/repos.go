// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"hangman/internal/platform/store"
)

type (
	// Queryer is the minimal read and write surface for SQL repos
	Queryer = store.RowQuerier

	// TxRunner can execute a function inside a transaction
	TxRunner = store.TxRunner

	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// InTx binds a repo to the transaction and runs fn for userID, retrying transient contention
func InTx[T any](ctx context.Context, tx TxRunner, b Binder[T], userID string, fn func(ctx context.Context, repo T) error) error {
	return store.RunAsUser(ctx, tx, userID, func(ctx context.Context, q store.RowQuerier) error {
		return fn(ctx, MustBind(b, q))
	})
}
