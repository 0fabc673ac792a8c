package store

import (
	"context"
	"time"

	perr "hangman/internal/platform/errors"
	"hangman/internal/platform/logger"
)

// TxAttempts bounds RunAsUser retries on serialization failures and deadlocks
const TxAttempts = 3

// RunAsUser tags ctx with the player id and runs fn in a transaction
// the whole transaction is retried while the failure is transient contention
func RunAsUser(ctx context.Context, tx TxRunner, userID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = logger.WithUser(ctx, userID)
	var err error
	for attempt := 1; attempt <= TxAttempts; attempt++ {
		err = tx.Tx(ctx, func(q RowQuerier) error { return fn(ctx, q) })
		if err == nil || !perr.IsRetryable(err) || attempt == TxAttempts {
			return err
		}
		logger.C(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retrying transaction")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 25 * time.Millisecond):
		}
	}
	return err
}
