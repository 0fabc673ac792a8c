package domain

import "context"

// EventSink receives finished games for analytics, rows are in column order
type EventSink interface {
	Insert(ctx context.Context, table string, rows [][]any) error
}

// ServicePort is the games service contract
type ServicePort interface {
	Record(ctx context.Context, userID string, in RecordInput) (RecordResult, error)
	History(ctx context.Context, userID string, limit int) ([]Game, error)
}
