package domain

import (
	"context"

	"hangman/internal/core/catalog"
)

// ServicePort is the word bank service contract
type ServicePort interface {
	Preview(in PreviewInput) Preview
	Create(ctx context.Context, userID string, in CreateInput) (Bank, error)
	List(ctx context.Context, userID string) ([]Bank, error)
	Get(ctx context.Context, userID, id string) (Bank, error)
	Delete(ctx context.Context, userID, id string) error
	Defaults() []catalog.Category
	Play(ctx context.Context, userID string, q PlayQuery) (Pool, error)
}
