package domain

import "context"

// Resolver maps the identity provider uid to the player id
type Resolver interface {
	Resolve(ctx context.Context, externalUID string) (userID string, err error)
}

// ServicePort is the users service contract
type ServicePort interface {
	Resolver
	Register(ctx context.Context, externalUID string, in RegisterInput) (RegisterResult, error)
	Stats(ctx context.Context, userID string) (Stats, error)
	SetActiveWordBank(ctx context.Context, userID string, in ActiveBankInput) (Stats, error)
}
