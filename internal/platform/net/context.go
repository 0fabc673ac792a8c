// Package net carries request-scoped identity and the transport error envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"

	"hangman/internal/platform/logger"
)

type ctxKey string

const keyUserID ctxKey = "user_id"

// WithRequest stores reqID where chimw.GetReqID finds it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// WithUser stores the authenticated player id, also tagging request logs
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, keyUserID, userID)
	return logger.WithUser(ctx, userID)
}

// RequestID returns the request id on ctx, "" if none
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// UserID returns the player id on ctx, "" if the request is anonymous
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(keyUserID).(string)
	return v
}
