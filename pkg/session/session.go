// Package session carries the authenticated identity through a context.
package session

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

var uidContextKey = ctxKey{}

func WithUserID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidContextKey, uid)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	uid, ok := ctx.Value(uidContextKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		return uuid.UUID{}, false
	}
	return uid, true
}
