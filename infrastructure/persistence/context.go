package persistence

import (
	"context"

	"gorm.io/gorm"
)

type contextKey string

const (
	txKey        contextKey = "persistence_tx"
	requestIDKey contextKey = "persistence_request_id"
)

// ContextWithTx stores a transaction handle in the context so that
// repositories participate in the surrounding unit of work.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext returns the transaction handle, or nil when the
// operation runs outside a unit of work.
func TxFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// ContextWithRequestID propagates the request ID into persistence
// logging.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request ID, or empty.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
