package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID   ContextKey = "ctx_request_id"
	CtxRecipientID ContextKey = "ctx_recipient_id"

	HeaderRequestID = "X-Request-ID"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

func GetRecipientID(ctx context.Context) string {
	if recipientID, ok := ctx.Value(CtxRecipientID).(string); ok {
		return recipientID
	}
	return ""
}

// SetRecipientID sets the recipient identifier in the context
func SetRecipientID(ctx context.Context, recipientID string) context.Context {
	return context.WithValue(ctx, CtxRecipientID, recipientID)
}
