package messaging

import (
	"context"
)

// Pusher is the opaque push-message capability: it delivers text or a
// document to a recipient and returns a provider delivery ID.
type Pusher interface {
	SendText(ctx context.Context, recipient, text string) (string, error)
	SendDocument(ctx context.Context, recipient, filename string, data []byte) (string, error)
}
