package dto

import (
	"github.com/cooperativa/facturabot/internal/types"
)

// InboundMessage is one chat message delivered by the messaging
// gateway's webhook.
type InboundMessage struct {
	MessageID string `json:"message_id" binding:"required"`
	From      string `json:"from" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// DeliveredDocument describes the invoice that was pushed to the user.
type DeliveredDocument struct {
	FileName   string              `json:"file_name"`
	Type       types.DocumentType  `json:"type"`
	Period     types.BillingPeriod `json:"period"`
	DeliveryID string              `json:"delivery_id,omitempty"`
}

// ChatReply is the resolution of one inbound message.
type ChatReply struct {
	Outcome  types.ChatOutcome  `json:"outcome"`
	Text     string             `json:"text"`
	Document *DeliveredDocument `json:"document,omitempty"`
}
