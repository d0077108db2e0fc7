package types

// ChatOutcome classifies how an inbound message was resolved. The
// webhook layer relays it so the gateway can distinguish deliveries
// from deterministic replies.
type ChatOutcome string

const (
	OutcomeDocumentDelivered  ChatOutcome = "document_delivered"
	OutcomeNotFound           ChatOutcome = "not_found"
	OutcomeNewServiceRedirect ChatOutcome = "new_service_redirect"
	OutcomeQuotaExceeded      ChatOutcome = "quota_exceeded"
	OutcomeMissingAccount     ChatOutcome = "missing_account"
	OutcomeAssistant          ChatOutcome = "assistant"
	OutcomeDuplicate          ChatOutcome = "duplicate"
	OutcomeError              ChatOutcome = "error"
)
