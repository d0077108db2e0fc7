package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cooperativa/facturabot/internal/api/dto"
	"github.com/cooperativa/facturabot/internal/domain/document"
	"github.com/cooperativa/facturabot/internal/domain/ledger"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/intent"
	"github.com/cooperativa/facturabot/internal/types"
)

// User-facing replies. The redirect for new-connection requests is a
// fixed deterministic message, not an error path.
const (
	replyNewService = "Para dar de alta un nuevo servicio tenés que acercarte a la " +
		"administración de la cooperativa con tu DNI y un comprobante de domicilio. " +
		"Por este medio solo puedo enviarte facturas."
	replyMissingAccount = "Para buscar tu factura necesito tu número de cuenta. " +
		"Escribime por ejemplo: \"quiero mi factura, cuenta 6370\"."
	replyNotFound = "No encontré una factura con esos datos. ¿Podés verificar el " +
		"número de cuenta y el mes? Si el problema sigue, comunicate con la oficina."
	replyUnavailable = "Disculpá, en este momento no puedo acceder a las facturas. " +
		"Probá de nuevo en un rato o comunicate con la oficina."
	replyQuotaExceeded = "Ya te envié varias facturas este mes. Para pedidos " +
		"adicionales, comunicate con la administración."
	replyDelivered = "¡Listo! Te envié la factura de %s (%s)."
)

// ChatService resolves one inbound chat message into a reply, pushing
// any located document through the messaging channel.
type ChatService interface {
	ProcessMessage(ctx context.Context, msg *dto.InboundMessage) (*dto.ChatReply, error)
}

type chatService struct {
	ServiceParams
	locator LocatorService
}

func NewChatService(params ServiceParams, locator LocatorService) ChatService {
	return &chatService{
		ServiceParams: params,
		locator:       locator,
	}
}

func (s *chatService) ProcessMessage(ctx context.Context, msg *dto.InboundMessage) (*dto.ChatReply, error) {
	ctx = types.SetRecipientID(ctx, msg.From)

	// New-connection requests are lexically close to billing lookups
	// ("quiero internet" vs "quiero mi factura de internet") but must
	// never reach the document search.
	if intent.IsNewServiceRequest(msg.Text) {
		return s.reply(ctx, msg.From, types.OutcomeNewServiceRedirect, replyNewService), nil
	}

	extracted := intent.Extract(msg.Text)

	if !extracted.HasAccountNumber() {
		if intent.MentionsInvoice(msg.Text) {
			return s.reply(ctx, msg.From, types.OutcomeMissingAccount, replyMissingAccount), nil
		}
		return s.relayToAssistant(ctx, msg)
	}

	if outcome := s.checkQuota(ctx, msg.From); outcome != nil {
		return outcome, nil
	}

	req := &dto.FindDocumentRequest{
		AccountNumber: extracted.AccountNumber,
		Type:          extracted.Type,
	}
	if extracted.Pinned() {
		now := types.CurrentBillingPeriod(time.Now())
		period := now
		if extracted.HasMonth() {
			period.Month = extracted.Month
		}
		if extracted.HasYear() {
			period.Year = extracted.Year
		}
		req.Period = &period
	}

	match, err := s.locator.FindDocument(ctx, req)
	if err != nil {
		if ierr.IsNotFound(err) {
			return s.reply(ctx, msg.From, types.OutcomeNotFound, replyNotFound), nil
		}
		if ierr.IsValidation(err) {
			return s.reply(ctx, msg.From, types.OutcomeMissingAccount, replyMissingAccount), nil
		}
		if ierr.IsTransport(err) {
			s.Logger.Errorw("invoice search failed",
				"recipient", msg.From, "account", extracted.AccountNumber, "error", err)
			return s.reply(ctx, msg.From, types.OutcomeError, replyUnavailable), nil
		}
		return nil, err
	}

	return s.deliver(ctx, msg.From, extracted.AccountNumber, match)
}

// deliver downloads the matched document, pushes it to the recipient
// and records the lookup. The ledger write is best-effort telemetry: a
// failure is logged, never surfaced.
func (s *chatService) deliver(ctx context.Context, recipient, accountNumber string, match *document.Match) (*dto.ChatReply, error) {
	data, err := s.DocRepo.Download(ctx, match.Document)
	if err != nil {
		s.Logger.Errorw("invoice download failed",
			"recipient", recipient, "file", match.Document.Name, "error", err)
		return s.reply(ctx, recipient, types.OutcomeError, replyUnavailable), nil
	}

	deliveryID, err := s.Pusher.SendDocument(ctx, recipient, match.Document.Name, data)
	if err != nil {
		s.Logger.Errorw("invoice delivery failed",
			"recipient", recipient, "file", match.Document.Name, "error", err)
		return s.reply(ctx, recipient, types.OutcomeError, replyUnavailable), nil
	}

	// The ledger only records documents that actually went out.
	record := ledger.NewInvoiceRequest(recipient, accountNumber, match.Document.Name, match.Period)
	if err := s.LedgerRepo.Create(ctx, record); err != nil {
		s.Logger.Errorw("ledger write failed, continuing",
			"recipient", recipient, "account", accountNumber, "error", err)
	}

	text := fmt.Sprintf(replyDelivered, match.Period, match.Type)
	out := s.reply(ctx, recipient, types.OutcomeDocumentDelivered, text)
	out.Document = &dto.DeliveredDocument{
		FileName:   match.Document.Name,
		Type:       match.Type,
		Period:     match.Period,
		DeliveryID: deliveryID,
	}
	return out, nil
}

// checkQuota returns a refusal reply when the recipient has exhausted
// the monthly limit. Count failures fail open: throttling telemetry
// must not block deliveries.
func (s *chatService) checkQuota(ctx context.Context, recipient string) *dto.ChatReply {
	limit := s.Config.Quota.MonthlyLimit
	if limit <= 0 {
		return nil
	}

	now := time.Now().UTC()
	count, err := s.LedgerRepo.CountForRecipientInMonth(ctx, recipient, now.Month(), now.Year())
	if err != nil {
		s.Logger.Errorw("quota count failed, allowing request",
			"recipient", recipient, "error", err)
		return nil
	}

	if count >= limit {
		return s.reply(ctx, recipient, types.OutcomeQuotaExceeded, replyQuotaExceeded)
	}
	return nil
}

// relayToAssistant hands non-billing chatter to the completion
// capability.
func (s *chatService) relayToAssistant(ctx context.Context, msg *dto.InboundMessage) (*dto.ChatReply, error) {
	answer, err := s.Completion.Complete(ctx, msg.Text)
	if err != nil {
		if ierr.IsInvalidOperation(err) {
			// Assistant disabled: steer the user to what the bot can do
			return s.reply(ctx, msg.From, types.OutcomeMissingAccount, replyMissingAccount), nil
		}
		s.Logger.Errorw("completion failed", "recipient", msg.From, "error", err)
		return s.reply(ctx, msg.From, types.OutcomeError, replyUnavailable), nil
	}
	return s.reply(ctx, msg.From, types.OutcomeAssistant, answer), nil
}

// reply pushes the text back through the messaging channel best-effort
// and builds the reply DTO.
func (s *chatService) reply(ctx context.Context, recipient string, outcome types.ChatOutcome, text string) *dto.ChatReply {
	if _, err := s.Pusher.SendText(ctx, recipient, text); err != nil {
		s.Logger.Warnw("reply push failed", "recipient", recipient, "error", err)
	}
	return &dto.ChatReply{Outcome: outcome, Text: text}
}
