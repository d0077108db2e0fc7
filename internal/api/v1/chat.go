package v1

import (
	"context"
	"net/http"

	"github.com/cooperativa/facturabot/internal/api/dto"
	"github.com/cooperativa/facturabot/internal/config"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/idempotency"
	"github.com/cooperativa/facturabot/internal/logger"
	"github.com/cooperativa/facturabot/internal/sentry"
	"github.com/cooperativa/facturabot/internal/service"
	"github.com/cooperativa/facturabot/internal/types"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	cfg    *config.Configuration
	chat   service.ChatService
	dedupe *idempotency.Checker
	sentry *sentry.Service
	logger *logger.Logger
}

func NewChatHandler(
	cfg *config.Configuration,
	chat service.ChatService,
	dedupe *idempotency.Checker,
	sentryService *sentry.Service,
	logger *logger.Logger,
) *ChatHandler {
	return &ChatHandler{
		cfg:    cfg,
		chat:   chat,
		dedupe: dedupe,
		sentry: sentryService,
		logger: logger,
	}
}

// ReceiveMessage is the webhook the messaging gateway calls for each
// inbound chat message. Redelivered messages are acknowledged without
// reprocessing.
func (h *ChatHandler) ReceiveMessage(c *gin.Context) {
	var msg dto.InboundMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid message payload").
			Mark(ierr.ErrValidation))
		return
	}

	if h.dedupe.Seen(msg.MessageID) {
		h.logger.Infow("duplicate webhook delivery",
			"message_id", msg.MessageID,
			"request_id", types.GetRequestID(c.Request.Context()))
		c.JSON(http.StatusOK, dto.ChatReply{Outcome: types.OutcomeDuplicate})
		return
	}

	ctx := c.Request.Context()
	if timeout := h.cfg.Server.RequestTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reply, err := h.chat.ProcessMessage(ctx, &msg)
	if err != nil {
		h.sentry.CaptureException(err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
