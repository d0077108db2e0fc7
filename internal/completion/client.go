package completion

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cooperativa/facturabot/internal/config"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/httpclient"
	"github.com/cooperativa/facturabot/internal/logger"
)

// systemPrompt frames the assistant for messages that are not invoice
// requests. Kept short: the provider bills per token.
const systemPrompt = "Sos el asistente virtual de una cooperativa de servicios. " +
	"Respondé en español, de forma breve y cordial. Si la consulta requiere " +
	"un trámite, indicá que deben acercarse a la administración."

// Client is the opaque text-completion capability: prompt in, text out.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type httpCompletion struct {
	cfg    config.CompletionConfig
	client httpclient.Client
	logger *logger.Logger
}

// NewClient builds a completion client over the configured chat
// completions endpoint.
func NewClient(cfg *config.Configuration, client httpclient.Client, log *logger.Logger) Client {
	return &httpCompletion{
		cfg:    cfg.Completion,
		client: client,
		logger: log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *httpCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.cfg.Enabled {
		return "", ierr.NewError("completion is disabled").
			Mark(ierr.ErrInvalidOperation)
	}

	payload, err := json.Marshal(completionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", ierr.WithError(err).Mark(ierr.ErrSystem)
	}

	resp, err := c.client.Send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.cfg.BaseURL + "/chat/completions",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.cfg.APIKey,
		},
		Body: payload,
	})
	if err != nil {
		return "", err
	}

	var parsed completionResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return "", ierr.WithError(err).
			WithHint("completion provider returned an unexpected payload").
			Mark(ierr.ErrHTTPClient)
	}

	if len(parsed.Choices) == 0 {
		return "", ierr.NewError("completion provider returned no choices").
			Mark(ierr.ErrHTTPClient)
	}

	return parsed.Choices[0].Message.Content, nil
}
