package messaging

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/cooperativa/facturabot/internal/config"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/httpclient"
	"github.com/cooperativa/facturabot/internal/logger"
)

// whatsappPusher delivers messages through the cooperative's WhatsApp
// business gateway. Documents go out in two steps: upload the media,
// then send a message referencing the media ID.
type whatsappPusher struct {
	cfg    config.MessagingConfig
	client httpclient.Client
	logger *logger.Logger
}

// NewWhatsAppPusher builds the HTTP-backed Pusher.
func NewWhatsAppPusher(cfg *config.Configuration, client httpclient.Client, log *logger.Logger) Pusher {
	return &whatsappPusher{
		cfg:    cfg.Messaging,
		client: client,
		logger: log,
	}
}

type textMessage struct {
	To   string `json:"to"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

type mediaUpload struct {
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type documentMessage struct {
	To       string `json:"to"`
	Type     string `json:"type"`
	Document struct {
		MediaID  string `json:"media_id"`
		FileName string `json:"file_name"`
	} `json:"document"`
}

type sendResponse struct {
	ID string `json:"id"`
}

func (p *whatsappPusher) SendText(ctx context.Context, recipient, text string) (string, error) {
	if !p.cfg.Enabled {
		p.logger.Debugw("messaging disabled, dropping text", "recipient", recipient)
		return "", nil
	}

	msg := textMessage{To: recipient, Type: "text"}
	msg.Text.Body = text

	return p.post(ctx, "/messages", msg)
}

func (p *whatsappPusher) SendDocument(ctx context.Context, recipient, filename string, data []byte) (string, error) {
	if !p.cfg.Enabled {
		p.logger.Debugw("messaging disabled, dropping document", "recipient", recipient, "file", filename)
		return "", nil
	}

	mediaID, err := p.post(ctx, "/media", mediaUpload{
		FileName: filename,
		MimeType: "application/pdf",
		Data:     base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return "", err
	}

	msg := documentMessage{To: recipient, Type: "document"}
	msg.Document.MediaID = mediaID
	msg.Document.FileName = filename

	return p.post(ctx, "/messages", msg)
}

func (p *whatsappPusher) post(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", ierr.WithError(err).Mark(ierr.ErrSystem)
	}

	resp, err := p.client.Send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    p.cfg.BaseURL + path,
		Headers: map[string]string{
			"Authorization": "Bearer " + p.cfg.Token,
		},
		Body: body,
	})
	if err != nil {
		return "", err
	}

	var parsed sendResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return "", ierr.WithError(err).
			WithHint("messaging gateway returned an unexpected payload").
			Mark(ierr.ErrHTTPClient)
	}

	return parsed.ID, nil
}
