package testutil

import (
	"context"
	"fmt"
	"sync"
)

// SentText is one text message captured by the fake pusher.
type SentText struct {
	Recipient string
	Text      string
}

// SentDocument is one document captured by the fake pusher.
type SentDocument struct {
	Recipient string
	FileName  string
	Data      []byte
}

// FakePusher implements messaging.Pusher and captures everything sent.
type FakePusher struct {
	mu        sync.Mutex
	Texts     []SentText
	Documents []SentDocument

	// FailDocument, when set, makes SendDocument fail with that error.
	FailDocument error
}

func NewFakePusher() *FakePusher {
	return &FakePusher{}
}

func (p *FakePusher) SendText(ctx context.Context, recipient, text string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Texts = append(p.Texts, SentText{Recipient: recipient, Text: text})
	return fmt.Sprintf("txt_%d", len(p.Texts)), nil
}

func (p *FakePusher) SendDocument(ctx context.Context, recipient, filename string, data []byte) (string, error) {
	if p.FailDocument != nil {
		return "", p.FailDocument
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.Documents = append(p.Documents, SentDocument{Recipient: recipient, FileName: filename, Data: data})
	return fmt.Sprintf("doc_%d", len(p.Documents)), nil
}
