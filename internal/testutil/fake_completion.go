package testutil

import (
	"context"
	"sync"
)

// FakeCompletion implements completion.Client with a canned response.
type FakeCompletion struct {
	mu      sync.Mutex
	Answer  string
	Err     error
	Prompts []string
}

func NewFakeCompletion(answer string) *FakeCompletion {
	return &FakeCompletion{Answer: answer}
}

func (f *FakeCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Answer, nil
}
