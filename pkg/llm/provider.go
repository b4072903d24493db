package llm

import (
	"context"
)

// Message is one turn of a conversation in provider-agnostic form.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option tweaks a single call without changing the provider's defaults.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the contract every model backend satisfies.
type LLMProvider interface {
	// Chat sends a conversation to the model and returns the reply text.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt, for callers with no history to carry.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
