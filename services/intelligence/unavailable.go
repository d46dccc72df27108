package intelligence

import (
	"context"
	"errors"
)

// ErrGeneratorUnavailable means no text-generation provider is configured.
var ErrGeneratorUnavailable = errors.New("text generation provider unavailable")

// UnavailableGenerator stands in when no API key is configured. Every call
// fails, so the chat service answers with its fallback string.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Generate(context.Context, string) (string, error) {
	return "", ErrGeneratorUnavailable
}
