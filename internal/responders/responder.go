// Package responders provides the callables that answer survey items on
// behalf of respondents.
package responders

import (
	"context"
)

// Responder maps a respondent and a prompt to answer text. Implementations
// may block; the surveyor never retries a failed call.
type Responder interface {
	Respond(ctx context.Context, respondent, prompt string) (string, error)
}

// ResponderFunc adapts an ordinary function to a Responder
type ResponderFunc func(ctx context.Context, respondent, prompt string) (string, error)

func (f ResponderFunc) Respond(ctx context.Context, respondent, prompt string) (string, error) {
	return f(ctx, respondent, prompt)
}

// Constant answers every prompt with the same text
type Constant string

func (c Constant) Respond(context.Context, string, string) (string, error) {
	return string(c), nil
}
