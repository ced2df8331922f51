package responders

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrScriptExhausted is returned when a respondent has no scripted answers
// left and no fallback is configured.
var ErrScriptExhausted = errors.New("script exhausted")

// Scripted replays a fixed queue of answers per respondent in call order
type Scripted struct {
	mu       sync.Mutex
	scripts  map[string][]string
	fallback *string
}

// NewScripted copies scripts so later changes by the caller have no effect
func NewScripted(scripts map[string][]string) *Scripted {
	s := &Scripted{scripts: make(map[string][]string, len(scripts))}
	for respondent, answers := range scripts {
		s.scripts[respondent] = append([]string(nil), answers...)
	}
	return s
}

// WithFallback sets the answer given once a respondent's queue is empty
func (s *Scripted) WithFallback(answer string) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = &answer
	return s
}

func (s *Scripted) Respond(ctx context.Context, respondent, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.scripts[respondent]
	if len(queue) == 0 {
		if s.fallback != nil {
			return *s.fallback, nil
		}
		return "", fmt.Errorf("respondent %q: %w", respondent, ErrScriptExhausted)
	}
	s.scripts[respondent] = queue[1:]
	return queue[0], nil
}

// Remaining reports how many scripted answers are left for respondent
func (s *Scripted) Remaining(respondent string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scripts[respondent])
}
