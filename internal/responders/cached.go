package responders

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/surveyor-service/internal/cache"
)

// Cached memoizes another responder's answers. A cache failure never fails
// the call; it only costs a call to the wrapped responder.
type Cached struct {
	next   Responder
	cache  cache.CacheService
	ttl    time.Duration
	logger *slog.Logger
}

func NewCached(next Responder, store cache.CacheService, ttl time.Duration, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{
		next:   next,
		cache:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *Cached) Respond(ctx context.Context, respondent, prompt string) (string, error) {
	key := cache.ResponseKey(respondent, prompt)

	var answer string
	err := c.cache.Get(ctx, key, &answer)
	if err == nil {
		c.logger.DebugContext(ctx, "Answer served from cache", "respondent", respondent)
		return answer, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.WarnContext(ctx, "Answer cache unavailable", "respondent", respondent, "error", err)
	}

	answer, err = c.next.Respond(ctx, respondent, prompt)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, key, answer, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "Failed to cache answer", "respondent", respondent, "error", err)
	}
	return answer, nil
}
