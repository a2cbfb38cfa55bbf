package backend

import (
	"context"
	"log"
	"time"

	"emily-backend/internal/models"
)

// Retrying decorates a Generator with bounded retries and linear backoff
// (base, 2*base, 3*base ...). After exhausting the attempts the last error is
// returned unchanged.
type Retrying struct {
	inner    Generator
	attempts int
	base     time.Duration
}

func WithRetry(inner Generator, attempts int, base time.Duration) *Retrying {
	if attempts < 1 {
		attempts = 1
	}
	return &Retrying{inner: inner, attempts: attempts, base: base}
}

func (r *Retrying) Generate(ctx context.Context, message string, history []models.Message) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		reply, err := r.inner.Generate(ctx, message, history)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if attempt == r.attempts {
			break
		}
		log.Printf("[backend] attempt %d/%d failed: %v", attempt, r.attempts, err)

		select {
		case <-ctx.Done():
			return "", transportError(ctx.Err())
		case <-time.After(time.Duration(attempt) * r.base):
		}
	}
	return "", lastErr
}
