package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/t-tkm/rcon-resolver/internal/core/ports"
)

const (
	defaultRateLimitRPS = 20
	minRateLimitRPS     = 1
	maxRateLimitRPS     = 100
)

// Limiter bounds the rate of outbound AWS API calls. The pipeline is
// serial anyway; the limiter keeps repeated invocations from hammering
// the API.
type Limiter struct {
	l *rate.Limiter
}

func New(rps int, logger ports.Logger) *Limiter {
	limitValue := defaultRateLimitRPS
	switch {
	case rps >= minRateLimitRPS && rps <= maxRateLimitRPS:
		limitValue = rps
	case rps != 0:
		logger.Warnf(context.Background(), "Invalid AWS API RPS configured (%d), using default %d RPS. Valid range: %d-%d.",
			rps, defaultRateLimitRPS, minRateLimitRPS, maxRateLimitRPS)
	}

	return &Limiter{l: rate.NewLimiter(rate.Limit(limitValue), limitValue)}
}

func (lm *Limiter) Wait(ctx context.Context, logger ports.Logger) error {
	err := lm.l.Wait(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warnf(ctx, "Error waiting for AWS API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
