package dashboard

import (
	"context"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

// Invalidator drops cached entries.
type Invalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// Events after which the cached summary no longer matches the database.
var staleOn = map[string]bool{
	events.PaymentRecorded:     true,
	events.PaymentRefunded:     true,
	events.MembershipCreated:   true,
	events.MembershipCancelled: true,
	events.MembershipExpired:   true,
	events.InstallmentOverdue:  true,
	events.MemberCheckedIn:     true,
}

type invalidatingPublisher struct {
	next  events.Publisher
	cache Invalidator
}

// InvalidateOnChange wraps next so that domain events which move summary
// figures drop the cached summary before being forwarded.
func InvalidateOnChange(next events.Publisher, cache Invalidator) events.Publisher {
	return &invalidatingPublisher{next: next, cache: cache}
}

func (p *invalidatingPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	if staleOn[routingKey] {
		if err := p.cache.Invalidate(ctx, summaryKey); err != nil {
			logger.Warn("dashboard cache invalidation failed", "event", routingKey, "error", err)
		}
	}
	if p.next == nil {
		return nil
	}
	return p.next.Publish(ctx, routingKey, payload)
}

func (p *invalidatingPublisher) Close() error {
	if p.next == nil {
		return nil
	}
	return p.next.Close()
}
