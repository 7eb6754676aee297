package ports

import (
	"context"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

// AnalyticsSink receives recorded events for forwarding. Publish must not block.
type AnalyticsSink interface {
	Publish(event domain.AnalyticsEvent) error
}

// AnalyticsRepository persists forwarded events.
type AnalyticsRepository interface {
	InsertEvent(ctx context.Context, event domain.AnalyticsEvent) error
}
