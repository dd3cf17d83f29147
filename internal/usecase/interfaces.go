package usecase

import (
	"context"

	"github.com/xavierca1/crm-api/internal/infra/queue"
)

// EventPublisherInterface publica eventos de negócio no broker.
type EventPublisherInterface interface {
	PublishDealEvent(ctx context.Context, event queue.DealEvent) error
}
