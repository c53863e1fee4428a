package ports

import (
	"context"

	"github.com/amrutdhara/orders-api/internal/domains/orders/domain"
)

// Notifier alerts the operator about a freshly stored order. Implementations
// must swallow their own failures; callers never observe an outcome.
type Notifier interface {
	OrderPlaced(ctx context.Context, order *domain.Order)
}

// NoopNotifier is a safe default when no channels are configured.
var NoopNotifier Notifier = noopNotifier{}

type noopNotifier struct{}

func (noopNotifier) OrderPlaced(_ context.Context, _ *domain.Order) {}
