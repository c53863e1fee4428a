package notification

import (
	"context"

	"github.com/amrutdhara/orders-api/internal/domains/orders/domain"
	"github.com/amrutdhara/orders-api/internal/domains/orders/ports"
	"github.com/amrutdhara/orders-api/internal/notify"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier adapts the notify dispatcher to the orders Notifier port.
type Notifier struct {
	dispatcher *notify.Dispatcher
}

func New(dispatcher *notify.Dispatcher) *Notifier {
	return &Notifier{dispatcher: dispatcher}
}

// OrderPlaced hands an immutable snapshot of the stored order to the
// dispatcher. Blocks until both channels settle; run it detached.
func (n *Notifier) OrderPlaced(ctx context.Context, order *domain.Order) {
	if n == nil || n.dispatcher == nil || order == nil {
		return
	}
	n.dispatcher.Dispatch(ctx, notify.OrderPlaced{
		OrderID:         order.ID,
		CompanyName:     order.CompanyName,
		ContactName:     order.ContactName,
		MobileNumber:    order.MobileNumber,
		BottleType:      order.BottleType,
		Quantity:        order.Quantity,
		DeliveryAddress: order.DeliveryAddress,
		DeliveryDate:    order.DeliveryDate,
		Notes:           order.Notes,
	})
}
