package mapper

import (
	"time"

	ordersdomain "github.com/amrutdhara/orders-api/internal/domains/orders/domain"
)

// OrderRequest is the transport-layer shape accepted by the create handler.
// A client-supplied order_status is parsed but never honored.
type OrderRequest struct {
	CompanyName     string `json:"company_name" binding:"required"`
	ContactName     string `json:"contact_name" binding:"required"`
	MobileNumber    string `json:"mobile_number" binding:"required"`
	BottleType      string `json:"bottle_type" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	City            string `json:"city"`
	State           string `json:"state"`
	Pincode         string `json:"pincode"`
	Landmark        string `json:"landmark"`
	DeliveryDate    string `json:"delivery_date" binding:"required"`
	Notes           string `json:"notes"`
	OrderStatus     string `json:"order_status"`
}

// OrderResponse is the transport representation of a stored order.
type OrderResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	CompanyName     string `json:"company_name"`
	ContactName     string `json:"contact_name"`
	MobileNumber    string `json:"mobile_number"`
	BottleType      string `json:"bottle_type"`
	Quantity        int    `json:"quantity"`
	DeliveryAddress string `json:"delivery_address"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	Pincode         string `json:"pincode,omitempty"`
	Landmark        string `json:"landmark,omitempty"`
	DeliveryDate    string `json:"delivery_date"`
	Notes           string `json:"notes,omitempty"`
	OrderStatus     string `json:"order_status"`
	CreatedAt       string `json:"created_at"`
}

// ToDomainOrder converts a transport order into the domain model. The status
// is always pending; the service enforces it again.
func ToDomainOrder(req OrderRequest) *ordersdomain.Order {
	return &ordersdomain.Order{
		CompanyName:     req.CompanyName,
		ContactName:     req.ContactName,
		MobileNumber:    req.MobileNumber,
		BottleType:      req.BottleType,
		Quantity:        req.Quantity,
		DeliveryAddress: req.DeliveryAddress,
		City:            req.City,
		State:           req.State,
		Pincode:         req.Pincode,
		Landmark:        req.Landmark,
		DeliveryDate:    req.DeliveryDate,
		Notes:           req.Notes,
		Status:          ordersdomain.StatusPending,
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) OrderResponse {
	if order == nil {
		return OrderResponse{}
	}
	return OrderResponse{
		ID:              order.ID,
		UserID:          order.OwnerID,
		CompanyName:     order.CompanyName,
		ContactName:     order.ContactName,
		MobileNumber:    order.MobileNumber,
		BottleType:      order.BottleType,
		Quantity:        order.Quantity,
		DeliveryAddress: order.DeliveryAddress,
		City:            order.City,
		State:           order.State,
		Pincode:         order.Pincode,
		Landmark:        order.Landmark,
		DeliveryDate:    order.DeliveryDate,
		Notes:           order.Notes,
		OrderStatus:     string(order.Status),
		CreatedAt:       order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainOrders converts a list preserving order.
func FromDomainOrders(orders []*ordersdomain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}
