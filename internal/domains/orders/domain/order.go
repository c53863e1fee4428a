package domain

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates order progression. Transitions past pending are owned by
// the back-office system, not this service.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusConfirmed  Status = "confirmed"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var (
	ErrEmptyCompanyName  = errors.New("company name is required")
	ErrEmptyContactName  = errors.New("contact name is required")
	ErrEmptyMobileNumber = errors.New("mobile number is required")
	ErrEmptyBottleType   = errors.New("bottle type is required")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrEmptyAddress      = errors.New("delivery address is required")
	ErrEmptyDeliveryDate = errors.New("delivery date is required")
	ErrInvalidStatus     = errors.New("order status is invalid")
)

// Order models a delivery order for bottled water.
type Order struct {
	ID           string
	OwnerID      string
	CompanyName  string
	ContactName  string
	MobileNumber string
	// BottleType is validated against the externally configured catalog at
	// the transport boundary; the domain only requires it to be present.
	BottleType string
	Quantity   int
	// DeliveryAddress plus the optional structured sub-fields below.
	DeliveryAddress string
	City            string
	State           string
	Pincode         string
	Landmark        string
	// DeliveryDate is a calendar date (YYYY-MM-DD) carried as an opaque
	// string end to end.
	DeliveryDate string
	Notes        string
	Status       Status
	CreatedAt    time.Time
}

// NewOrder validates and constructs an Order aggregate.
func NewOrder(ownerID, companyName, contactName, mobileNumber, bottleType string, quantity int, deliveryAddress, deliveryDate string) (*Order, error) {
	order := &Order{
		OwnerID:         strings.TrimSpace(ownerID),
		CompanyName:     strings.TrimSpace(companyName),
		ContactName:     strings.TrimSpace(contactName),
		MobileNumber:    strings.TrimSpace(mobileNumber),
		BottleType:      strings.TrimSpace(bottleType),
		Quantity:        quantity,
		DeliveryAddress: strings.TrimSpace(deliveryAddress),
		DeliveryDate:    strings.TrimSpace(deliveryDate),
		Status:          StatusPending,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.CompanyName) == "" {
		return ErrEmptyCompanyName
	}
	if strings.TrimSpace(o.ContactName) == "" {
		return ErrEmptyContactName
	}
	if strings.TrimSpace(o.MobileNumber) == "" {
		return ErrEmptyMobileNumber
	}
	if strings.TrimSpace(o.BottleType) == "" {
		return ErrEmptyBottleType
	}
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if strings.TrimSpace(o.DeliveryAddress) == "" {
		return ErrEmptyAddress
	}
	if strings.TrimSpace(o.DeliveryDate) == "" {
		return ErrEmptyDeliveryDate
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// UpdateStatus ensures only known states are accepted and defaults to pending.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusPending
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusConfirmed, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}
