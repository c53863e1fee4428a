package application

import (
	"errors"
	"fmt"

	"github.com/amrutdhara/orders-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCompanyName) ||
		errors.Is(err, domain.ErrEmptyContactName) ||
		errors.Is(err, domain.ErrEmptyMobileNumber) ||
		errors.Is(err, domain.ErrEmptyBottleType) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrEmptyAddress) ||
		errors.Is(err, domain.ErrEmptyDeliveryDate) ||
		errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
