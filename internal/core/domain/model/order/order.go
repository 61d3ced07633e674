package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a delivery request waiting in the queue. It is an immutable value:
// it is created on enqueue and handed back unchanged on dequeue.
//
// The ID is chosen by the client and is not required to be unique. The
// customer location is not checked against the route graph.
type Order struct { //nolint:recvcheck //using for validation
	id               string
	customerLocation kernel.Location
	guard            guard.ConstructorGuard
}

// NewOrder creates an Order.
//
// Parameters:
//   - id: client-chosen order identifier (must not be empty)
//   - customerLocation: delivery destination (must be a constructed Location)
//
// Example:
//
//	o, err := order.NewOrder("o1", kernel.MustNewLocation("Loc1"))
//	if err != nil {
//	    return err
//	}
func NewOrder(id string, customerLocation kernel.Location) (Order, error) {
	o := Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerLocation(customerLocation),
	); err != nil {
		return Order{}, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the client-chosen order identifier.
func (o Order) ID() string {
	return o.id
}

// CustomerLocation returns the delivery destination.
func (o Order) CustomerLocation() kernel.Location {
	return o.customerLocation
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerLocation", err)
	}
	o.customerLocation = location
	return nil
}
