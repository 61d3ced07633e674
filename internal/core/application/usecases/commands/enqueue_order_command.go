package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrEnqueueOrderCommandIsNotConstructed = errors.New(
		"EnqueueOrderCommand must be created via NewEnqueueOrderCommand constructor",
	)
)

// EnqueueOrderCommand puts a delivery order at the tail of the processing queue.
// The order ID comes from the client and may repeat.
type EnqueueOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          string
	customerLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewEnqueueOrderCommand validates that both fields are present.
func NewEnqueueOrderCommand(orderID, customerLocation string) (EnqueueOrderCommand, error) {
	cmd := EnqueueOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerLocation(customerLocation),
	); err != nil {
		return EnqueueOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EnqueueOrderCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueOrderCommandIsNotConstructed)
}

func (c EnqueueOrderCommand) OrderID() string {
	return c.orderID
}

func (c EnqueueOrderCommand) CustomerLocation() kernel.Location {
	return c.customerLocation
}

func (c *EnqueueOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *EnqueueOrderCommand) setCustomerLocation(customerLocation string) error {
	loc, err := kernel.NewLocation(customerLocation)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerLocation", err)
	}
	c.customerLocation = loc
	return nil
}
