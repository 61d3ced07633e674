package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
)

// ProcessOrderCommand takes the oldest pending order off the queue.
// It has no parameters.
type ProcessOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewProcessOrderCommand() ProcessOrderCommand {
	return ProcessOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}
