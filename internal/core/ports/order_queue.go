package ports

import (
	"dispatch/internal/core/domain/model/order"
)

// OrderQueue is the FIFO of pending orders as seen by the use cases.
// *order.Queue implements it.
type OrderQueue interface {
	// Enqueue appends the order and returns the queue contents, head first.
	Enqueue(o order.Order) []order.Order

	// Dequeue removes the head; ok is false when the queue is empty.
	Dequeue() (o order.Order, ok bool)

	// Snapshot returns the pending orders, head first.
	Snapshot() []order.Order
}
