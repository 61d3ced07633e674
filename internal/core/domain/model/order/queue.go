package order

import (
	"slices"
	"sync"
)

// Queue buffers orders awaiting processing in strict FIFO order.
//
// All methods are safe for concurrent use. A single mutex serialises them, so
// an Enqueue never interleaves with a Dequeue and every order is handed out at
// most once.
type Queue struct {
	mu     sync.Mutex
	orders []Order
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends o at the tail and returns a snapshot of the whole queue,
// head first. Duplicate order IDs are accepted.
func (q *Queue) Enqueue(o Order) []Order {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.orders = append(q.orders, o)
	return slices.Clone(q.orders)
}

// Dequeue removes and returns the head of the queue. ok is false when the
// queue is empty; that is the normal "no work available" result.
func (q *Queue) Dequeue() (Order, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.orders) == 0 {
		return Order{}, false
	}

	head := q.orders[0]
	q.orders[0] = Order{}
	q.orders = q.orders[1:]
	if len(q.orders) == 0 {
		// Release the drained backing array.
		q.orders = nil
	}
	return head, true
}

// Snapshot returns a copy of the pending orders, head first.
func (q *Queue) Snapshot() []Order {
	q.mu.Lock()
	defer q.mu.Unlock()

	return slices.Clone(q.orders)
}

// Len returns the number of pending orders.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.orders)
}
