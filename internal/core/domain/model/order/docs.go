// Package order provides the pending-order model of the dispatch service.
//
// The package includes:
//   - Order: an immutable delivery request (client order ID + customer location)
//   - Queue: a strict first-in-first-out buffer of orders awaiting processing
//
// Key rules:
//   - Dequeue always removes the earliest inserted remaining order
//   - No order is handed out twice; the relative order of the rest is preserved
//   - An empty queue is a normal state reported through Dequeue's ok result
//   - Orders are independent of the route graph
package order
