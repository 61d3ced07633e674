package http

import (
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/routing"
)

// Request and response bodies. Field names follow the public JSON contract.

type NewOrder struct {
	OrderID          string `json:"orderId"`
	CustomerLocation string `json:"customerLocation"`
}

type NewRoute struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type Order struct {
	OrderID          string `json:"orderId"`
	CustomerLocation string `json:"customerLocation"`
}

type RouteLeg struct {
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Graph maps a source location to its outgoing legs.
type Graph map[string][]RouteLeg

type OrderAdded struct {
	Message     string  `json:"message"`
	OrdersQueue []Order `json:"ordersQueue"`
}

type OrderProcessed struct {
	Message string `json:"message"`
	Order   *Order `json:"order,omitempty"`
}

type RouteAdded struct {
	Message string `json:"message"`
	Graph   Graph  `json:"graph"`
}

type ShortestRoute struct {
	Message  string   `json:"message"`
	Distance *float64 `json:"distance,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrder(o order.Order) Order {
	return Order{
		OrderID:          o.ID(),
		CustomerLocation: o.CustomerLocation().ID(),
	}
}

func toOrders(orders []order.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toPendingOrders(orders []queries.GetPendingOrdersQueryResponse) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, Order{
			OrderID:          o.OrderID,
			CustomerLocation: o.CustomerLocation.ID(),
		})
	}
	return out
}

func toGraph(edges []routing.Edge) Graph {
	g := make(Graph)
	for _, e := range edges {
		from := e.From.ID()
		g[from] = append(g[from], RouteLeg{
			To:       e.To.ID(),
			Distance: e.Distance.Value(),
		})
	}
	return g
}
