// Package http exposes the dispatch use cases over HTTP with echo.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/adapters/out/graphviz"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/tevino/abool"
)

const (
	MsgOrderAdded       = "Order added successfully"
	MsgProcessingOrder  = "Processing order"
	MsgNoOrders         = "No orders to process"
	MsgRouteAdded       = "Route added successfully"
	MsgShortestRoute    = "Shortest route calculated"
	MsgNoRouteAvailable = "No route available between these locations"
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	// Command handlers
	addRouteHandler     commands.AddRouteCommandHandler
	enqueueOrderHandler commands.EnqueueOrderCommandHandler
	processOrderHandler commands.ProcessOrderCommandHandler

	// Query handlers
	shortestRouteHandler    queries.ShortestRouteQueryHandler
	getRoutesHandler        queries.GetRoutesQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler

	ready *abool.AtomicBool
}

// NewServer creates a server that reports healthy only while ready is set.
func NewServer(
	addRouteHandler commands.AddRouteCommandHandler,
	enqueueOrderHandler commands.EnqueueOrderCommandHandler,
	processOrderHandler commands.ProcessOrderCommandHandler,
	shortestRouteHandler queries.ShortestRouteQueryHandler,
	getRoutesHandler queries.GetRoutesQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	ready *abool.AtomicBool,
) *Server {
	return &Server{
		addRouteHandler:         addRouteHandler,
		enqueueOrderHandler:     enqueueOrderHandler,
		processOrderHandler:     processOrderHandler,
		shortestRouteHandler:    shortestRouteHandler,
		getRoutesHandler:        getRoutesHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		ready:                   ready,
	}
}

// AddOrder handles POST /add-order.
func (s *Server) AddOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewEnqueueOrderCommand(body.OrderID, body.CustomerLocation)
	if err != nil {
		return handlerError(ctx, err)
	}

	pending, err := s.enqueueOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderAdded{
		Message:     MsgOrderAdded,
		OrdersQueue: toOrders(pending),
	})
}

// ProcessOrder handles POST /process-order. An empty queue is a normal
// outcome and answers 200.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	o, ok, err := s.processOrderHandler.Handle(ctx.Request().Context(), commands.NewProcessOrderCommand())
	if err != nil {
		return handlerError(ctx, err)
	}
	if !ok {
		return ctx.JSON(http.StatusOK, OrderProcessed{Message: MsgNoOrders})
	}

	processed := toOrder(o)
	return ctx.JSON(http.StatusOK, OrderProcessed{
		Message: MsgProcessingOrder,
		Order:   &processed,
	})
}

// AddRoute handles POST /add-route.
func (s *Server) AddRoute(ctx echo.Context) error {
	var body NewRoute
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddRouteCommand(body.From, body.To, body.Distance)
	if err != nil {
		return handlerError(ctx, err)
	}

	edges, err := s.addRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RouteAdded{
		Message: MsgRouteAdded,
		Graph:   toGraph(edges),
	})
}

// GetShortestRoute handles GET /shortest-route?start=&end=. An unreachable
// destination answers 200 with a message and no distance.
func (s *Server) GetShortestRoute(ctx echo.Context) error {
	var start, end string
	if err := runtime.BindQueryParameter("form", true, true, "start", ctx.QueryParams(), &start); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid format for parameter start: "+err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, true, "end", ctx.QueryParams(), &end); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid format for parameter end: "+err.Error())
	}

	query, err := queries.NewShortestRouteQuery(start, end)
	if err != nil {
		return handlerError(ctx, err)
	}

	resp, err := s.shortestRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}
	if !resp.Found {
		return ctx.JSON(http.StatusOK, ShortestRoute{Message: MsgNoRouteAvailable})
	}

	distance := resp.Distance.Value()
	return ctx.JSON(http.StatusOK, ShortestRoute{
		Message:  MsgShortestRoute,
		Distance: &distance,
	})
}

// GetRoutes handles GET /routes.
func (s *Server) GetRoutes(ctx echo.Context) error {
	edges, err := s.getRoutesHandler.Handle(ctx.Request().Context(), queries.NewGetRoutesQuery())
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toGraph(edges))
}

// GetRoutesDOT handles GET /routes/graph.dot.
func (s *Server) GetRoutesDOT(ctx echo.Context) error {
	edges, err := s.getRoutesHandler.Handle(ctx.Request().Context(), queries.NewGetRoutesQuery())
	if err != nil {
		return handlerError(ctx, err)
	}

	dot, err := graphviz.RenderDOT(edges)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot))
}

// GetOrders handles GET /orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPendingOrders(orders))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	if !s.ready.IsSet() {
		return ctx.String(http.StatusServiceUnavailable, "Unavailable")
	}
	return ctx.String(http.StatusOK, "Healthy")
}

// handlerError maps domain validation failures to 400 and everything else to 500.
func handlerError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		ctx.Logger().Error(err)
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
