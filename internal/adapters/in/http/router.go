package http

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with logging, request IDs, OpenAPI
// validation and every dispatch route registered on it.
func NewRouter(ctx context.Context, s *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	RegisterSwaggerDoc(doc)

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger.With("component", "http")))
	e.Use(validator)

	RegisterHandlers(e, s)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// RegisterHandlers binds the server methods to their paths.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.POST("/add-order", s.AddOrder)
	e.POST("/process-order", s.ProcessOrder)
	e.POST("/add-route", s.AddRoute)
	e.GET("/shortest-route", s.GetShortestRoute)
	e.GET("/routes", s.GetRoutes)
	e.GET("/routes/graph.dot", s.GetRoutesDOT)
	e.GET("/orders", s.GetOrders)
	e.GET("/health", s.Health)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	})
}
