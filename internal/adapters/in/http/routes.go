package http

import (
	"context"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the API on e. Every /api/v1 request is checked
// against the embedded OpenAPI document before it reaches a handler. The
// export route is registered before /orders/:id so "export" is never taken
// for an order id.
func (s *Server) RegisterRoutes(ctx context.Context, e *echo.Echo) error {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	e.GET("/health", s.Health)
	e.GET("/api/v1/openapi.yaml", serveOpenAPI)

	api := e.Group("/api/v1", validator)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/export", s.ExportOrders)
	api.PUT("/orders/:id", s.ReplaceOrder)
	api.PATCH("/orders/:id", s.PatchOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders/:id/receipt", s.GetReceipt)
	api.POST("/orders/:id/print", s.PrintReceipt)

	api.GET("/completed", s.GetCompletedOrders)
	api.DELETE("/completed", s.ClearCompleted)
	api.DELETE("/completed/days/:day", s.RemoveCompletedDay)
	api.DELETE("/completed/:id", s.RemoveCompletedOrder)

	api.GET("/analytics/hourly", s.GetHourlyActivity)

	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.CreateMenuItem)
	api.PUT("/menu/:id", s.UpdateMenuItem)
	api.DELETE("/menu/:id", s.DeleteMenuItem)

	api.GET("/shop", s.GetShopProfile)
	api.PUT("/shop", s.SaveShopProfile)
	return nil
}
