// Package http exposes the restaurant use cases over a JSON API served by echo.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	UpsertOrder          commands.UpsertOrderCommandHandler
	PatchOrder           commands.PatchOrderCommandHandler
	DeleteOrder          commands.DeleteOrderCommandHandler
	PrintReceipt         commands.PrintReceiptCommandHandler
	RemoveCompletedOrder commands.RemoveCompletedOrderCommandHandler
	RemoveCompletedDay   commands.RemoveCompletedDayCommandHandler
	ClearCompleted       commands.ClearCompletedCommandHandler
	SaveMenuItem         commands.SaveMenuItemCommandHandler
	DeleteMenuItem       commands.DeleteMenuItemCommandHandler
	SaveShopProfile      commands.SaveShopProfileCommandHandler

	ListOrders         queries.ListOrdersQueryHandler
	ExportOrders       queries.ExportOrdersQueryHandler
	GetReceipt         queries.GetReceiptQueryHandler
	GetCompletedOrders queries.GetCompletedOrdersQueryHandler
	GetHourlyActivity  queries.GetHourlyActivityQueryHandler
	GetMenu            queries.GetMenuQueryHandler
	GetShopProfile     queries.GetShopProfileQueryHandler

	// Broker is checked by /health when change events are enabled.
	Broker Pinger
}

type Pinger interface {
	Ping() error
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	if s.h.Broker != nil {
		if err := s.h.Broker.Ping(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, Error{Code: http.StatusServiceUnavailable, Message: err.Error()})
		}
	}
	return c.String(http.StatusOK, "Healthy")
}

// GetOrders handles GET /api/v1/orders?status=&type=&q=&page=. The page is
// taken as given; clients go back to page 1 when they change a filter or the
// search text.
func (s *Server) GetOrders(c echo.Context) error {
	page := 1
	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewListOrdersQuery(c.QueryParam("status"), c.QueryParam("type"), c.QueryParam("q"), page)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrdersPage(result))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, errors.New("invalid request body"))
	}

	input, err := body.toInput()
	if err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewCreateOrderCommand(input)
	if err != nil {
		return badRequest(c, err)
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toOrder(created))
}

// ReplaceOrder handles PUT /api/v1/orders/:id.
func (s *Server) ReplaceOrder(c echo.Context) error {
	var body OrderBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, errors.New("invalid request body"))
	}

	details, err := body.toDetails()
	if err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewUpsertOrderCommand(c.Param("id"), details)
	if err != nil {
		return badRequest(c, err)
	}

	stored, err := s.h.UpsertOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(stored))
}

// PatchOrder handles PATCH /api/v1/orders/:id.
func (s *Server) PatchOrder(c echo.Context) error {
	var body OrderPatch
	if err := c.Bind(&body); err != nil {
		return badRequest(c, errors.New("invalid request body"))
	}

	patch, err := body.toPatch()
	if err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewPatchOrderCommand(c.Param("id"), patch)
	if err != nil {
		return badRequest(c, err)
	}

	patched, err := s.h.PatchOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(patched))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}
	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportOrders handles GET /api/v1/orders/export as a CSV download.
func (s *Server) ExportOrders(c echo.Context) error {
	export, err := s.h.ExportOrders.Handle(c.Request().Context(), queries.NewExportOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.FileName+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", export.Content)
}

// GetReceipt handles GET /api/v1/orders/:id/receipt.
func (s *Server) GetReceipt(c echo.Context) error {
	query, err := queries.NewGetReceiptQuery(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}
	html, err := s.h.GetReceipt.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.HTMLBlob(http.StatusOK, html)
}

// PrintReceipt handles POST /api/v1/orders/:id/print.
func (s *Server) PrintReceipt(c echo.Context) error {
	cmd, err := commands.NewPrintReceiptCommand(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}
	if err = s.h.PrintReceipt.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

// GetCompletedOrders handles GET /api/v1/completed.
func (s *Server) GetCompletedOrders(c echo.Context) error {
	groups, err := s.h.GetCompletedOrders.Handle(c.Request().Context(), queries.NewGetCompletedOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toCompletedDays(groups))
}

// RemoveCompletedOrder handles DELETE /api/v1/completed/:id.
func (s *Server) RemoveCompletedOrder(c echo.Context) error {
	cmd, err := commands.NewRemoveCompletedOrderCommand(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}
	if err = s.h.RemoveCompletedOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveCompletedDay handles DELETE /api/v1/completed/days/:day?confirm=true.
func (s *Server) RemoveCompletedDay(c echo.Context) error {
	cmd, err := commands.NewRemoveCompletedDayCommand(c.Param("day"), confirmation(c))
	if err != nil {
		return badRequest(c, err)
	}
	removed, err := s.h.RemoveCompletedDay.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Removed{Removed: removed})
}

// ClearCompleted handles DELETE /api/v1/completed?confirm=true.
func (s *Server) ClearCompleted(c echo.Context) error {
	removed, err := s.h.ClearCompleted.Handle(c.Request().Context(), commands.NewClearCompletedCommand(confirmation(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Removed{Removed: removed})
}

// GetHourlyActivity handles GET /api/v1/analytics/hourly?hours=.
func (s *Server) GetHourlyActivity(c echo.Context) error {
	var hours int
	if err := runtime.BindQueryParameter("form", true, false, "hours", c.QueryParams(), &hours); err != nil {
		return badRequest(c, err)
	}
	query, err := queries.NewGetHourlyActivityQuery(hours)
	if err != nil {
		return badRequest(c, err)
	}

	buckets, err := s.h.GetHourlyActivity.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	response := make([]HourlyBucket, len(buckets))
	for i, b := range buckets {
		response[i] = HourlyBucket{Label: b.Label, Count: b.Count}
	}
	return c.JSON(http.StatusOK, response)
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(c echo.Context) error {
	items, err := s.h.GetMenu.Handle(c.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(c, err)
	}
	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(c echo.Context) error {
	var body MenuItem
	if err := c.Bind(&body); err != nil {
		return badRequest(c, errors.New("invalid request body"))
	}
	cmd, err := commands.NewAddMenuItemCommand(body.Name, body.Price)
	if err != nil {
		return badRequest(c, err)
	}
	return s.saveMenuItem(c, cmd, http.StatusCreated)
}

// UpdateMenuItem handles PUT /api/v1/menu/:id.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	var body MenuItem
	if err := c.Bind(&body); err != nil {
		return badRequest(c, errors.New("invalid request body"))
	}
	cmd, err := commands.NewUpdateMenuItemCommand(c.Param("id"), body.Name, body.Price)
	if err != nil {
		return badRequest(c, err)
	}
	return s.saveMenuItem(c, cmd, http.StatusOK)
}

func (s *Server) saveMenuItem(c echo.Context, cmd commands.SaveMenuItemCommand, status int) error {
	item, err := s.h.SaveMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(status, toMenuItem(item))
}

// DeleteMenuItem handles DELETE /api/v1/menu/:id.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	cmd, err := commands.NewDeleteMenuItemCommand(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}
	if err = s.h.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetShopProfile handles GET /api/v1/shop.
func (s *Server) GetShopProfile(c echo.Context) error {
	profile, err := s.h.GetShopProfile.Handle(c.Request().Context(), queries.NewGetShopProfileQuery())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toShopProfile(profile))
}

// SaveShopProfile handles PUT /api/v1/shop.
func (s *Server) SaveShopProfile(c echo.Context) error {
	var body ShopProfile
	if err := c.Bind(&body); err != nil {
		return badRequest(c, errors.New("invalid request body"))
	}
	cmd, err := commands.NewSaveShopProfileCommand(body.toDomain())
	if err != nil {
		return badRequest(c, err)
	}
	if err = s.h.SaveShopProfile.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toShopProfile(cmd.Profile()))
}

// confirmation turns ?confirm=true into the confirmation gate. Anything else declines.
func confirmation(c echo.Context) ports.ConfirmFunc {
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))
	return ports.Confirmed(confirmed)
}
