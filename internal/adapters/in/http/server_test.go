package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	api "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/spool"
	"restaurant/internal/core/application/store"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/shop"
	"restaurant/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type testServer struct {
	e        *echo.Echo
	orders   *store.OrderStore
	spoolDir string
}

func newTestServer(t *testing.T, opts ...func(*api.Handlers)) testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := kernel.FixedClock(now)
	completed := store.NewCompletionArchive(archive.New(nil), time.UTC, clock, logger)
	orders := store.NewOrderStore(nil, completed, logger)
	menus := store.NewMenuStore(menu.Default(), kernel.NewUUIDGenerator("M"))
	shops := store.NewShopStore(shop.Profile{Name: "Corner Bistro", Address: "1 Main St"})
	spoolDir := t.TempDir()

	handlers := api.Handlers{
		CreateOrder:          commands.NewCreateOrderCommandHandler(orders, menus, kernel.NewUUIDGenerator("ORD"), clock),
		UpsertOrder:          commands.NewUpsertOrderCommandHandler(orders, clock),
		PatchOrder:           commands.NewPatchOrderCommandHandler(orders),
		DeleteOrder:          commands.NewDeleteOrderCommandHandler(orders),
		PrintReceipt:         commands.NewPrintReceiptCommandHandler(orders, shops, spool.NewFactory(spoolDir), time.UTC, 0, logger),
		RemoveCompletedOrder: commands.NewRemoveCompletedOrderCommandHandler(completed),
		RemoveCompletedDay:   commands.NewRemoveCompletedDayCommandHandler(completed),
		ClearCompleted:       commands.NewClearCompletedCommandHandler(completed),
		SaveMenuItem:         commands.NewSaveMenuItemCommandHandler(menus),
		DeleteMenuItem:       commands.NewDeleteMenuItemCommandHandler(menus),
		SaveShopProfile:      commands.NewSaveShopProfileCommandHandler(shops),
		ListOrders:           queries.NewListOrdersQueryHandler(orders, services.DefaultPageSize),
		ExportOrders:         queries.NewExportOrdersQueryHandler(orders, clock, time.UTC),
		GetReceipt:           queries.NewGetReceiptQueryHandler(orders, shops, time.UTC),
		GetCompletedOrders:   queries.NewGetCompletedOrdersQueryHandler(completed),
		GetHourlyActivity:    queries.NewGetHourlyActivityQueryHandler(orders, clock, time.UTC),
		GetMenu:              queries.NewGetMenuQueryHandler(menus),
		GetShopProfile:       queries.NewGetShopProfileQueryHandler(shops),
	}
	for _, opt := range opts {
		opt(&handlers)
	}

	e := echo.New()
	require.NoError(t, api.NewServer(handlers).RegisterRoutes(t.Context(), e))
	return testServer{e: e, orders: orders, spoolDir: spoolDir}
}

func (s testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s testServer) createSoupOrder(t *testing.T) api.Order {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/orders",
		`{"customer":"Ana","type":"Dine-in","items":[{"itemId":"m-soup","qty":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created api.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

type fakeBroker struct{ err error }

func (b fakeBroker) Ping() error { return b.err }

func TestServer_Health(t *testing.T) {
	t.Run("without a broker", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("broker reachable", func(t *testing.T) {
		s := newTestServer(t, func(h *api.Handlers) { h.Broker = fakeBroker{} })

		rec := s.do(t, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("broker connection lost", func(t *testing.T) {
		s := newTestServer(t, func(h *api.Handlers) {
			h.Broker = fakeBroker{err: errors.New("rabbitmq connection is closed")}
		})

		rec := s.do(t, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "rabbitmq connection is closed")
	})
}

func TestServer_OpenAPIDocument(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/openapi.yaml", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "operationId: createOrder")
}

func TestServer_RequestValidation(t *testing.T) {
	s := newTestServer(t)
	created := s.createSoupOrder(t)

	tests := map[string]struct {
		method, target, body string
	}{
		"empty patch":    {http.MethodPatch, "/api/v1/orders/" + created.ID, `{}`},
		"unknown status": {http.MethodPatch, "/api/v1/orders/" + created.ID, `{"status":"Lost"}`},
		"replace without status": {http.MethodPut, "/api/v1/orders/" + created.ID,
			`{"type":"Takeaway","items":[{"itemId":"m-fries","name":"Fries","price":3.5,"qty":1}]}`},
		"menu item without name": {http.MethodPost, "/api/v1/menu", `{"price":2}`},
		"hours not a number":     {http.MethodGet, "/api/v1/analytics/hourly?hours=all", ""},
		"unknown type filter":    {http.MethodGet, "/api/v1/orders?type=Drone", ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	rec := s.do(t, http.MethodGet, "/api/v1/orders/"+created.ID+"/receipt", "")
	assert.Equal(t, http.StatusOK, rec.Code, "validated request still reaches its handler")
}

func TestServer_CreateOrder(t *testing.T) {
	s := newTestServer(t)

	created := s.createSoupOrder(t)

	assert.Equal(t, "Ana", created.Customer)
	assert.Equal(t, "Pending", created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, "Tomato Soup", created.Items[0].Name)
	assert.Equal(t, "10.00", created.Total.String())
	assert.True(t, now.Equal(created.CreatedAt))
}

func TestServer_CreateOrder_Rejected(t *testing.T) {
	tests := map[string]struct {
		body string
		code int
	}{
		"no items":       {`{"customer":"Ana","type":"Dine-in","items":[]}`, http.StatusBadRequest},
		"bad type":       {`{"customer":"Ana","type":"Drive-thru","items":[{"itemId":"m-soup","qty":1}]}`, http.StatusBadRequest},
		"zero quantity":  {`{"customer":"Ana","type":"Dine-in","items":[{"itemId":"m-soup","qty":0}]}`, http.StatusBadRequest},
		"unknown item":   {`{"customer":"Ana","type":"Dine-in","items":[{"itemId":"m-nope","qty":1}]}`, http.StatusNotFound},
		"malformed json": {`{"customer":`, http.StatusBadRequest},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(t, http.MethodPost, "/api/v1/orders", tt.body)

			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.Empty(t, s.orders.Snapshot())
		})
	}
}

func TestServer_PatchToDeliveredArchives(t *testing.T) {
	s := newTestServer(t)
	created := s.createSoupOrder(t)

	rec := s.do(t, http.MethodPatch, "/api/v1/orders/"+created.ID, `{"status":"Delivered"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/completed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var days []api.CompletedDay
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 1)
	assert.Equal(t, "2026-10-18", days[0].Day)
	assert.Equal(t, "10.00", days[0].Total.String())
	require.Len(t, days[0].Orders, 1)
	assert.Equal(t, created.ID, days[0].Orders[0].ID)
}

func TestServer_PatchMissingOrder(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPatch, "/api/v1/orders/ORD-missing", `{"status":"Ready"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ReplaceOrder(t *testing.T) {
	s := newTestServer(t)
	created := s.createSoupOrder(t)

	rec := s.do(t, http.MethodPut, "/api/v1/orders/"+created.ID,
		`{"customer":"Bea","type":"Takeaway","status":"Ready","items":[{"itemId":"m-fries","name":"Fries","price":3.5,"qty":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var replaced api.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &replaced))
	assert.Equal(t, "Bea", replaced.Customer)
	assert.Equal(t, "Takeaway", replaced.Type)
	assert.Equal(t, "3.50", replaced.Total.String())
	assert.True(t, created.CreatedAt.Equal(replaced.CreatedAt))
}

func TestServer_DeleteOrder(t *testing.T) {
	s := newTestServer(t)
	created := s.createSoupOrder(t)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/v1/orders/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/v1/orders/"+created.ID, "").Code)
}

func TestServer_GetOrders_FiltersAndPages(t *testing.T) {
	s := newTestServer(t)
	for range 12 {
		s.createSoupOrder(t)
	}

	rec := s.do(t, http.MethodGet, "/api/v1/orders?page=9", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page api.OrdersPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 12, page.TotalCount)
	assert.Len(t, page.Orders, 2)

	rec = s.do(t, http.MethodGet, "/api/v1/orders?q=nobody", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Orders)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/orders?status=Lost", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/orders?page=x", "").Code)
}

func TestServer_ExportOrders(t *testing.T) {
	s := newTestServer(t)
	s.createSoupOrder(t)

	rec := s.do(t, http.MethodGet, "/api/v1/orders/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `filename="orders_2026-10-18.csv"`)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ID,Customer,Type,Status"))
	assert.Contains(t, rec.Body.String(), "Tomato Soup x2")
}

func TestServer_Receipt(t *testing.T) {
	s := newTestServer(t)
	created := s.createSoupOrder(t)

	rec := s.do(t, http.MethodGet, "/api/v1/orders/"+created.ID+"/receipt", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Corner Bistro")
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/orders/ORD-missing/receipt", "").Code)
}

func TestServer_PrintReceipt(t *testing.T) {
	s := newTestServer(t)
	created := s.createSoupOrder(t)

	// A reprint before the first one lands yields a second document.
	for range 2 {
		rec := s.do(t, http.MethodPost, "/api/v1/orders/"+created.ID+"/print", "")
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	}

	pattern := filepath.Join(s.spoolDir, "receipt-"+created.ID+"-*.html")
	require.Eventually(t, func() bool {
		printed, err := filepath.Glob(pattern)
		return err == nil && len(printed) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestServer_CompletedRemovalNeedsConfirmation(t *testing.T) {
	s := newTestServer(t)
	created := s.createSoupOrder(t)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, "/api/v1/orders/"+created.ID, `{"status":"Delivered"}`).Code)

	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodDelete, "/api/v1/completed/days/2026-10-18", "").Code)
	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodDelete, "/api/v1/completed?confirm=no", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodDelete, "/api/v1/completed/days/yesterday?confirm=true", "").Code)

	rec := s.do(t, http.MethodDelete, "/api/v1/completed/days/2026-10-18?confirm=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var removed api.Removed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &removed))
	assert.Equal(t, 1, removed.Removed)

	// Clearing the archive never touches live orders.
	rec = s.do(t, http.MethodDelete, "/api/v1/completed?confirm=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, s.orders.Snapshot(), 1)
}

func TestServer_RemoveCompletedOrder(t *testing.T) {
	s := newTestServer(t)
	created := s.createSoupOrder(t)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, "/api/v1/orders/"+created.ID, `{"status":"Delivered"}`).Code)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/v1/completed/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/v1/completed/"+created.ID, "").Code)
}

func TestServer_HourlyActivity(t *testing.T) {
	s := newTestServer(t)
	s.createSoupOrder(t)

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/hourly", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var buckets []api.HourlyBucket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	require.Len(t, buckets, 12)
	assert.Equal(t, api.HourlyBucket{Label: "12:00", Count: 1}, buckets[11])

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/analytics/hourly?hours=25", "").Code)
}

func TestServer_Menu(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/menu", `{"name":"Lemonade","price":2.25}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var added api.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.NotEmpty(t, added.ID)

	rec = s.do(t, http.MethodPut, "/api/v1/menu/"+added.ID, `{"name":"Lemonade","price":2.5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/menu", `{"name":"Free","price":-1}`).Code)
	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/v1/menu/"+added.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPut, "/api/v1/menu/"+added.ID, `{"name":"X","price":1}`).Code)

	rec = s.do(t, http.MethodGet, "/api/v1/menu", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []api.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, len(menu.Default().Items()))
}

func TestServer_ShopProfile(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/api/v1/shop", `{"name":"Harbor Cafe","logo":"https://example.com/logo.png"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/shop", `{"name":"Harbor Cafe","taxNumber":"TX-1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/shop", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile api.ShopProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Harbor Cafe", profile.Name)
	assert.Equal(t, "TX-1", profile.TaxNumber)
}
