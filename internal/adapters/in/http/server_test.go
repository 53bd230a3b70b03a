package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCreateCustomer struct{ mock.Mock }

func (m *mockCreateCustomer) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockCancelOrders struct{ mock.Mock }

func (m *mockCancelOrders) Handle(
	ctx context.Context,
	cmd commands.CancelOrdersCommand,
) ([]commands.CancelResult, error) {
	args := m.Called(ctx, cmd)
	results, _ := args.Get(0).([]commands.CancelResult)
	return results, args.Error(1)
}

type mockGetOrder struct{ mock.Mock }

func (m *mockGetOrder) Handle(ctx context.Context, q queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type mockListOrders struct{ mock.Mock }

func (m *mockListOrders) Handle(ctx context.Context, q queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

type mockCreateProduct struct{ mock.Mock }

func (m *mockCreateProduct) Handle(ctx context.Context, cmd commands.CreateProductCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockUpdateProduct struct{ mock.Mock }

func (m *mockUpdateProduct) Handle(ctx context.Context, cmd commands.UpdateProductCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockRemoveItem struct{ mock.Mock }

func (m *mockRemoveItem) Handle(ctx context.Context, cmd commands.RemoveItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockListAddresses struct{ mock.Mock }

func (m *mockListAddresses) Handle(ctx context.Context, q queries.ListAddressesQuery) ([]queries.AddressView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.AddressView)
	return views, args.Error(1)
}

func newTestRouter(h Handlers) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(NewServer(h, logger))
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	e := newTestRouter(Handlers{})

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateCustomer(t *testing.T) {
	h := &mockCreateCustomer{}
	h.On("Handle", mock.Anything, mock.AnythingOfType("commands.CreateCustomerCommand")).Return(nil).Once()
	e := newTestRouter(Handlers{CreateCustomer: h})

	rec := serve(e, http.MethodPost, "/api/v1/customers",
		`{"first_name":"Asha","last_name":"Verma","mobile":"9876543210","email":"asha@example.com"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["id"])
	h.AssertExpectations(t)
}

func TestCreateCustomer_DuplicateMobileIsBadRequest(t *testing.T) {
	h := &mockCreateCustomer{}
	h.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewValueIsNotUniqueError("mobile", "9876543210")).Once()
	e := newTestRouter(Handlers{CreateCustomer: h})

	rec := serve(e, http.MethodPost, "/api/v1/customers",
		`{"first_name":"Asha","last_name":"Verma","mobile":"9876543210","email":"asha@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["message"], "mobile")
}

func TestCreateCustomer_InvalidBodyIsBadRequest(t *testing.T) {
	e := newTestRouter(Handlers{CreateCustomer: &mockCreateCustomer{}})

	rec := serve(e, http.MethodPost, "/api/v1/customers", `{"first_name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder(t *testing.T) {
	id := kernel.NewUUID()
	view := queries.OrderView{
		ID:           id,
		CustomerID:   kernel.NewUUID(),
		CustomerName: "Asha Verma",
		AddressID:    kernel.NewUUID(),
		TotalAmount:  kernel.MustNewMoney("34.97"),
		Status:       order.Active,
		ItemCount:    2,
		CreatedOn:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	h := &mockGetOrder{}
	h.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetOrderQuery")).Return(view, nil).Once()
	e := newTestRouter(Handlers{GetOrder: h})

	rec := serve(e, http.MethodGet, "/api/v1/orders/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, id.String(), body["id"])
	assert.Equal(t, "34.97", body["total_amount"])
	assert.Equal(t, "active", body["order_status"])
	assert.InDelta(t, 2, body["item_count"], 0)
}

func TestGetOrder_NotFound(t *testing.T) {
	id := kernel.NewUUID()
	h := &mockGetOrder{}
	h.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderView{}, errs.NewObjectNotFoundError("order_id", id)).Once()
	e := newTestRouter(Handlers{GetOrder: h})

	rec := serve(e, http.MethodGet, "/api/v1/orders/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_MalformedIDIsBadRequest(t *testing.T) {
	e := newTestRouter(Handlers{GetOrder: &mockGetOrder{}})

	rec := serve(e, http.MethodGet, "/api/v1/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder_StorageFailureIsHidden(t *testing.T) {
	h := &mockGetOrder{}
	h.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderView{}, errs.NewPersistenceError("select", io.ErrUnexpectedEOF)).Once()
	e := newTestRouter(Handlers{GetOrder: h})

	rec := serve(e, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["message"])
}

func TestListOrders_FiltersByStatus(t *testing.T) {
	h := &mockListOrders{}
	h.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.Filter().Status == order.Canceled && q.Filter().CustomerID == nil
	})).Return([]queries.OrderView{}, nil).Once()
	e := newTestRouter(Handlers{ListOrders: h})

	rec := serve(e, http.MethodGet, "/api/v1/orders?status=canceled", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	h.AssertExpectations(t)
}

func TestListOrders_UnknownStatusIsBadRequest(t *testing.T) {
	e := newTestRouter(Handlers{ListOrders: &mockListOrders{}})

	rec := serve(e, http.MethodGet, "/api/v1/orders?status=shipped", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrders_RendersOneNoticePerOrder(t *testing.T) {
	canceled, completed, already, missing := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	h := &mockCancelOrders{}
	h.On("Handle", mock.Anything, mock.AnythingOfType("commands.CancelOrdersCommand")).Return([]commands.CancelResult{
		{OrderID: canceled, Outcome: order.OutcomeCanceled},
		{OrderID: completed, Outcome: order.OutcomeRejectedAlreadyCompleted},
		{OrderID: already, Outcome: order.OutcomeAlreadyCanceled},
		{OrderID: missing, Err: errs.NewObjectNotFoundError("order_id", missing)},
	}, nil).Once()
	e := newTestRouter(Handlers{CancelOrders: h})

	rec := serve(e, http.MethodPost, "/api/v1/orders/cancel",
		`{"order_ids":["`+canceled.String()+`","`+completed.String()+`","`+
			already.String()+`","`+missing.String()+`"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Notices []struct {
			OrderID string `json:"order_id"`
			Outcome string `json:"outcome"`
			Level   string `json:"level"`
			Message string `json:"message"`
		} `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Notices, 4)

	assert.Equal(t, LevelSuccess, body.Notices[0].Level)
	assert.Equal(t, "canceled", body.Notices[0].Outcome)
	assert.Equal(t, "Order #"+canceled.String()+" has been canceled.", body.Notices[0].Message)

	assert.Equal(t, LevelWarning, body.Notices[1].Level)
	assert.Equal(t, "Order #"+completed.String()+" is already completed and cannot be canceled.",
		body.Notices[1].Message)

	assert.Equal(t, LevelInfo, body.Notices[2].Level)
	assert.Equal(t, "Order #"+already.String()+" has been already canceled.", body.Notices[2].Message)

	assert.Equal(t, LevelError, body.Notices[3].Level)
	assert.Equal(t, missing.String(), body.Notices[3].OrderID)
}

func TestCancelOrders_EmptySelectionIsBadRequest(t *testing.T) {
	e := newTestRouter(Handlers{CancelOrders: &mockCancelOrders{}})

	rec := serve(e, http.MethodPost, "/api/v1/orders/cancel", `{"order_ids":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrder_InlineUsesSameHandler(t *testing.T) {
	id := kernel.NewUUID()
	h := &mockCancelOrders{}
	h.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrdersCommand) bool {
		ids := cmd.OrderIDs()
		return len(ids) == 1 && ids[0] == id
	})).Return([]commands.CancelResult{{OrderID: id, Outcome: order.OutcomeAlreadyCanceled}}, nil).Once()
	e := newTestRouter(Handlers{CancelOrders: h})

	rec := serve(e, http.MethodPost, "/api/v1/orders/"+id.String()+"/cancel", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, LevelInfo, body["level"])
	assert.Equal(t, "already_canceled", body["outcome"])
	h.AssertExpectations(t)
}

func TestCancelOrder_UnknownOrderIsNotFound(t *testing.T) {
	id := kernel.NewUUID()
	h := &mockCancelOrders{}
	h.On("Handle", mock.Anything, mock.Anything).
		Return([]commands.CancelResult{{OrderID: id, Err: errs.NewObjectNotFoundError("order_id", id)}}, nil).Once()
	e := newTestRouter(Handlers{CancelOrders: h})

	rec := serve(e, http.MethodPost, "/api/v1/orders/"+id.String()+"/cancel", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct_PriceWithThreeDecimalsIsBadRequest(t *testing.T) {
	h := &mockCreateProduct{}
	e := newTestRouter(Handlers{CreateProduct: h})

	rec := serve(e, http.MethodPost, "/api/v1/products", `{"name":"Pencil","price":"9.999"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["message"], "money")
	h.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUpdateProduct(t *testing.T) {
	id := kernel.NewUUID()
	h := &mockUpdateProduct{}
	h.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateProductCommand) bool {
		return cmd.ProductID() == id && cmd.Name() == "Gadget" && cmd.Description() == "shiny"
	})).Return(nil).Once()
	e := newTestRouter(Handlers{UpdateProduct: h})

	rec := serve(e, http.MethodPut, "/api/v1/products/"+id.String(), `{"name":"Gadget","description":"shiny"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	h.AssertExpectations(t)
}

func TestRemoveItem_RespondsWithRecomputedOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	remove := &mockRemoveItem{}
	remove.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RemoveItemCommand) bool {
		return cmd.OrderID() == orderID && cmd.ItemID() == itemID
	})).Return(nil).Once()
	get := &mockGetOrder{}
	get.On("Handle", mock.Anything, mock.Anything).Return(queries.OrderView{
		ID:          orderID,
		TotalAmount: kernel.MustNewMoney("5.00"),
		Status:      order.Active,
		ItemCount:   1,
	}, nil).Once()
	e := newTestRouter(Handlers{RemoveItem: remove, GetOrder: get})

	rec := serve(e, http.MethodDelete, "/api/v1/orders/"+orderID.String()+"/items/"+itemID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5.00", decode(t, rec)["total_amount"])
	remove.AssertExpectations(t)
	get.AssertExpectations(t)
}

func TestRemoveItem_ItemOfAnotherOrderIsBadRequest(t *testing.T) {
	remove := &mockRemoveItem{}
	remove.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewValueIsInvalidError("item_id")).Once()
	get := &mockGetOrder{}
	e := newTestRouter(Handlers{RemoveItem: remove, GetOrder: get})

	rec := serve(e, http.MethodDelete, "/api/v1/orders/"+kernel.NewUUID().String()+"/items/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	get.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestListAddresses_IncludeDisabledFlag(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("should default to active addresses", func(t *testing.T) {
		want, err := queries.NewListAddressesQuery(customerID, false)
		require.NoError(t, err)
		h := &mockListAddresses{}
		h.On("Handle", mock.Anything, want).Return([]queries.AddressView{}, nil).Once()
		e := newTestRouter(Handlers{ListAddresses: h})

		rec := serve(e, http.MethodGet, "/api/v1/customers/"+customerID.String()+"/addresses", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		h.AssertExpectations(t)
	})

	t.Run("should pass the flag through", func(t *testing.T) {
		want, err := queries.NewListAddressesQuery(customerID, true)
		require.NoError(t, err)
		h := &mockListAddresses{}
		h.On("Handle", mock.Anything, want).Return([]queries.AddressView{}, nil).Once()
		e := newTestRouter(Handlers{ListAddresses: h})

		rec := serve(e, http.MethodGet, "/api/v1/customers/"+customerID.String()+"/addresses?include_disabled=true", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		h.AssertExpectations(t)
	})

	t.Run("should reject a non-boolean flag", func(t *testing.T) {
		h := &mockListAddresses{}
		e := newTestRouter(Handlers{ListAddresses: h})

		rec := serve(e, http.MethodGet, "/api/v1/customers/"+customerID.String()+"/addresses?include_disabled=maybe", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		h.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}
