package http

import (
	"fmt"
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Notice levels, as shown by the admin UI.
const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelInfo    = "info"
	LevelError   = "error"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return s.writeError(c, err)
	}
	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return s.writeError(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, customerID, addressID)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id})
}

// ListOrders handles GET /api/v1/orders?customer_id=&status=.
func (s *Server) ListOrders(c echo.Context) error {
	var filter queries.OrderFilter

	if raw := c.QueryParam("customer_id"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.writeError(c, err)
		}
		filter.CustomerID = &customerID
	}
	if raw := c.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return s.writeError(c, err)
		}
		filter.Status = status
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return s.writeError(c, err)
	}
	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(view))
}

// ListOrderItems handles GET /api/v1/orders/:id/items.
func (s *Server) ListOrderItems(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewListOrderItemsQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}
	views, err := s.h.ListOrderItems.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]OrderItem, len(views))
	for i, view := range views {
		response[i] = toOrderItem(view)
	}
	return c.JSON(http.StatusOK, response)
}

// AddOrUpdateItem handles PUT /api/v1/orders/:id/items and answers with the
// order as recomputed in the same transaction.
func (s *Server) AddOrUpdateItem(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req ItemRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	if req.ItemID != "" {
		if itemID, err = kernel.UUIDFromString(req.ItemID); err != nil {
			return s.writeError(c, err)
		}
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAddOrUpdateItemCommand(orderID, itemID, productID, req.Quantity)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.AddOrUpdateItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.GetOrder(c)
}

// RemoveItem handles DELETE /api/v1/orders/:id/items/:item_id and responds with
// the order carrying its recomputed total.
func (s *Server) RemoveItem(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}
	itemID, err := kernel.UUIDFromString(c.Param("item_id"))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.RemoveItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.GetOrder(c)
}

// RecomputeOrderTotal handles POST /api/v1/orders/:id/recompute.
func (s *Server) RecomputeOrderTotal(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRecomputeOrderTotalCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.RecomputeOrderTotal.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.GetOrder(c)
}

// CancelOrders handles POST /api/v1/orders/cancel, the bulk action. Every
// requested order gets a notice; one failing order does not affect the others.
func (s *Server) CancelOrders(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.writeError(c, err)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewCancelOrdersCommand(ids...)
	if err != nil {
		return s.writeError(c, err)
	}
	results, err := s.h.CancelOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	response := CancelResponse{Notices: make([]Notice, len(results))}
	for i, result := range results {
		if result.Err != nil && !errs.IsValidation(result.Err) && !errs.IsNotFound(result.Err) {
			s.logger.ErrorContext(c.Request().Context(), "cancel failed",
				"order_id", result.OrderID.String(), "error", result.Err)
		}
		response.Notices[i] = noticeFor(result)
	}
	return c.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel, the per-order control.
// It shares the bulk implementation; rejections are still 200 with a notice.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCancelOrdersCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}
	results, err := s.h.CancelOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	if len(results) != 1 {
		return s.writeError(c, fmt.Errorf("cancel returned %d results for one order", len(results)))
	}
	if results[0].Err != nil {
		return s.writeError(c, results[0].Err)
	}

	return c.JSON(http.StatusOK, noticeFor(results[0]))
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.CompleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.GetOrder(c)
}

func noticeFor(result commands.CancelResult) Notice {
	n := Notice{OrderID: result.OrderID, Outcome: result.Outcome.String()}
	id := result.OrderID.String()

	switch {
	case result.Err != nil && errs.IsNotFound(result.Err):
		n.Level = LevelError
		n.Message = fmt.Sprintf("Order #%s was not found.", id)
	case result.Err != nil:
		n.Level = LevelError
		n.Message = fmt.Sprintf("Order #%s could not be canceled.", id)
	case result.Outcome == order.OutcomeCanceled:
		n.Level = LevelSuccess
		n.Message = fmt.Sprintf("Order #%s has been canceled.", id)
	case result.Outcome == order.OutcomeRejectedAlreadyCompleted:
		n.Level = LevelWarning
		n.Message = fmt.Sprintf("Order #%s is already completed and cannot be canceled.", id)
	case result.Outcome == order.OutcomeAlreadyCanceled:
		n.Level = LevelInfo
		n.Message = fmt.Sprintf("Order #%s has been already canceled.", id)
	default:
		n.Level = LevelError
		n.Message = fmt.Sprintf("Order #%s could not be canceled.", id)
	}

	return n
}
