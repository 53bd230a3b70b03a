package http

import (
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return s.writeError(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(id, req.Name, req.Description, price)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id})
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}
	view, err := s.h.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toProduct(view))
}

// UpdateProduct handles PUT /api/v1/products/:id. Only name and description change.
func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req ProductDetailsRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(id, req.Name, req.Description)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.UpdateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeProductPrice handles PUT /api/v1/products/:id/price. Items already on
// orders keep the price they were written with.
func (s *Server) ChangeProductPrice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req PriceRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewChangeProductPriceCommand(id, price)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.ChangeProductPrice.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
