package http

import (
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(id, req.profile())
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id})
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}
	view, err := s.h.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toCustomer(view))
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req CustomerRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, req.profile())
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.UpdateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddAddress handles POST /api/v1/customers/:id/addresses.
func (s *Server) AddAddress(c echo.Context) error {
	customerID, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req AddressRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewAddAddressCommand(id, customerID, req.details())
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.AddAddress.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id})
}

// ListAddresses handles GET /api/v1/customers/:id/addresses. Disabled
// addresses are only listed with ?include_disabled=true.
func (s *Server) ListAddresses(c echo.Context) error {
	customerID, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	includeDisabled := false
	if err = echo.QueryParamsBinder(c).Bool("include_disabled", &includeDisabled).BindError(); err != nil {
		return badRequest(c, "include_disabled must be a boolean")
	}

	query, err := queries.NewListAddressesQuery(customerID, includeDisabled)
	if err != nil {
		return s.writeError(c, err)
	}
	views, err := s.h.ListAddresses.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]Address, len(views))
	for i, view := range views {
		response[i] = toAddress(view)
	}
	return c.JSON(http.StatusOK, response)
}

// GetAddress handles GET /api/v1/addresses/:id.
func (s *Server) GetAddress(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetAddressQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}
	view, err := s.h.GetAddress.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toAddress(view))
}

// UpdateAddress handles PUT /api/v1/addresses/:id. The owner and the disabled
// state are not editable here.
func (s *Server) UpdateAddress(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req AddressRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateAddressCommand(id, req.details())
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.UpdateAddress.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetAddressDisabled handles PUT /api/v1/addresses/:id/disabled.
func (s *Server) SetAddressDisabled(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req DisabledRequest
	if err = c.Bind(&req); err != nil || req.Disabled == nil {
		return badRequest(c, `Request body must be {"disabled": true|false}`)
	}

	cmd, err := commands.NewSetAddressDisabledCommand(id, *req.Disabled)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.h.SetAddressDisabled.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r CustomerRequest) profile() commands.CustomerProfile {
	return commands.CustomerProfile{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Mobile:    r.Mobile,
		Email:     r.Email,
	}
}

func (r AddressRequest) details() customer.AddressDetails {
	return customer.AddressDetails{
		Name:     r.Name,
		Phone:    r.Phone,
		Line1:    r.Line1,
		Line2:    r.Line2,
		Landmark: r.Landmark,
		Pincode:  r.Pincode,
	}
}

func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}
