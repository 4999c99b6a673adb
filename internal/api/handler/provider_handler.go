package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// ProviderHandler serves providers, handymen, verification documents, and
// payout withdrawals.
type ProviderHandler struct {
	service ports.ProviderService
}

func NewProviderHandler(service ports.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// --- Providers ---

// ListProviders handles GET /v1/providers.
//
// @Summary      List providers
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Provider
// @Failure      502  {object}  errorResponse
// @Router       /v1/providers [get]
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	providers, err := h.service.ListProviders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, providers)
}

// GetProvider handles GET /v1/providers/:id.
//
// @Summary      Get a provider
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Provider id"
// @Success      200  {object}  domain.Provider
// @Failure      404  {object}  errorResponse
// @Router       /v1/providers/{id} [get]
func (h *ProviderHandler) GetProvider(c echo.Context) error {
	provider, err := h.service.GetProvider(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, provider)
}

// UpdateProvider handles PATCH /v1/providers/:id.
//
// @Summary      Update a provider
// @Tags         providers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Provider id"
// @Param        body  body      updateProviderRequest  true  "Fields to patch"
// @Success      200   {object}  domain.Provider
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/providers/{id} [patch]
func (h *ProviderHandler) UpdateProvider(c echo.Context) error {
	var req updateProviderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.UpdateProvider(c.Request().Context(), c.Param("id"), ports.UpdateProviderInput{
		Name:     req.Name,
		Phone:    req.Phone,
		ImageURL: req.ImageURL,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteProvider handles DELETE /v1/providers/:id.
//
// @Summary      Delete a provider
// @Tags         providers
// @Security     BearerAuth
// @Param        id  path  string  true  "Provider id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/providers/{id} [delete]
func (h *ProviderHandler) DeleteProvider(c echo.Context) error {
	if err := h.service.DeleteProvider(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListProviderBookings handles GET /v1/providers/:id/bookings.
//
// @Summary      List one provider's bookings
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Provider id"
// @Success      200  {array}   domain.Booking
// @Failure      502  {object}  errorResponse
// @Router       /v1/providers/{id}/bookings [get]
func (h *ProviderHandler) ListProviderBookings(c echo.Context) error {
	bookings, err := h.service.ListProviderBookings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListProviderHandymen handles GET /v1/providers/:id/handymen.
//
// @Summary      List one provider's handymen
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Provider id"
// @Success      200  {array}   domain.Handyman
// @Failure      502  {object}  errorResponse
// @Router       /v1/providers/{id}/handymen [get]
func (h *ProviderHandler) ListProviderHandymen(c echo.Context) error {
	handymen, err := h.service.ListHandymen(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, handymen)
}

// ListProviderDocuments handles GET /v1/providers/:id/documents.
//
// @Summary      List one provider's verification documents
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Provider id"
// @Success      200  {array}   domain.Document
// @Failure      502  {object}  errorResponse
// @Router       /v1/providers/{id}/documents [get]
func (h *ProviderHandler) ListProviderDocuments(c echo.Context) error {
	docs, err := h.service.ListDocuments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// --- Handymen ---

// ListHandymen handles GET /v1/handymen?provider_id=.
//
// @Summary      List handymen
// @Tags         handymen
// @Produce      json
// @Security     BearerAuth
// @Param        provider_id  query     string  false  "Restrict to one provider"
// @Success      200          {array}   domain.Handyman
// @Failure      502          {object}  errorResponse
// @Router       /v1/handymen [get]
func (h *ProviderHandler) ListHandymen(c echo.Context) error {
	handymen, err := h.service.ListHandymen(c.Request().Context(), c.QueryParam("provider_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, handymen)
}

// CreateHandyman handles POST /v1/handymen.
//
// @Summary      Create a handyman
// @Tags         handymen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHandymanRequest  true  "Handyman fields"
// @Success      201   {object}  domain.Handyman
// @Failure      400   {object}  errorResponse
// @Router       /v1/handymen [post]
func (h *ProviderHandler) CreateHandyman(c echo.Context) error {
	var req createHandymanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateHandyman(c.Request().Context(), ports.CreateHandymanInput{
		ProviderID: req.ProviderID,
		Name:       req.Name,
		Phone:      req.Phone,
		Skill:      req.Skill,
		Active:     req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateHandyman handles PATCH /v1/handymen/:id.
//
// @Summary      Update a handyman
// @Tags         handymen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Handyman id"
// @Param        body  body      updateHandymanRequest  true  "Fields to patch"
// @Success      200   {object}  domain.Handyman
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/handymen/{id} [patch]
func (h *ProviderHandler) UpdateHandyman(c echo.Context) error {
	var req updateHandymanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.UpdateHandyman(c.Request().Context(), c.Param("id"), ports.UpdateHandymanInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Skill:  req.Skill,
		Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteHandyman handles DELETE /v1/handymen/:id.
//
// @Summary      Delete a handyman
// @Tags         handymen
// @Security     BearerAuth
// @Param        id  path  string  true  "Handyman id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/handymen/{id} [delete]
func (h *ProviderHandler) DeleteHandyman(c echo.Context) error {
	if err := h.service.DeleteHandyman(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Documents ---

// ListDocuments handles GET /v1/documents?provider_id=.
//
// @Summary      List verification documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        provider_id  query     string  false  "Restrict to one provider"
// @Success      200          {array}   domain.Document
// @Failure      502          {object}  errorResponse
// @Router       /v1/documents [get]
func (h *ProviderHandler) ListDocuments(c echo.Context) error {
	docs, err := h.service.ListDocuments(c.Request().Context(), c.QueryParam("provider_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// ListDocumentsGrouped handles GET /v1/documents/grouped.
//
// @Summary      List documents bucketed by provider
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.DocumentGroup
// @Failure      502  {object}  errorResponse
// @Router       /v1/documents/grouped [get]
func (h *ProviderHandler) ListDocumentsGrouped(c echo.Context) error {
	groups, err := h.service.GroupDocumentsByProvider(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}

// UpdateDocumentStatus handles PATCH /v1/documents/:id/status.
//
// @Summary      Approve or reject a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "Document id"
// @Param        body  body      updateDocumentStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/documents/{id}/status [patch]
func (h *ProviderHandler) UpdateDocumentStatus(c echo.Context) error {
	var req updateDocumentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateDocumentStatus(c.Request().Context(), c.Param("id"), domain.DocumentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// --- Withdrawals ---

// ListWithdrawals handles GET /v1/withdrawals.
//
// @Summary      List payout withdrawals with provider names merged in
// @Tags         withdrawals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Withdrawal
// @Failure      502  {object}  errorResponse
// @Router       /v1/withdrawals [get]
func (h *ProviderHandler) ListWithdrawals(c echo.Context) error {
	withdrawals, err := h.service.ListWithdrawals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, withdrawals)
}

// UpdateWithdrawalStatus handles PATCH /v1/withdrawals/:id/status.
//
// @Summary      Mark a withdrawal paid or rejected
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                         true  "Withdrawal id"
// @Param        body  body      updateWithdrawalStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Withdrawal
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/withdrawals/{id}/status [patch]
func (h *ProviderHandler) UpdateWithdrawalStatus(c echo.Context) error {
	var req updateWithdrawalStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateWithdrawalStatus(c.Request().Context(), c.Param("id"), domain.WithdrawalStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
