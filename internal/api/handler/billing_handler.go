package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// BillingHandler serves the coupons and taxes screens.
type BillingHandler struct {
	service ports.BillingService
}

func NewBillingHandler(service ports.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// --- Coupons ---

// ListCoupons handles GET /v1/coupons.
//
// @Summary      List coupons
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Coupon
// @Failure      502  {object}  errorResponse
// @Router       /v1/coupons [get]
func (h *BillingHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.service.ListCoupons(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coupons)
}

// CreateCoupon handles POST /v1/coupons.
//
// @Summary      Create a coupon
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCouponRequest  true  "Coupon fields"
// @Success      201   {object}  domain.Coupon
// @Failure      400   {object}  errorResponse
// @Router       /v1/coupons [post]
func (h *BillingHandler) CreateCoupon(c echo.Context) error {
	var req createCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateCoupon(c.Request().Context(), ports.CreateCouponInput{
		Code:         req.Code,
		DiscountType: req.DiscountType,
		Amount:       req.Amount,
		MaxUses:      req.MaxUses,
		ExpiresAt:    req.ExpiresAt,
		Active:       req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCoupon handles PATCH /v1/coupons/:id.
//
// @Summary      Update a coupon
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Coupon id"
// @Param        body  body      updateCouponRequest  true  "Fields to patch"
// @Success      200   {object}  domain.Coupon
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/coupons/{id} [patch]
func (h *BillingHandler) UpdateCoupon(c echo.Context) error {
	var req updateCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateCoupon(c.Request().Context(), c.Param("id"), ports.UpdateCouponInput{
		Code:         req.Code,
		DiscountType: req.DiscountType,
		Amount:       req.Amount,
		MaxUses:      req.MaxUses,
		ExpiresAt:    req.ExpiresAt,
		Active:       req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCoupon handles DELETE /v1/coupons/:id.
//
// @Summary      Delete a coupon
// @Tags         billing
// @Security     BearerAuth
// @Param        id  path  string  true  "Coupon id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/coupons/{id} [delete]
func (h *BillingHandler) DeleteCoupon(c echo.Context) error {
	if err := h.service.DeleteCoupon(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Taxes ---

// ListTaxes handles GET /v1/taxes.
//
// @Summary      List taxes
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Tax
// @Failure      502  {object}  errorResponse
// @Router       /v1/taxes [get]
func (h *BillingHandler) ListTaxes(c echo.Context) error {
	taxes, err := h.service.ListTaxes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taxes)
}

// CreateTax handles POST /v1/taxes. New taxes stay inactive until an
// operator switches them on.
//
// @Summary      Create a tax
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaxRequest  true  "Tax fields"
// @Success      201   {object}  domain.Tax
// @Failure      400   {object}  errorResponse
// @Router       /v1/taxes [post]
func (h *BillingHandler) CreateTax(c echo.Context) error {
	var req createTaxRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateTax(c.Request().Context(), ports.CreateTaxInput{
		Name:   req.Name,
		Type:   req.Type,
		Rate:   req.Rate,
		Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateTax handles PATCH /v1/taxes/:id.
//
// @Summary      Update a tax
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Tax id"
// @Param        body  body      updateTaxRequest  true  "Fields to patch"
// @Success      200   {object}  domain.Tax
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/taxes/{id} [patch]
func (h *BillingHandler) UpdateTax(c echo.Context) error {
	var req updateTaxRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateTax(c.Request().Context(), c.Param("id"), ports.UpdateTaxInput{
		Name:   req.Name,
		Type:   req.Type,
		Rate:   req.Rate,
		Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTax handles DELETE /v1/taxes/:id.
//
// @Summary      Delete a tax
// @Tags         billing
// @Security     BearerAuth
// @Param        id  path  string  true  "Tax id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/taxes/{id} [delete]
func (h *BillingHandler) DeleteTax(c echo.Context) error {
	if err := h.service.DeleteTax(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
