package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// ContentHandler serves the banners and payment-settings screens.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// --- Banners ---

// ListBanners handles GET /v1/banners.
//
// @Summary      List banners
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Banner
// @Failure      502  {object}  errorResponse
// @Router       /v1/banners [get]
func (h *ContentHandler) ListBanners(c echo.Context) error {
	banners, err := h.service.ListBanners(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, banners)
}

// CreateBanner handles POST /v1/banners.
//
// @Summary      Create a banner
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBannerRequest  true  "Banner fields"
// @Success      201   {object}  domain.Banner
// @Failure      400   {object}  errorResponse
// @Router       /v1/banners [post]
func (h *ContentHandler) CreateBanner(c echo.Context) error {
	var req createBannerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateBanner(c.Request().Context(), ports.CreateBannerInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateBanner handles PATCH /v1/banners/:id.
//
// @Summary      Update a banner
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Banner id"
// @Param        body  body      updateBannerRequest  true  "Fields to patch"
// @Success      200   {object}  domain.Banner
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/banners/{id} [patch]
func (h *ContentHandler) UpdateBanner(c echo.Context) error {
	var req updateBannerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateBanner(c.Request().Context(), c.Param("id"), ports.UpdateBannerInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBanner handles DELETE /v1/banners/:id.
//
// @Summary      Delete a banner
// @Tags         content
// @Security     BearerAuth
// @Param        id  path  string  true  "Banner id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/banners/{id} [delete]
func (h *ContentHandler) DeleteBanner(c echo.Context) error {
	if err := h.service.DeleteBanner(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Payment settings ---

// GetPaymentSetting handles GET /v1/payment-settings.
//
// @Summary      Read the platform payment configuration
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PaymentSetting
// @Failure      404  {object}  errorResponse
// @Router       /v1/payment-settings [get]
func (h *ContentHandler) GetPaymentSetting(c echo.Context) error {
	setting, err := h.service.GetPaymentSetting(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, setting)
}

// SavePaymentSetting handles PUT /v1/payment-settings (upsert).
//
// @Summary      Replace the platform payment configuration
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      savePaymentSettingRequest  true  "Payment configuration"
// @Success      200   {object}  domain.PaymentSetting
// @Failure      400   {object}  errorResponse
// @Router       /v1/payment-settings [put]
func (h *ContentHandler) SavePaymentSetting(c echo.Context) error {
	var req savePaymentSettingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.service.SavePaymentSetting(c.Request().Context(), ports.SavePaymentSettingInput{
		CommissionRate: req.CommissionRate,
		Currency:       req.Currency,
		Gateway:        req.Gateway,
		GatewayKey:     req.GatewayKey,
		TaxEnabled:     req.TaxEnabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}
