package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// CatalogHandler serves the categories, subcategories, and services screens.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// --- Categories ---

// ListCategories handles GET /v1/categories.
//
// @Summary      List categories with subcategory counts
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Category
// @Failure      502  {object}  errorResponse
// @Router       /v1/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	cats, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

// GetCategory handles GET /v1/categories/:id.
//
// @Summary      Get a category
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  errorResponse
// @Router       /v1/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	cat, err := h.service.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// CreateCategory handles POST /v1/categories.
//
// @Summary      Create a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category fields"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Router       /v1/categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		CategoryName: req.CategoryName,
		ImageURL:     req.ImageURL,
		Active:       req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCategory handles PATCH /v1/categories/:id.
//
// @Summary      Update a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Category id"
// @Param        body  body      updateCategoryRequest  true  "Fields to patch"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/categories/{id} [patch]
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.UpdateCategory(c.Request().Context(), c.Param("id"), ports.UpdateCategoryInput{
		CategoryName: req.CategoryName,
		ImageURL:     req.ImageURL,
		Active:       req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCategory handles DELETE /v1/categories/:id.
//
// @Summary      Delete a category
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Category id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.service.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Subcategories ---

// ListSubCategories handles GET /v1/subcategories?category_id=.
//
// @Summary      List subcategories with parent names attached
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  query     string  false  "Restrict to one parent category"
// @Success      200          {array}   domain.SubCategory
// @Failure      502          {object}  errorResponse
// @Router       /v1/subcategories [get]
func (h *CatalogHandler) ListSubCategories(c echo.Context) error {
	subs, err := h.service.ListSubCategories(c.Request().Context(), c.QueryParam("category_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// CreateSubCategory handles POST /v1/subcategories.
//
// @Summary      Create a subcategory
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSubCategoryRequest  true  "Subcategory fields"
// @Success      201   {object}  domain.SubCategory
// @Failure      400   {object}  errorResponse
// @Router       /v1/subcategories [post]
func (h *CatalogHandler) CreateSubCategory(c echo.Context) error {
	var req createSubCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateSubCategory(c.Request().Context(), ports.CreateSubCategoryInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		Active:     req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// CreateSubCategoryBatch handles POST /v1/subcategories/batch. All inputs are
// inserted or none are.
//
// @Summary      Create several subcategories atomically
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSubCategoryBatchRequest  true  "Subcategories to insert"
// @Success      201   {array}   domain.SubCategory
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/subcategories/batch [post]
func (h *CatalogHandler) CreateSubCategoryBatch(c echo.Context) error {
	var req createSubCategoryBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inputs := make([]ports.CreateSubCategoryInput, len(req.SubCategories))
	for i, one := range req.SubCategories {
		inputs[i] = ports.CreateSubCategoryInput{
			CategoryID: one.CategoryID,
			Name:       one.Name,
			ImageURL:   one.ImageURL,
			Active:     one.Active,
		}
	}

	created, err := h.service.CreateSubCategoryBatch(c.Request().Context(), inputs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSubCategory handles PATCH /v1/subcategories/:id.
//
// @Summary      Update a subcategory
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Subcategory id"
// @Param        body  body      updateSubCategoryRequest  true  "Fields to patch"
// @Success      200   {object}  domain.SubCategory
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/subcategories/{id} [patch]
func (h *CatalogHandler) UpdateSubCategory(c echo.Context) error {
	var req updateSubCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.UpdateSubCategory(c.Request().Context(), c.Param("id"), ports.UpdateSubCategoryInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		Active:     req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSubCategory handles DELETE /v1/subcategories/:id.
//
// @Summary      Delete a subcategory
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Subcategory id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/subcategories/{id} [delete]
func (h *CatalogHandler) DeleteSubCategory(c echo.Context) error {
	if err := h.service.DeleteSubCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Services ---

// ListServices handles GET /v1/services.
//
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        provider_id       query     string  false  "Restrict to one provider"
// @Param        include_archived  query     bool    false  "Include archived records"
// @Success      200               {array}   domain.Service
// @Failure      502               {object}  errorResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.service.ListServices(c.Request().Context(), ports.ListServicesInput{
		ProviderID:      c.QueryParam("provider_id"),
		IncludeArchived: c.QueryParam("include_archived") == "true",
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// GetService handles GET /v1/services/:id.
//
// @Summary      Get a service
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Router       /v1/services/{id} [get]
func (h *CatalogHandler) GetService(c echo.Context) error {
	svc, err := h.service.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// CreateService handles POST /v1/services.
//
// @Summary      Create a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service fields"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Router       /v1/services [post]
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateService(c.Request().Context(), ports.CreateServiceInput{
		ProviderID:      req.ProviderID,
		CategoryID:      req.CategoryID,
		SubCategoryID:   req.SubCategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		ImageURL:        req.ImageURL,
		Active:          req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateService handles PATCH /v1/services/:id.
//
// @Summary      Update a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to patch"
// @Success      200   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/services/{id} [patch]
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateService(c.Request().Context(), c.Param("id"), ports.UpdateServiceInput{
		CategoryID:      req.CategoryID,
		SubCategoryID:   req.SubCategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		ImageURL:        req.ImageURL,
		Active:          req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteService handles DELETE /v1/services/:id. A service with dependent
// bookings is archived instead of removed; the response says which happened.
//
// @Summary      Delete or archive a service
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  deleteServiceResponse
// @Failure      404  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	result, err := h.service.DeleteService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteServiceResponse{Archived: result.Archived})
}
