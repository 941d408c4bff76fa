package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a membership package
// @Tags         admin,packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body catalog.CreatePackageRequest true "Package payload"
// @Success      201 {object} catalog.Package
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/packages [post]
func (h *Handler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidPackage) {
			api.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("create package failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to create package")
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      List membership packages
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        all query bool false "Include inactive packages"
// @Success      200 {array} catalog.Package
// @Router       /packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	packages, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}

	c.JSON(http.StatusOK, packages)
}

// @Summary      Get a membership package
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Package ID"
// @Success      200 {object} catalog.Package
// @Failure      404 {object} api.ErrorResponse
// @Router       /packages/{id} [get]
func (h *Handler) GetPackage(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Update a membership package
// @Tags         admin,packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Package ID"
// @Param        request body catalog.UpdatePackageRequest true "Fields to change"
// @Success      200 {object} catalog.Package
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/packages/{id} [patch]
func (h *Handler) UpdatePackage(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Activate or retire a package
// @Tags         admin,packages
// @Accept       json
// @Security     BearerAuth
// @Param        id path int true "Package ID"
// @Param        request body catalog.SetActiveRequest true "Active flag"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/packages/{id}/active [put]
func (h *Handler) SetActive(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.SetActive(c.Request.Context(), id, req.Active); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Package updated"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPackageNotFound):
		api.Fail(c, http.StatusNotFound, "Package not found")
	case errors.Is(err, ErrInvalidPackage):
		api.Fail(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("package request failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
