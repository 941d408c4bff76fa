package member

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

// @Summary      Register a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body member.CreateMemberRequest true "Member payload"
// @Success      201 {object} member.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// @Summary      List members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "active or inactive"
// @Param        q      query string false "Search name, email or phone"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Offset"
// @Success      200 {object} api.ListResponse
// @Router       /members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	limit, offset := api.Pagination(c)
	filter := ListFilter{
		Status: c.Query("status"),
		Search: c.Query("q"),
		Limit:  limit,
		Offset: offset,
	}

	members, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Data: members, Limit: limit, Offset: offset})
}

func (h *Handler) GetMember(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateMember(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeactivateMember(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member deactivated"})
}

func (h *Handler) ReactivateMember(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Reactivate(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member reactivated"})
}

// @Summary      Issue a new check-in code
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Member ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/{id}/checkin-code [post]
func (h *Handler) RegenerateCheckinCode(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	code, err := h.service.RegenerateCheckinCode(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkin_code": code})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		api.Fail(c, http.StatusNotFound, "Member not found")
	case errors.Is(err, ErrEmailExists):
		api.Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNameRequired):
		api.Fail(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("member request failed", "path", c.FullPath(), "error", err)
		api.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
