package membership

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Sell a membership
// @Description  Creates a paid or trial membership for a member.
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.CreateRequest true "Membership payload"
// @Success      201 {object} membership.Membership
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /memberships [post]
func (h *Handler) CreateMembership(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListMemberships(c *gin.Context) {
	limit, offset := api.Pagination(c)

	list, err := h.service.List(c.Request.Context(), ListFilter{Status: c.Query("status"), Limit: limit, Offset: offset})
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Data: list, Limit: limit, Offset: offset})
}

func (h *Handler) GetMembership(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	d, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) ListMemberMemberships(c *gin.Context) {
	memberID, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	list, err := h.service.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// @Summary      Memberships ending soon
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        days query int false "Window in days (default 7)"
// @Success      200 {array} membership.Detail
// @Router       /memberships/expiring [get]
func (h *Handler) ListExpiring(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 || days > 365 {
		api.Fail(c, http.StatusBadRequest, "invalid days")
		return
	}

	list, err := h.service.ListExpiring(c.Request.Context(), days)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) Freeze(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req FreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Freeze(c.Request.Context(), id, req.Reason)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) Unfreeze(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	m, err := h.service.Unfreeze(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Membership cancelled"})
}

func (h *Handler) Renew(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req RenewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	m, err := h.service.Renew(c.Request.Context(), id, req.StartDate)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// Fail maps membership and related lookup errors to HTTP responses.
func Fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMembershipNotFound):
		api.Fail(c, http.StatusNotFound, "Membership not found")
	case errors.Is(err, member.ErrMemberNotFound):
		api.Fail(c, http.StatusNotFound, "Member not found")
	case errors.Is(err, catalog.ErrPackageNotFound):
		api.Fail(c, http.StatusNotFound, "Package not found")
	case errors.Is(err, ErrPackageInactive),
		errors.Is(err, ErrMemberInactive),
		errors.Is(err, ErrTrialUnavailable),
		errors.Is(err, ErrFreezeNotAllowed),
		errors.Is(err, ErrFreezeExhausted),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrVisitLimitReached),
		errors.Is(err, ErrNoSessionsLeft):
		api.Fail(c, http.StatusConflict, err.Error())
	default:
		logger.Error("membership request failed", "path", c.FullPath(), "error", err)
		api.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
