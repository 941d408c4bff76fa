package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/staff"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Book a training session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body session.ScheduleRequest true "Session"
// @Success      201 {object} session.TrainingSession
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /sessions [post]
func (h *Handler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ts, err := h.service.Schedule(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, ts)
}

func (h *Handler) GetSession(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	ts, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ts)
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	ts, err := h.service.Complete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ts)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	ts, err := h.service.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ts)
}

func (h *Handler) MarkNoShow(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	ts, err := h.service.MarkNoShow(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ts)
}

// ListByTrainer defaults to the next seven days.
func (h *Handler) ListByTrainer(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	from := calendar.Today()
	to := calendar.AddDays(from, 6)
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			api.Fail(c, http.StatusBadRequest, "invalid from date")
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			api.Fail(c, http.StatusBadRequest, "invalid to date")
			return
		}
		to = t
	}

	list, err := h.service.ListByTrainer(c.Request.Context(), id, from, to)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) ListByMember(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	list, err := h.service.ListByMember(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		api.Fail(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, staff.ErrStaffNotFound):
		api.Fail(c, http.StatusNotFound, "Trainer not found")
	case errors.Is(err, member.ErrMemberNotFound):
		api.Fail(c, http.StatusNotFound, "Member not found")
	case errors.Is(err, membership.ErrMembershipNotFound):
		api.Fail(c, http.StatusNotFound, "Membership not found")
	case errors.Is(err, ErrInPast), errors.Is(err, ErrMembershipMismatch):
		api.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTrainerBusy),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrNotStarted),
		errors.Is(err, ErrMembershipNotUsable),
		errors.Is(err, staff.ErrNotTrainer),
		errors.Is(err, staff.ErrStaffInactive),
		errors.Is(err, member.ErrMemberInactive),
		errors.Is(err, membership.ErrNoSessionsLeft):
		api.Fail(c, http.StatusConflict, err.Error())
	default:
		logger.Error("session request failed", "path", c.FullPath(), "error", err)
		api.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
