package attendance

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/auth"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Scan a member card
// @Description  Checks the member in when they hold a usable membership. Denied scans answer 403 with a reason.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body attendance.ScanRequest true "Check-in code"
// @Success      201 {object} attendance.Result
// @Failure      403 {object} attendance.Result
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /attendance/scan [post]
func (h *Handler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.Scan(c.Request.Context(), req.Code, recorder(c))
	h.respond(c, res, err)
}

func (h *Handler) ManualCheckIn(c *gin.Context) {
	var req ManualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.ManualCheckIn(c.Request.Context(), req.MemberID, recorder(c))
	h.respond(c, res, err)
}

func (h *Handler) respond(c *gin.Context, res *Result, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	if !res.Granted {
		c.JSON(http.StatusForbidden, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.CheckOut(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) ListByMember(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	limit, offset := api.Pagination(c)

	list, err := h.service.ListByMember(c.Request.Context(), id, limit, offset)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Data: list, Limit: limit, Offset: offset})
}

// ListByDay defaults to today.
func (h *Handler) ListByDay(c *gin.Context) {
	day := calendar.Today()
	if v := c.Query("date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			api.Fail(c, http.StatusBadRequest, "invalid date")
			return
		}
		day = t
	}

	list, err := h.service.ListByDay(c.Request.Context(), day)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// CountByDay defaults to the last 30 days.
func (h *Handler) CountByDay(c *gin.Context) {
	to := calendar.Today()
	from := calendar.AddDays(to, -29)
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

	counts, err := h.service.CountByDay(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

func recorder(c *gin.Context) *int {
	if id, ok := auth.GetUserID(c); ok {
		return &id
	}
	return nil
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, member.ErrMemberNotFound):
		api.Fail(c, http.StatusNotFound, "Unknown member")
	case errors.Is(err, ErrAttendanceNotFound):
		api.Fail(c, http.StatusNotFound, "Attendance record not found")
	case errors.Is(err, ErrRangeTooLong):
		api.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAlreadyCheckedIn), errors.Is(err, ErrAlreadyCheckedOut):
		api.Fail(c, http.StatusConflict, err.Error())
	default:
		logger.Error("attendance request failed", "path", c.FullPath(), "error", err)
		api.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
