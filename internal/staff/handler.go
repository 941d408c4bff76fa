package staff

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
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

// @Summary      Add a staff member
// @Tags         admin,staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body staff.CreateStaffRequest true "Staff payload"
// @Success      201 {object} staff.Staff
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/staff [post]
func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	st, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, st)
}

func (h *Handler) ListStaff(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), ListFilter{
		Role:       c.Query("role"),
		ActiveOnly: c.Query("all") != "true",
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetStaff(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	st, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, st)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	st, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, st)
}

func (h *Handler) DeactivateStaff(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Staff member deactivated"})
}

// @Summary      Replace a weekly schedule
// @Tags         admin,staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Staff ID"
// @Param        request body staff.SetScheduleRequest true "Shifts"
// @Success      200 {array} staff.Shift
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/staff/{id}/schedule [put]
func (h *Handler) SetSchedule(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	shifts, err := h.service.SetSchedule(c.Request.Context(), id, req.Shifts)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

func (h *Handler) GetSchedule(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	shifts, err := h.service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

func (h *Handler) AssignClient(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req AssignClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	client, err := h.service.AssignClient(c.Request.Context(), id, req.MemberID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *Handler) UnassignClient(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	memberID, ok := api.PathID(c, "memberId")
	if !ok {
		return
	}

	if err := h.service.UnassignClient(c.Request.Context(), id, memberID); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Client unassigned"})
}

func (h *Handler) ListClients(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	clients, err := h.service.ListClients(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// @Summary      Trainer commission
// @Description  Session commission plus a share of payments from assigned clients. Defaults to the current month.
// @Tags         admin,staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int    true  "Trainer ID"
// @Param        from query string false "YYYY-MM-DD"
// @Param        to   query string false "YYYY-MM-DD, inclusive"
// @Success      200 {object} staff.CommissionReport
// @Router       /admin/staff/{id}/commission [get]
func (h *Handler) CommissionReport(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	today := calendar.Today()
	from, to := calendar.MonthStart(today), today
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

	report, err := h.service.CommissionReport(c.Request.Context(), id, from, to)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrStaffNotFound):
		api.Fail(c, http.StatusNotFound, "Staff member not found")
	case errors.Is(err, member.ErrMemberNotFound):
		api.Fail(c, http.StatusNotFound, "Member not found")
	case errors.Is(err, ErrAssignmentNotFound):
		api.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidShift), errors.Is(err, ErrShiftOverlap):
		api.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailExists),
		errors.Is(err, ErrNotTrainer),
		errors.Is(err, ErrStaffInactive),
		errors.Is(err, ErrClientAssigned),
		errors.Is(err, member.ErrMemberInactive):
		api.Fail(c, http.StatusConflict, err.Error())
	default:
		logger.Error("staff request failed", "path", c.FullPath(), "error", err)
		api.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
