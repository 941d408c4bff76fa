package dashboard

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/attendance"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Owner dashboard
// @Description  Headline numbers for the gym. Served from cache unless fresh=true.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        fresh query bool false "Bypass the cache"
// @Success      200 {object} dashboard.Summary
// @Router       /admin/dashboard/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	fresh, _ := strconv.ParseBool(c.Query("fresh"))

	sum, err := h.service.Summary(c.Request.Context(), fresh)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sum)
}

func (h *Handler) RevenueByMonth(c *gin.Context) {
	months, err := strconv.Atoi(c.DefaultQuery("months", "12"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid months")
		return
	}

	rows, err := h.service.RevenueByMonth(c.Request.Context(), months)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// AttendanceByDay defaults to the last 30 days.
func (h *Handler) AttendanceByDay(c *gin.Context) {
	to := calendar.Today()
	from := calendar.AddDays(to, -29)
	for name, dst := range map[string]*time.Time{"from": &from, "to": &to} {
		if v := c.Query(name); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				api.Fail(c, http.StatusBadRequest, "invalid "+name+" date")
				return
			}
			*dst = t
		}
	}

	counts, err := h.service.AttendanceByDay(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (h *Handler) PackagePopularity(c *gin.Context) {
	stats, err := h.service.PackagePopularity(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, attendance.ErrRangeTooLong) {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	logger.Error("dashboard request failed", "path", c.FullPath(), "error", err)
	api.Fail(c, http.StatusInternalServerError, "Internal server error")
}
