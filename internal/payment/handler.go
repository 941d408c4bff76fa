package payment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/auth"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Record a payment
// @Description  Credits a membership and its open installments. Repeating a request with the same Idempotency-Key returns the original payment.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key header string false "Client supplied key"
// @Param        request body payment.RecordRequest true "Payment"
// @Success      201 {object} payment.Result
// @Success      200 {object} payment.Result "Replayed"
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = c.GetHeader("Idempotency-Key")
	}
	if userID, ok := auth.GetUserID(c); ok {
		req.ReceivedBy = &userID
	}

	res, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, res)
}

// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        member_id     query int    false "Member"
// @Param        membership_id query int    false "Membership"
// @Param        method        query string false "Payment method"
// @Param        from          query string false "YYYY-MM-DD"
// @Param        to            query string false "YYYY-MM-DD, inclusive"
// @Success      200 {object} api.ListResponse
// @Router       /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	limit, offset := api.Pagination(c)
	filter := ListFilter{Method: c.Query("method"), Limit: limit, Offset: offset}

	var ok bool
	if filter.MemberID, ok = api.QueryID(c, "member_id"); !ok {
		return
	}
	if filter.MembershipID, ok = api.QueryID(c, "membership_id"); !ok {
		return
	}

	if v := c.Query("from"); v != "" {
		from, err := time.Parse(dateLayout, v)
		if err != nil {
			api.Fail(c, http.StatusBadRequest, "invalid from date")
			return
		}
		filter.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(dateLayout, v)
		if err != nil {
			api.Fail(c, http.StatusBadRequest, "invalid to date")
			return
		}
		end := calendar.AddDays(to, 1)
		filter.To = &end
	}

	payments, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Data: payments, Limit: limit, Offset: offset})
}

func (h *Handler) GetPayment(c *gin.Context) {
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

// @Summary      Refund a payment
// @Tags         admin,payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Payment ID"
// @Param        request body payment.RefundRequest true "Reason"
// @Success      200 {object} payment.Result
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/payments/{id}/refund [post]
func (h *Handler) RefundPayment(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.Refund(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Summary defaults to the current month.
func (h *Handler) Summary(c *gin.Context) {
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

	sum, err := h.service.Summary(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sum)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPaymentNotFound):
		api.Fail(c, http.StatusNotFound, "Payment not found")
	case errors.Is(err, membership.ErrMembershipNotFound):
		api.Fail(c, http.StatusNotFound, "Membership not found")
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidMethod):
		api.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrOverpayment),
		errors.Is(err, ErrMembershipCancelled),
		errors.Is(err, ErrAlreadyRefunded),
		errors.Is(err, ErrIdempotencyConflict),
		errors.Is(err, ErrInstallmentNotOpen):
		api.Fail(c, http.StatusConflict, err.Error())
	default:
		logger.Error("payment request failed", "path", c.FullPath(), "error", err)
		api.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
