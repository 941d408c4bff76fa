package paymentplan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a payment plan
// @Description  Splits the membership's pending balance into dated installments.
// @Tags         payment-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Membership ID"
// @Param        request body paymentplan.CreatePlanRequest true "Plan settings"
// @Success      201 {object} paymentplan.PaymentPlan
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /memberships/{id}/plan [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	membershipID, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.service.CreateForMembership(c.Request.Context(), membershipID, req)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *Handler) GetMembershipPlan(c *gin.Context) {
	membershipID, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.service.GetByMembership(c.Request.Context(), membershipID)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *Handler) GetPlan(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *Handler) ListOverdue(c *gin.Context) {
	list, err := h.service.ListOverdue(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) ListUpcoming(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 || days > 90 {
		api.Fail(c, http.StatusBadRequest, "invalid days")
		return
	}

	list, err := h.service.ListUpcoming(c.Request.Context(), days)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Waive an installment's late fee
// @Tags         admin,payment-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Installment ID"
// @Param        request body paymentplan.WaiveRequest false "Also forgive the principal"
// @Success      200 {object} paymentplan.Installment
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/installments/{id}/waive [post]
func (h *Handler) Waive(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req WaiveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	inst, err := h.service.Waive(c.Request.Context(), id, req.IncludePrincipal)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, inst)
}

func Fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		api.Fail(c, http.StatusNotFound, "Payment plan not found")
	case errors.Is(err, ErrInstallmentNotFound):
		api.Fail(c, http.StatusNotFound, "Installment not found")
	case errors.Is(err, ErrMembershipNotFound):
		api.Fail(c, http.StatusNotFound, "Membership not found")
	case errors.Is(err, catalog.ErrPackageNotFound):
		api.Fail(c, http.StatusNotFound, "Package not found")
	case errors.Is(err, ErrInvalidSchedule),
		errors.Is(err, ErrInvalidLateFee),
		errors.Is(err, ErrTooManyInstallments):
		api.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNothingToFinance),
		errors.Is(err, ErrMembershipClosed),
		errors.Is(err, ErrActivePlanExists),
		errors.Is(err, ErrInstallmentsNotAllowed),
		errors.Is(err, ErrNothingToWaive):
		api.Fail(c, http.StatusConflict, err.Error())
	default:
		logger.Error("payment plan request failed", "path", c.FullPath(), "error", err)
		api.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
