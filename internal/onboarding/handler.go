package onboarding

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/api"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/auth"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/payment"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FailureResponse names the failed step and what was created before it.
type FailureResponse struct {
	Error  string  `json:"error"`
	Step   string  `json:"step,omitempty"`
	Result *Result `json:"created,omitempty"`
}

// @Summary      Onboard a member
// @Description  Creates the member, sells a membership, optionally sets up a payment plan and records the down payment.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body onboarding.Request true "Onboarding payload"
// @Success      201 {object} onboarding.Result
// @Failure      400 {object} onboarding.FailureResponse
// @Failure      409 {object} onboarding.FailureResponse
// @Router       /onboarding [post]
func (h *Handler) Onboard(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if userID, ok := auth.GetUserID(c); ok {
		req.ReceivedBy = &userID
	}

	res, err := h.service.Onboard(c.Request.Context(), req)
	if err != nil {
		resp := FailureResponse{Error: err.Error()}
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			resp.Step = stepErr.Step
			resp.Error = stepErr.Err.Error()
			if stepErr.Result != nil && stepErr.Result.Member != nil {
				resp.Result = stepErr.Result
			}
		}

		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("onboarding failed", "error", err)
			resp.Error = "Internal server error"
		}
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrPackageNotFound):
		return http.StatusNotFound
	case errors.Is(err, member.ErrNameRequired),
		errors.Is(err, ErrTrialNotPayable),
		errors.Is(err, ErrDownPaymentTooLarge),
		errors.Is(err, paymentplan.ErrInvalidSchedule),
		errors.Is(err, paymentplan.ErrInvalidLateFee),
		errors.Is(err, paymentplan.ErrTooManyInstallments),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrInvalidMethod):
		return http.StatusBadRequest
	case errors.Is(err, member.ErrEmailExists),
		errors.Is(err, membership.ErrPackageInactive),
		errors.Is(err, membership.ErrTrialUnavailable),
		errors.Is(err, paymentplan.ErrInstallmentsNotAllowed),
		errors.Is(err, paymentplan.ErrNothingToFinance),
		errors.Is(err, payment.ErrOverpayment):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
