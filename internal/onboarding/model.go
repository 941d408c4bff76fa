package onboarding

import (
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/payment"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
)

// Steps, in the order they run.
const (
	StepMember      = "member"
	StepMembership  = "membership"
	StepPlan        = "plan"
	StepDownPayment = "down_payment"
)

type DownPayment struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required,oneof=cash card transfer online"`
	Reference   string `json:"reference" binding:"max=120"`
}

// Request signs up a new member and sells the first membership in one call.
type Request struct {
	Member        member.CreateMemberRequest     `json:"member"`
	PackageID     int                            `json:"package_id" binding:"required,gt=0"`
	StartDate     *time.Time                     `json:"start_date,omitempty"`
	DiscountCents int64                          `json:"discount_cents" binding:"gte=0"`
	Trial         bool                           `json:"trial"`
	DownPayment   *DownPayment                   `json:"down_payment,omitempty"`
	Plan          *paymentplan.CreatePlanRequest `json:"plan,omitempty"`
	ReceivedBy    *int                           `json:"-"`
}

type Result struct {
	Member     *member.Member           `json:"member"`
	Membership *membership.Membership   `json:"membership,omitempty"`
	Plan       *paymentplan.PaymentPlan `json:"plan,omitempty"`
	Payment    *payment.Result          `json:"payment,omitempty"`
}

// StepError reports which step failed and what was already created.
type StepError struct {
	Step   string
	Result *Result
	Err    error
}

func (e *StepError) Error() string {
	return "onboarding " + e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error { return e.Err }
