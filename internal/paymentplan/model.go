package paymentplan

import "time"

const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

const (
	LateFeeNone    = "none"
	LateFeeFixed   = "fixed"
	LateFeePercent = "percent"
)

const (
	PlanActive    = "active"
	PlanCompleted = "completed"
	PlanCancelled = "cancelled"
)

const (
	StatusPending   = "pending"
	StatusPartial   = "partial"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
	StatusWaived    = "waived"
)

type PaymentPlan struct {
	ID               int           `db:"id" json:"id"`
	MembershipID     int           `db:"membership_id" json:"membership_id"`
	TotalCents       int64         `db:"total_cents" json:"total_cents"`
	DownPaymentCents int64         `db:"down_payment_cents" json:"down_payment_cents"`
	InstallmentCount int           `db:"installment_count" json:"installment_count"`
	Frequency        string        `db:"frequency" json:"frequency"`
	StartDate        time.Time     `db:"start_date" json:"start_date"`
	LateFeeType      string        `db:"late_fee_type" json:"late_fee_type"`
	LateFeeValue     int64         `db:"late_fee_value" json:"late_fee_value"`
	GraceDays        int           `db:"grace_days" json:"grace_days"`
	Status           string        `db:"status" json:"status"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	Installments     []Installment `db:"-" json:"installments"`
}

// Installment is one dated slice of a plan. Sequence 0 is the down payment.
type Installment struct {
	ID             int        `db:"id" json:"id"`
	PlanID         int        `db:"plan_id" json:"plan_id"`
	MembershipID   int        `db:"membership_id" json:"membership_id"`
	Sequence       int        `db:"sequence" json:"sequence"`
	DueDate        time.Time  `db:"due_date" json:"due_date"`
	AmountCents    int64      `db:"amount_cents" json:"amount_cents"`
	PaidCents      int64      `db:"paid_cents" json:"paid_cents"`
	LateFeeCents   int64      `db:"late_fee_cents" json:"late_fee_cents"`
	LateFeeApplied bool       `db:"late_fee_applied" json:"late_fee_applied"`
	Status         string     `db:"status" json:"status"`
	PaidAt         *time.Time `db:"paid_at" json:"paid_at,omitempty"`
}

// InstallmentDetail adds the member contact data used by reminders.
type InstallmentDetail struct {
	Installment
	MemberID        int     `db:"member_id" json:"member_id"`
	MemberFirstName string  `db:"member_first_name" json:"member_first_name"`
	MemberLastName  string  `db:"member_last_name" json:"member_last_name"`
	MemberEmail     *string `db:"member_email" json:"member_email,omitempty"`
}

func (d InstallmentDetail) Email() string {
	if d.MemberEmail == nil {
		return ""
	}
	return *d.MemberEmail
}

// Assessment reports what the late-fee sweep did to one installment.
type Assessment struct {
	InstallmentDetail
	FeeCents     int64 `json:"fee_cents"`
	NewlyOverdue bool  `json:"newly_overdue"`
}

type CreatePlanRequest struct {
	InstallmentCount int        `json:"installment_count" binding:"required,gte=1,lte=36"`
	Frequency        string     `json:"frequency" binding:"required,oneof=weekly biweekly monthly"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	DownPaymentCents int64      `json:"down_payment_cents" binding:"gte=0"`
	LateFeeType      string     `json:"late_fee_type" binding:"omitempty,oneof=none fixed percent"`
	LateFeeValue     int64      `json:"late_fee_value" binding:"gte=0"`
	GraceDays        int        `json:"grace_days" binding:"gte=0,lte=60"`
}

type WaiveRequest struct {
	IncludePrincipal bool `json:"include_principal"`
}

// Outstanding is what is still owed on the installment, late fee included.
func (i *Installment) Outstanding() int64 {
	out := i.AmountCents + i.LateFeeCents - i.PaidCents
	if out < 0 {
		return 0
	}
	return out
}

// Open reports whether the installment still accepts payments.
func (i *Installment) Open() bool {
	switch i.Status {
	case StatusPending, StatusPartial, StatusOverdue:
		return true
	}
	return false
}

// Settled reports whether the installment needs no further payment.
func (i *Installment) Settled() bool {
	switch i.Status {
	case StatusPaid, StatusWaived, StatusCancelled:
		return true
	}
	return false
}
