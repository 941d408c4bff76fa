package membership

import (
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
)

const (
	StatusActive    = "active"
	StatusTrial     = "trial"
	StatusFrozen    = "frozen"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

const (
	PaymentUnpaid  = "unpaid"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

type Membership struct {
	ID                 int        `db:"id" json:"id"`
	MemberID           int        `db:"member_id" json:"member_id"`
	PackageID          int        `db:"package_id" json:"package_id"`
	Status             string     `db:"status" json:"status"`
	StartDate          time.Time  `db:"start_date" json:"start_date"`
	EndDate            time.Time  `db:"end_date" json:"end_date"`
	AmountDueCents     int64      `db:"amount_due_cents" json:"amount_due_cents"`
	AmountPaidCents    int64      `db:"amount_paid_cents" json:"amount_paid_cents"`
	AmountPendingCents int64      `db:"amount_pending_cents" json:"amount_pending_cents"`
	DiscountCents      int64      `db:"discount_cents" json:"discount_cents"`
	PaymentStatus      string     `db:"payment_status" json:"payment_status"`
	VisitsLimit        *int       `db:"visits_limit" json:"visits_limit,omitempty"`
	VisitsUsed         int        `db:"visits_used" json:"visits_used"`
	SessionsRemaining  int        `db:"sessions_remaining" json:"sessions_remaining"`
	FrozenAt           *time.Time `db:"frozen_at" json:"frozen_at,omitempty"`
	FreezeReason       *string    `db:"freeze_reason" json:"freeze_reason,omitempty"`
	FreezeDaysUsed     int        `db:"freeze_days_used" json:"freeze_days_used"`
	CancelledAt        *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CancelReason       *string    `db:"cancel_reason" json:"cancel_reason,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// Detail is a membership joined with the names needed for reminders and lists.
type Detail struct {
	Membership
	MemberFirstName string  `db:"member_first_name" json:"member_first_name"`
	MemberLastName  string  `db:"member_last_name" json:"member_last_name"`
	MemberEmail     *string `db:"member_email" json:"member_email,omitempty"`
	PackageName     string  `db:"package_name" json:"package_name"`
}

func (d Detail) MemberName() string {
	return d.MemberFirstName + " " + d.MemberLastName
}

func (d Detail) Email() string {
	if d.MemberEmail == nil {
		return ""
	}
	return *d.MemberEmail
}

// Expired identifies a membership moved to expired by the sweep.
type Expired struct {
	ID       int `db:"id" json:"id"`
	MemberID int `db:"member_id" json:"member_id"`
}

type CreateRequest struct {
	MemberID      int        `json:"member_id" binding:"required,gt=0"`
	PackageID     int        `json:"package_id" binding:"required,gt=0"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	DiscountCents int64      `json:"discount_cents" binding:"gte=0"`
	Trial         bool       `json:"trial"`
}

type FreezeRequest struct {
	Reason string `json:"reason" binding:"max=255"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

type RenewRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
}

type ListFilter struct {
	Status string
	Limit  int
	Offset int
}

// Terminal reports whether no further transitions are possible.
func (m *Membership) Terminal() bool {
	return m.Status == StatusCancelled || m.Status == StatusExpired
}

// Usable reports whether the membership grants entry on day.
func (m *Membership) Usable(day time.Time) bool {
	if m.Status != StatusActive && m.Status != StatusTrial {
		return false
	}
	return calendar.Within(day, m.StartDate, m.EndDate)
}

// VisitsLeft returns -1 for unlimited packages.
func (m *Membership) VisitsLeft() int {
	if m.VisitsLimit == nil {
		return -1
	}
	left := *m.VisitsLimit - m.VisitsUsed
	if left < 0 {
		return 0
	}
	return left
}

// UpdateAmounts recomputes pending and payment status from due and paid.
func (m *Membership) UpdateAmounts() {
	m.AmountPendingCents = m.AmountDueCents - m.AmountPaidCents
	if m.AmountPendingCents < 0 {
		m.AmountPendingCents = 0
	}
	m.PaymentStatus = PaymentStatusFor(m.AmountDueCents, m.AmountPaidCents)
}

func PaymentStatusFor(dueCents, paidCents int64) string {
	switch {
	case paidCents >= dueCents:
		return PaymentPaid
	case paidCents > 0:
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

// EndDate is the last covered day of a term of days starting on start.
func EndDate(start time.Time, days int) time.Time {
	return calendar.AddDays(start, days-1)
}
