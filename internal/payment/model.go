package payment

import "time"

const (
	MethodCash     = "cash"
	MethodCard     = "card"
	MethodTransfer = "transfer"
	MethodOnline   = "online"
)

const (
	StatusCompleted = "completed"
	StatusRefunded  = "refunded"
)

type Payment struct {
	ID             int          `db:"id" json:"id"`
	MemberID       int          `db:"member_id" json:"member_id"`
	MembershipID   int          `db:"membership_id" json:"membership_id"`
	AmountCents    int64        `db:"amount_cents" json:"amount_cents"`
	Method         string       `db:"method" json:"method"`
	Status         string       `db:"status" json:"status"`
	Reference      *string      `db:"reference" json:"reference,omitempty"`
	IdempotencyKey *string      `db:"idempotency_key" json:"idempotency_key,omitempty"`
	ReceivedBy     *int         `db:"received_by" json:"received_by,omitempty"`
	Notes          string       `db:"notes" json:"notes"`
	PaidAt         time.Time    `db:"paid_at" json:"paid_at"`
	RefundedAt     *time.Time   `db:"refunded_at" json:"refunded_at,omitempty"`
	RefundReason   *string      `db:"refund_reason" json:"refund_reason,omitempty"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	Allocations    []Allocation `db:"-" json:"allocations"`
}

// Allocation is the share of a payment credited to one installment.
type Allocation struct {
	PaymentID     int   `db:"payment_id" json:"payment_id"`
	InstallmentID int   `db:"installment_id" json:"installment_id"`
	AmountCents   int64 `db:"amount_cents" json:"amount_cents"`
}

type RecordRequest struct {
	MembershipID   int        `json:"membership_id" binding:"required,gt=0"`
	AmountCents    int64      `json:"amount_cents" binding:"required,gt=0"`
	Method         string     `json:"method" binding:"required,oneof=cash card transfer online"`
	InstallmentID  *int       `json:"installment_id,omitempty" binding:"omitempty,gt=0"`
	Reference      string     `json:"reference" binding:"max=120"`
	IdempotencyKey string     `json:"idempotency_key" binding:"max=120"`
	Notes          string     `json:"notes"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	ReceivedBy     *int       `json:"-"`
}

type RefundRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

type ListFilter struct {
	MemberID     int
	MembershipID int
	Method       string
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}

type MethodTotal struct {
	Method     string `db:"method" json:"method"`
	Count      int    `db:"count" json:"count"`
	TotalCents int64  `db:"total_cents" json:"total_cents"`
}

type Summary struct {
	From       time.Time     `json:"from"`
	To         time.Time     `json:"to"`
	Count      int           `json:"count"`
	TotalCents int64         `json:"total_cents"`
	ByMethod   []MethodTotal `json:"by_method"`
}

// Result is what Record hands back: the payment plus the membership balance
// after it was applied.
type Result struct {
	Payment       *Payment `json:"payment"`
	AmountPaid    int64    `json:"amount_paid_cents"`
	AmountPending int64    `json:"amount_pending_cents"`
	PaymentStatus string   `json:"payment_status"`
	Replayed      bool     `json:"replayed"`
}

func validMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodOnline:
		return true
	}
	return false
}
