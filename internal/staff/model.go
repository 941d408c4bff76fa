package staff

import "time"

const (
	RoleManager      = "manager"
	RoleTrainer      = "trainer"
	RoleReceptionist = "receptionist"
	RoleMaintenance  = "maintenance"
)

const (
	PaySalary     = "salary"
	PayHourly     = "hourly"
	PayPerSession = "per_session"
)

type Staff struct {
	ID                        int       `db:"id" json:"id"`
	UserID                    *int      `db:"user_id" json:"user_id,omitempty"`
	Name                      string    `db:"name" json:"name"`
	Email                     *string   `db:"email" json:"email,omitempty"`
	Phone                     string    `db:"phone" json:"phone"`
	Role                      string    `db:"role" json:"role"`
	CompensationType          string    `db:"compensation_type" json:"compensation_type"`
	BasePayCents              int64     `db:"base_pay_cents" json:"base_pay_cents"`
	CommissionPerSessionCents int64     `db:"commission_per_session_cents" json:"commission_per_session_cents"`
	CommissionRateBps         int       `db:"commission_rate_bps" json:"commission_rate_bps"`
	HiredAt                   time.Time `db:"hired_at" json:"hired_at"`
	Active                    bool      `db:"active" json:"active"`
	CreatedAt                 time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                 time.Time `db:"updated_at" json:"updated_at"`
}

func (s *Staff) IsTrainer() bool {
	return s.Role == RoleTrainer
}

// Shift is a weekly working window. Weekday follows time.Weekday (0 = Sunday).
type Shift struct {
	ID        int    `db:"id" json:"id"`
	StaffID   int    `db:"staff_id" json:"staff_id"`
	Weekday   int    `db:"weekday" json:"weekday"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}

type Client struct {
	TrainerID       int        `db:"trainer_id" json:"trainer_id"`
	MemberID        int        `db:"member_id" json:"member_id"`
	MemberFirstName string     `db:"member_first_name" json:"member_first_name"`
	MemberLastName  string     `db:"member_last_name" json:"member_last_name"`
	AssignedAt      time.Time  `db:"assigned_at" json:"assigned_at"`
	EndedAt         *time.Time `db:"ended_at" json:"ended_at,omitempty"`
}

type CreateStaffRequest struct {
	UserID                    *int       `json:"user_id,omitempty" binding:"omitempty,gt=0"`
	Name                      string     `json:"name" binding:"required,max=120"`
	Email                     string     `json:"email" binding:"omitempty,email"`
	Phone                     string     `json:"phone" binding:"max=32"`
	Role                      string     `json:"role" binding:"required,oneof=manager trainer receptionist maintenance"`
	CompensationType          string     `json:"compensation_type" binding:"required,oneof=salary hourly per_session"`
	BasePayCents              int64      `json:"base_pay_cents" binding:"gte=0"`
	CommissionPerSessionCents int64      `json:"commission_per_session_cents" binding:"gte=0"`
	CommissionRateBps         int        `json:"commission_rate_bps" binding:"gte=0,lte=10000"`
	HiredAt                   *time.Time `json:"hired_at,omitempty"`
}

type UpdateStaffRequest struct {
	Name                      *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Email                     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone                     *string `json:"phone,omitempty"`
	Role                      *string `json:"role,omitempty" binding:"omitempty,oneof=manager trainer receptionist maintenance"`
	CompensationType          *string `json:"compensation_type,omitempty" binding:"omitempty,oneof=salary hourly per_session"`
	BasePayCents              *int64  `json:"base_pay_cents,omitempty" binding:"omitempty,gte=0"`
	CommissionPerSessionCents *int64  `json:"commission_per_session_cents,omitempty" binding:"omitempty,gte=0"`
	CommissionRateBps         *int    `json:"commission_rate_bps,omitempty" binding:"omitempty,gte=0,lte=10000"`
}

func (r UpdateStaffRequest) Apply(s *Staff) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Email != nil {
		if *r.Email == "" {
			s.Email = nil
		} else {
			email := *r.Email
			s.Email = &email
		}
	}
	if r.Phone != nil {
		s.Phone = *r.Phone
	}
	if r.Role != nil {
		s.Role = *r.Role
	}
	if r.CompensationType != nil {
		s.CompensationType = *r.CompensationType
	}
	if r.BasePayCents != nil {
		s.BasePayCents = *r.BasePayCents
	}
	if r.CommissionPerSessionCents != nil {
		s.CommissionPerSessionCents = *r.CommissionPerSessionCents
	}
	if r.CommissionRateBps != nil {
		s.CommissionRateBps = *r.CommissionRateBps
	}
}

type ShiftInput struct {
	Weekday   int    `json:"weekday" binding:"gte=0,lte=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type SetScheduleRequest struct {
	Shifts []ShiftInput `json:"shifts" binding:"dive"`
}

type AssignClientRequest struct {
	MemberID int `json:"member_id" binding:"required,gt=0"`
}

type ListFilter struct {
	Role       string
	ActiveOnly bool
}

// CommissionReport is what a trainer earned on top of base pay over a period.
type CommissionReport struct {
	TrainerID              int       `json:"trainer_id"`
	From                   time.Time `json:"from"`
	To                     time.Time `json:"to"`
	SessionsCompleted      int       `json:"sessions_completed"`
	SessionCommissionCents int64     `json:"session_commission_cents"`
	ClientPaymentsCents    int64     `json:"client_payments_cents"`
	SalesCommissionCents   int64     `json:"sales_commission_cents"`
	TotalCents             int64     `json:"total_cents"`
}
