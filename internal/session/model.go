package session

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

const defaultDuration = 60

type TrainingSession struct {
	ID              int       `db:"id" json:"id"`
	TrainerID       int       `db:"trainer_id" json:"trainer_id"`
	MemberID        int       `db:"member_id" json:"member_id"`
	MembershipID    *int      `db:"membership_id" json:"membership_id,omitempty"`
	ScheduledAt     time.Time `db:"scheduled_at" json:"scheduled_at"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Status          string    `db:"status" json:"status"`
	Notes           string    `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

func (s *TrainingSession) EndsAt() time.Time {
	return s.ScheduledAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// Detail adds display names for calendars.
type Detail struct {
	TrainingSession
	TrainerName     string `db:"trainer_name" json:"trainer_name"`
	MemberFirstName string `db:"member_first_name" json:"member_first_name"`
	MemberLastName  string `db:"member_last_name" json:"member_last_name"`
}

type ScheduleRequest struct {
	TrainerID       int       `json:"trainer_id" binding:"required,gt=0"`
	MemberID        int       `json:"member_id" binding:"required,gt=0"`
	MembershipID    *int      `json:"membership_id,omitempty" binding:"omitempty,gt=0"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,gte=15,lte=240"`
	Notes           string    `json:"notes" binding:"max=500"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"max=255"`
}
