package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// CheckIn closes stale open visits from earlier days, consumes a visit on
	// limited memberships and inserts the record in one transaction.
	CheckIn(ctx context.Context, a *Attendance, consumeVisit bool, dayStart time.Time) (*Attendance, error)
	CheckOut(ctx context.Context, id int, at time.Time) (*Attendance, error)
	ListByMember(ctx context.Context, memberID, limit, offset int) ([]Attendance, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Detail, error)
	CountByDay(ctx context.Context, from, to time.Time) ([]DayCount, error)
}
