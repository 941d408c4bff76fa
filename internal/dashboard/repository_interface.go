package dashboard

import (
	"context"
	"time"
)

// Repository holds the read-only aggregate queries behind the owner dashboard.
// Ranges are half-open: [from, to).
type Repository interface {
	CountActiveMembers(ctx context.Context) (int, error)
	CountNewMembers(ctx context.Context, from, to time.Time) (int, error)
	MembershipsByStatus(ctx context.Context) ([]StatusCount, error)
	Revenue(ctx context.Context, from, to time.Time) (int64, error)
	Outstanding(ctx context.Context) (int64, error)
	Overdue(ctx context.Context, today time.Time) (*Overdue, error)
	CountCheckins(ctx context.Context, from, to time.Time) (int, error)
	CountExpiring(ctx context.Context, from, to time.Time) (int, error)
	RevenueByMonth(ctx context.Context, from time.Time) ([]MonthRevenue, error)
	PackagePopularity(ctx context.Context) ([]PackageStat, error)
}
