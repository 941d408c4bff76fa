package dashboard

import "time"

type Summary struct {
	GeneratedAt         time.Time      `json:"generated_at"`
	ActiveMembers       int            `json:"active_members"`
	NewMembersThisMonth int            `json:"new_members_this_month"`
	MembershipsByStatus map[string]int `json:"memberships_by_status"`
	RevenueThisMonth    int64          `json:"revenue_this_month_cents"`
	RevenueLastMonth    int64          `json:"revenue_last_month_cents"`
	OutstandingCents    int64          `json:"outstanding_cents"`
	OverdueInstallments int            `json:"overdue_installments"`
	OverdueCents        int64          `json:"overdue_cents"`
	CheckinsToday       int            `json:"checkins_today"`
	ExpiringSoon        int            `json:"expiring_soon"`
}

type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type Overdue struct {
	Count int   `db:"count"`
	Cents int64 `db:"cents"`
}

type MonthRevenue struct {
	Month        time.Time `db:"month" json:"month"`
	RevenueCents int64     `db:"revenue_cents" json:"revenue_cents"`
	Payments     int       `db:"payments" json:"payments"`
}

type PackageStat struct {
	PackageID    int    `db:"package_id" json:"package_id"`
	Name         string `db:"name" json:"name"`
	Sold         int    `db:"sold" json:"sold"`
	Active       int    `db:"active" json:"active"`
	RevenueCents int64  `db:"revenue_cents" json:"revenue_cents"`
}
