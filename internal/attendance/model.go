package attendance

import (
	"sort"
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
)

const (
	MethodScan   = "scan"
	MethodManual = "manual"
)

// Denial reasons reported to the front desk.
const (
	ReasonMemberInactive    = "member_inactive"
	ReasonNoMembership      = "no_membership"
	ReasonFrozen            = "membership_frozen"
	ReasonExpired           = "membership_expired"
	ReasonNotStarted        = "membership_not_started"
	ReasonVisitLimitReached = "visit_limit_reached"
)

const ResultGranted = "granted"

type Attendance struct {
	ID           int        `db:"id" json:"id"`
	MemberID     int        `db:"member_id" json:"member_id"`
	MembershipID *int       `db:"membership_id" json:"membership_id,omitempty"`
	CheckedInAt  time.Time  `db:"checked_in_at" json:"checked_in_at"`
	CheckedOutAt *time.Time `db:"checked_out_at" json:"checked_out_at,omitempty"`
	Method       string     `db:"method" json:"method"`
	RecordedBy   *int       `db:"recorded_by" json:"recorded_by,omitempty"`
}

type Detail struct {
	Attendance
	MemberFirstName string `db:"member_first_name" json:"member_first_name"`
	MemberLastName  string `db:"member_last_name" json:"member_last_name"`
}

type DayCount struct {
	Day   time.Time `db:"day" json:"day"`
	Count int       `db:"count" json:"count"`
}

type ScanRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

type ManualRequest struct {
	MemberID int `json:"member_id" binding:"required,gt=0"`
}

// Result is the answer to a check-in attempt. Denied attempts carry a
// reason and no attendance record.
type Result struct {
	Granted    bool                   `json:"granted"`
	Reason     string                 `json:"reason,omitempty"`
	MemberID   int                    `json:"member_id"`
	MemberName string                 `json:"member_name"`
	Membership *membership.Membership `json:"membership,omitempty"`
	VisitsLeft *int                   `json:"visits_left,omitempty"`
	Attendance *Attendance            `json:"attendance,omitempty"`
}

// denialRank orders reasons when several memberships are unusable; the
// most specific one is reported.
var denialRank = map[string]int{
	ReasonNoMembership:      0,
	ReasonNotStarted:        1,
	ReasonExpired:           2,
	ReasonVisitLimitReached: 3,
	ReasonFrozen:            4,
}

// pickMembership returns the membership that grants entry on day, or the
// reason none does. Among usable memberships the one ending first wins so
// short passes are used up before long ones.
func pickMembership(list []membership.Membership, day time.Time) (*membership.Membership, string) {
	var usable []membership.Membership
	reason := ReasonNoMembership
	deny := func(r string) {
		if denialRank[r] > denialRank[reason] {
			reason = r
		}
	}

	for _, m := range list {
		switch {
		case m.Usable(day) && m.VisitsLeft() == 0:
			deny(ReasonVisitLimitReached)
		case m.Usable(day):
			usable = append(usable, m)
		case m.Status == membership.StatusFrozen:
			deny(ReasonFrozen)
		case m.Status == membership.StatusCancelled:
		case m.Status == membership.StatusExpired, day.After(calendar.Day(m.EndDate)):
			deny(ReasonExpired)
		case day.Before(calendar.Day(m.StartDate)):
			deny(ReasonNotStarted)
		}
	}

	if len(usable) == 0 {
		return nil, reason
	}

	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].EndDate.Before(usable[j].EndDate)
	})
	return &usable[0], ""
}
