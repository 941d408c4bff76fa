package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ms(id int, status string, start, end time.Time) membership.Membership {
	return membership.Membership{ID: id, Status: status, StartDate: start, EndDate: end}
}

func TestPickMembership_PrefersEarliestEnd(t *testing.T) {
	today := day(2024, 3, 10)
	list := []membership.Membership{
		ms(1, membership.StatusActive, day(2024, 1, 1), day(2024, 12, 31)),
		ms(2, membership.StatusTrial, day(2024, 3, 8), day(2024, 3, 14)),
	}

	got, reason := pickMembership(list, today)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
	assert.Empty(t, reason)
}

func TestPickMembership_SkipsExhaustedVisits(t *testing.T) {
	today := day(2024, 3, 10)
	limit := 8
	exhausted := ms(1, membership.StatusActive, day(2024, 3, 1), day(2024, 3, 31))
	exhausted.VisitsLimit = &limit
	exhausted.VisitsUsed = 8

	got, reason := pickMembership([]membership.Membership{exhausted}, today)
	assert.Nil(t, got)
	assert.Equal(t, ReasonVisitLimitReached, reason)

	unlimited := ms(2, membership.StatusActive, day(2024, 3, 1), day(2024, 6, 1))
	got, _ = pickMembership([]membership.Membership{exhausted, unlimited}, today)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
}

func TestPickMembership_Reasons(t *testing.T) {
	today := day(2024, 3, 10)

	tests := []struct {
		name string
		list []membership.Membership
		want string
	}{
		{"none", nil, ReasonNoMembership},
		{"cancelled only", []membership.Membership{ms(1, membership.StatusCancelled, day(2024, 3, 1), day(2024, 3, 31))}, ReasonNoMembership},
		{"expired", []membership.Membership{ms(1, membership.StatusExpired, day(2024, 1, 1), day(2024, 1, 31))}, ReasonExpired},
		{"past end not yet swept", []membership.Membership{ms(1, membership.StatusActive, day(2024, 2, 1), day(2024, 3, 9))}, ReasonExpired},
		{"not started", []membership.Membership{ms(1, membership.StatusActive, day(2024, 4, 1), day(2024, 4, 30))}, ReasonNotStarted},
		{
			"frozen wins over expired",
			[]membership.Membership{
				ms(1, membership.StatusExpired, day(2024, 1, 1), day(2024, 1, 31)),
				ms(2, membership.StatusFrozen, day(2024, 2, 1), day(2024, 4, 30)),
			},
			ReasonFrozen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := pickMembership(tt.list, today)
			assert.Nil(t, got)
			assert.Equal(t, tt.want, reason)
		})
	}
}
