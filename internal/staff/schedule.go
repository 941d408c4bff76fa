package staff

import (
	"fmt"
	"sort"
	"time"
)

const clockLayout = "15:04"

// minuteOfDay parses "HH:MM".
func minuteOfDay(v string) (int, error) {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidShift, v)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// NormalizeShifts validates a weekly schedule and returns it sorted by weekday
// and start time. Shifts may touch but not overlap on the same weekday.
func NormalizeShifts(staffID int, in []ShiftInput) ([]Shift, error) {
	type window struct {
		shift      Shift
		start, end int
	}

	windows := make([]window, 0, len(in))
	for _, s := range in {
		if s.Weekday < 0 || s.Weekday > 6 {
			return nil, fmt.Errorf("%w: weekday %d", ErrInvalidShift, s.Weekday)
		}
		start, err := minuteOfDay(s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := minuteOfDay(s.EndTime)
		if err != nil {
			return nil, err
		}
		if end <= start {
			return nil, fmt.Errorf("%w: %s-%s ends before it starts", ErrInvalidShift, s.StartTime, s.EndTime)
		}
		windows = append(windows, window{
			shift: Shift{StaffID: staffID, Weekday: s.Weekday, StartTime: s.StartTime, EndTime: s.EndTime},
			start: start,
			end:   end,
		})
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].shift.Weekday != windows[j].shift.Weekday {
			return windows[i].shift.Weekday < windows[j].shift.Weekday
		}
		return windows[i].start < windows[j].start
	})

	out := make([]Shift, 0, len(windows))
	for i, w := range windows {
		if i > 0 {
			prev := windows[i-1]
			if prev.shift.Weekday == w.shift.Weekday && w.start < prev.end {
				return nil, fmt.Errorf("%w: %s %s-%s", ErrShiftOverlap,
					time.Weekday(w.shift.Weekday), w.shift.StartTime, w.shift.EndTime)
			}
		}
		out = append(out, w.shift)
	}
	return out, nil
}

// Commission computes the variable pay for a trainer.
func Commission(s *Staff, sessions int, clientPaymentsCents int64) CommissionReport {
	r := CommissionReport{
		TrainerID:              s.ID,
		SessionsCompleted:      sessions,
		SessionCommissionCents: int64(sessions) * s.CommissionPerSessionCents,
		ClientPaymentsCents:    clientPaymentsCents,
		SalesCommissionCents:   clientPaymentsCents * int64(s.CommissionRateBps) / 10000,
	}
	r.TotalCents = r.SessionCommissionCents + r.SalesCommissionCents
	return r
}
