package paymentplan

import (
	"errors"
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
)

var (
	ErrInvalidSchedule  = errors.New("invalid installment schedule")
	ErrNothingToFinance = errors.New("nothing left to finance")
)

// BuildSchedule splits total into a down payment and count installments.
// Each installment gets floor((total-down)/count); the remainder lands on
// the last one so the schedule sums to total exactly. The down payment, when
// present, is due on start and the regular installments begin one period
// later; otherwise the first installment is due on start.
func BuildSchedule(totalCents, downCents int64, count int, frequency string, start time.Time) ([]Installment, error) {
	if count < 1 || downCents < 0 || totalCents < 0 || downCents > totalCents {
		return nil, ErrInvalidSchedule
	}
	if !validFrequency(frequency) {
		return nil, ErrInvalidSchedule
	}

	financed := totalCents - downCents
	if financed == 0 {
		return nil, ErrNothingToFinance
	}
	if financed < int64(count) {
		return nil, ErrInvalidSchedule
	}

	start = calendar.Day(start)
	out := make([]Installment, 0, count+1)
	offset := 0
	if downCents > 0 {
		out = append(out, Installment{Sequence: 0, DueDate: start, AmountCents: downCents, Status: StatusPending})
		offset = 1
	}

	base := financed / int64(count)
	remainder := financed - base*int64(count)
	for k := 1; k <= count; k++ {
		amount := base
		if k == count {
			amount += remainder
		}
		out = append(out, Installment{
			Sequence:    k,
			DueDate:     DueDate(start, frequency, k-1+offset),
			AmountCents: amount,
			Status:      StatusPending,
		})
	}
	return out, nil
}

// DueDate returns the date n periods after start. Monthly steps are taken
// from start each time so a 31st start keeps landing on month ends.
func DueDate(start time.Time, frequency string, n int) time.Time {
	switch frequency {
	case FrequencyWeekly:
		return calendar.AddDays(start, 7*n)
	case FrequencyBiweekly:
		return calendar.AddDays(start, 14*n)
	default:
		return calendar.AddMonths(start, n)
	}
}

// LateFee is the fee owed on inst at now. It is zero until the grace period
// after the due date has fully passed and once a fee has been applied.
// Percent fees are in basis points of the unpaid principal.
func LateFee(inst *Installment, plan *PaymentPlan, now time.Time) int64 {
	if inst.LateFeeApplied || !inst.Open() {
		return 0
	}
	if !calendar.Day(now).After(calendar.AddDays(inst.DueDate, plan.GraceDays)) {
		return 0
	}

	switch plan.LateFeeType {
	case LateFeeFixed:
		return plan.LateFeeValue
	case LateFeePercent:
		principal := inst.AmountCents - inst.PaidCents
		if principal <= 0 {
			return 0
		}
		return principal * plan.LateFeeValue / 10000
	}
	return 0
}

// StatusFor derives an open installment's status on day.
func StatusFor(inst *Installment, day time.Time) string {
	switch {
	case inst.Outstanding() == 0:
		return StatusPaid
	case calendar.Day(day).After(calendar.Day(inst.DueDate)):
		return StatusOverdue
	case inst.PaidCents > 0:
		return StatusPartial
	default:
		return StatusPending
	}
}

func validFrequency(f string) bool {
	return f == FrequencyWeekly || f == FrequencyBiweekly || f == FrequencyMonthly
}

func validLateFee(kind string, value int64) bool {
	switch kind {
	case LateFeeNone:
		return value == 0
	case LateFeeFixed:
		return value > 0
	case LateFeePercent:
		return value > 0 && value <= 10000
	}
	return false
}
