package payment

import (
	"errors"
	"sort"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
)

var ErrInstallmentNotOpen = errors.New("installment is not open for payment")

// Allocate spreads amount over open installments. A named target is paid
// first; the rest goes to the oldest due installments. Whatever exceeds the
// scheduled balance stays unallocated and only reduces the membership total.
func Allocate(amountCents int64, open []paymentplan.Installment, target *int) ([]Allocation, error) {
	ordered := make([]paymentplan.Installment, 0, len(open))
	for _, inst := range open {
		if inst.Open() && inst.Outstanding() > 0 {
			ordered = append(ordered, inst)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].DueDate.Equal(ordered[j].DueDate) {
			return ordered[i].DueDate.Before(ordered[j].DueDate)
		}
		return ordered[i].Sequence < ordered[j].Sequence
	})

	if target != nil {
		idx := -1
		for i := range ordered {
			if ordered[i].ID == *target {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrInstallmentNotOpen
		}
		reordered := make([]paymentplan.Installment, 0, len(ordered))
		reordered = append(reordered, ordered[idx])
		reordered = append(reordered, ordered[:idx]...)
		ordered = append(reordered, ordered[idx+1:]...)
	}

	var out []Allocation
	remaining := amountCents
	for _, inst := range ordered {
		if remaining == 0 {
			break
		}
		share := inst.Outstanding()
		if share > remaining {
			share = remaining
		}
		out = append(out, Allocation{InstallmentID: inst.ID, AmountCents: share})
		remaining -= share
	}
	return out, nil
}
