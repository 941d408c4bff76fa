package payment

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func schedule() []paymentplan.Installment {
	return []paymentplan.Installment{
		{ID: 12, Sequence: 3, DueDate: day(2024, 5, 1), AmountCents: 3000, Status: paymentplan.StatusPending},
		{ID: 10, Sequence: 1, DueDate: day(2024, 3, 1), AmountCents: 3000, PaidCents: 1000, LateFeeCents: 500, Status: paymentplan.StatusOverdue},
		{ID: 11, Sequence: 2, DueDate: day(2024, 4, 1), AmountCents: 3000, Status: paymentplan.StatusPending},
	}
}

func TestAllocate_OldestFirst(t *testing.T) {
	got, err := Allocate(4000, schedule(), nil)
	assert.NoError(t, err)

	want := []Allocation{
		{InstallmentID: 10, AmountCents: 2500},
		{InstallmentID: 11, AmountCents: 1500},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocate_TargetFirst(t *testing.T) {
	target := 12
	got, err := Allocate(4000, schedule(), &target)
	assert.NoError(t, err)

	want := []Allocation{
		{InstallmentID: 12, AmountCents: 3000},
		{InstallmentID: 10, AmountCents: 1000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocate_TargetNotOpen(t *testing.T) {
	insts := schedule()
	insts[0].Status = paymentplan.StatusPaid
	target := 12

	_, err := Allocate(100, insts, &target)
	assert.ErrorIs(t, err, ErrInstallmentNotOpen)
}

func TestAllocate_SurplusStaysUnallocated(t *testing.T) {
	got, err := Allocate(10000, schedule(), nil)
	assert.NoError(t, err)

	var total int64
	for _, a := range got {
		total += a.AmountCents
	}
	assert.Equal(t, int64(8500), total)
	assert.Len(t, got, 3)
}

func TestAllocate_NoPlan(t *testing.T) {
	got, err := Allocate(500, nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
