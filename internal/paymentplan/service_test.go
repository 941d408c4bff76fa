package paymentplan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) CreatePlan(ctx context.Context, membershipID int, build BuildFunc) (*PaymentPlan, error) {
	args := m.Called(ctx, membershipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Run the builder against the stubbed pending balance.
	plan, err := build(args.Get(0).(int64))
	if err != nil {
		return nil, err
	}
	plan.ID = 1
	plan.MembershipID = membershipID
	return plan, args.Error(1)
}

func (m *MockRepository) GetPlan(ctx context.Context, id int) (*PaymentPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentPlan), args.Error(1)
}

func (m *MockRepository) GetByMembership(ctx context.Context, membershipID int) (*PaymentPlan, error) {
	args := m.Called(ctx, membershipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentPlan), args.Error(1)
}

func (m *MockRepository) ListOverdue(ctx context.Context) ([]InstallmentDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]InstallmentDetail), args.Error(1)
}

func (m *MockRepository) ListUpcoming(ctx context.Context, from, to time.Time) ([]InstallmentDetail, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]InstallmentDetail), args.Error(1)
}

func (m *MockRepository) OverdueTotals(ctx context.Context) (int, int64, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) ApplyLateFees(ctx context.Context, today time.Time, assess AssessFunc) ([]Assessment, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]Assessment), args.Error(1)
}

func (m *MockRepository) Waive(ctx context.Context, installmentID int, includePrincipal bool, today time.Time) (*Installment, int64, error) {
	args := m.Called(ctx, installmentID, includePrincipal, today)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*Installment), args.Get(1).(int64), args.Error(2)
}

type stubMemberships map[int]*membership.Membership

func (s stubMemberships) Get(_ context.Context, id int) (*membership.Membership, error) {
	if m, ok := s[id]; ok {
		return m, nil
	}
	return nil, membership.ErrMembershipNotFound
}

type stubPackages map[int]*catalog.Package

func (s stubPackages) Get(_ context.Context, id int) (*catalog.Package, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, catalog.ErrPackageNotFound
}

type recordingNotifier struct{ sent []notify.Message }

func (r *recordingNotifier) Enqueue(_ context.Context, msg notify.Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(repo Repository) (*service, *recordingNotifier) {
	memberships := stubMemberships{
		1: {ID: 1, PackageID: 1, Status: membership.StatusActive, AmountPendingCents: 12000},
		2: {ID: 2, PackageID: 2, Status: membership.StatusActive},
		3: {ID: 3, PackageID: 1, Status: membership.StatusCancelled},
	}
	packages := stubPackages{
		1: {ID: 1, InstallmentsAllowed: true, MaxInstallments: 6},
		2: {ID: 2},
	}
	n := &recordingNotifier{}
	return &service{
		repo:        repo,
		memberships: memberships,
		packages:    packages,
		publisher:   events.Nop{},
		notifier:    n,
		currency:    "USD",
		now:         func() time.Time { return testNow },
	}, n
}

func TestCreateForMembership(t *testing.T) {
	repo := new(MockRepository)
	svc, _ := newTestService(repo)
	repo.On("CreatePlan", mock.Anything, 1).Return(int64(12000), nil)

	plan, err := svc.CreateForMembership(context.Background(), 1, CreatePlanRequest{
		InstallmentCount: 3,
		Frequency:        FrequencyMonthly,
		DownPaymentCents: 3000,
		LateFeeType:      LateFeeFixed,
		LateFeeValue:     500,
		GraceDays:        5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12000), plan.TotalCents)
	assert.Equal(t, PlanActive, plan.Status)
	require.Len(t, plan.Installments, 4)
	assert.Equal(t, int64(3000), plan.Installments[0].AmountCents)
	assert.Equal(t, day(2024, 3, 10), plan.Installments[0].DueDate)
	assert.Equal(t, day(2024, 6, 10), plan.Installments[3].DueDate)
}

func TestCreateForMembership_Rules(t *testing.T) {
	svc, _ := newTestService(new(MockRepository))
	ctx := context.Background()
	req := CreatePlanRequest{InstallmentCount: 3, Frequency: FrequencyMonthly}

	_, err := svc.CreateForMembership(ctx, 2, req)
	assert.ErrorIs(t, err, ErrInstallmentsNotAllowed)

	_, err = svc.CreateForMembership(ctx, 3, req)
	assert.ErrorIs(t, err, ErrMembershipClosed)

	_, err = svc.CreateForMembership(ctx, 9, req)
	assert.ErrorIs(t, err, membership.ErrMembershipNotFound)

	_, err = svc.CreateForMembership(ctx, 1, CreatePlanRequest{InstallmentCount: 12, Frequency: FrequencyMonthly})
	assert.ErrorIs(t, err, ErrTooManyInstallments)

	_, err = svc.CreateForMembership(ctx, 1, CreatePlanRequest{InstallmentCount: 2, Frequency: FrequencyMonthly, LateFeeType: LateFeePercent, LateFeeValue: 20000})
	assert.ErrorIs(t, err, ErrInvalidLateFee)
}

func TestCreateForMembership_NothingPending(t *testing.T) {
	repo := new(MockRepository)
	svc, _ := newTestService(repo)
	repo.On("CreatePlan", mock.Anything, 1).Return(int64(0), nil)

	_, err := svc.CreateForMembership(context.Background(), 1, CreatePlanRequest{InstallmentCount: 2, Frequency: FrequencyWeekly})
	assert.ErrorIs(t, err, ErrNothingToFinance)
}

func TestApplyLateFees_NotifiesMembers(t *testing.T) {
	repo := new(MockRepository)
	svc, notifier := newTestService(repo)

	email := "ana@example.com"
	assessed := []Assessment{
		{
			InstallmentDetail: InstallmentDetail{
				Installment:     Installment{ID: 4, Sequence: 2, DueDate: day(2024, 3, 1), AmountCents: 4000, LateFeeCents: 500, Status: StatusOverdue},
				MemberFirstName: "Ana",
				MemberEmail:     &email,
			},
			FeeCents:     500,
			NewlyOverdue: true,
		},
		{
			InstallmentDetail: InstallmentDetail{Installment: Installment{ID: 5, Status: StatusOverdue}},
			NewlyOverdue:      true,
		},
	}
	repo.On("ApplyLateFees", mock.Anything, day(2024, 3, 10)).Return(assessed, nil)
	repo.On("OverdueTotals", mock.Anything).Return(2, int64(4500), nil)

	n, err := svc.ApplyLateFees(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notify.KindInstallmentOverdue, notifier.sent[0].Kind)
	assert.Contains(t, notifier.sent[0].Body, "45.00 USD")
}

func TestWaive(t *testing.T) {
	repo := new(MockRepository)
	svc, _ := newTestService(repo)
	repo.On("Waive", mock.Anything, 4, false, day(2024, 3, 10)).Return(&Installment{ID: 4, Status: StatusOverdue}, int64(500), nil)
	repo.On("Waive", mock.Anything, 5, false, day(2024, 3, 10)).Return(nil, int64(0), ErrNothingToWaive)

	inst, err := svc.Waive(context.Background(), 4, false)
	require.NoError(t, err)
	assert.Equal(t, 4, inst.ID)

	_, err = svc.Waive(context.Background(), 5, false)
	assert.ErrorIs(t, err, ErrNothingToWaive)
}
