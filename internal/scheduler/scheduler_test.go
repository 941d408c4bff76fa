package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
)

type MockPlans struct{ mock.Mock }

func (m *MockPlans) ApplyLateFees(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockPlans) ListUpcoming(ctx context.Context, days int) ([]paymentplan.InstallmentDetail, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]paymentplan.InstallmentDetail), args.Error(1)
}

type MockMemberships struct{ mock.Mock }

func (m *MockMemberships) ExpireDue(ctx context.Context, today time.Time) (int, error) {
	args := m.Called(ctx, today)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberships) ListExpiring(ctx context.Context, withinDays int) ([]membership.Detail, error) {
	args := m.Called(ctx, withinDays)
	return args.Get(0).([]membership.Detail), args.Error(1)
}

type recordingNotifier struct {
	sent []notify.Message
	err  error
}

func (r *recordingNotifier) Enqueue(_ context.Context, msg notify.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestScheduler(plans Plans, memberships Memberships, n notify.Notifier) *Scheduler {
	cfg := Config{
		SweepSchedule:     "@hourly",
		ReminderSchedule:  "0 9 * * *",
		ReminderDaysAhead: 3,
		Currency:          "USD",
	}
	s := New(cfg, plans, memberships, n)
	s.now = func() time.Time { return testNow }
	return s
}

func strPtr(s string) *string { return &s }

func TestRunSweep(t *testing.T) {
	plans, ms := new(MockPlans), new(MockMemberships)
	plans.On("ApplyLateFees", mock.Anything, testNow).Return(4, nil)
	ms.On("ExpireDue", mock.Anything, testNow).Return(2, nil)

	res, err := newTestScheduler(plans, ms, &recordingNotifier{}).RunSweep(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, SweepResult{Overdue: 4, Expired: 2}, res)
}

func TestRunSweep_ContinuesAfterFailure(t *testing.T) {
	plans, ms := new(MockPlans), new(MockMemberships)
	plans.On("ApplyLateFees", mock.Anything, testNow).Return(0, errors.New("deadlock detected"))
	ms.On("ExpireDue", mock.Anything, testNow).Return(3, nil)

	res, err := newTestScheduler(plans, ms, &recordingNotifier{}).RunSweep(context.Background(), testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "late fees")
	assert.Equal(t, 3, res.Expired)
	ms.AssertExpectations(t)
}

func TestSendReminders(t *testing.T) {
	plans, ms := new(MockPlans), new(MockMemberships)
	n := &recordingNotifier{}

	due := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	withEmail := paymentplan.InstallmentDetail{MemberFirstName: "Ana", MemberEmail: strPtr("ana@example.com")}
	withEmail.ID, withEmail.Sequence, withEmail.DueDate = 7, 2, due
	withEmail.AmountCents, withEmail.PaidCents = 5000, 1000
	noEmail := paymentplan.InstallmentDetail{MemberFirstName: "Bo"}
	plans.On("ListUpcoming", mock.Anything, 3).Return([]paymentplan.InstallmentDetail{withEmail, noEmail}, nil)

	expiring := membership.Detail{MemberFirstName: "Cy", MemberEmail: strPtr("cy@example.com"), PackageName: "Monthly"}
	expiring.EndDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	ms.On("ListExpiring", mock.Anything, expiringWithinDays).Return([]membership.Detail{expiring}, nil)

	res, err := newTestScheduler(plans, ms, n).SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReminderResult{Installments: 1, Expiring: 1}, res)

	require.Len(t, n.sent, 2)
	assert.Equal(t, notify.KindInstallmentReminder, n.sent[0].Kind)
	assert.Contains(t, n.sent[0].Body, "40.00 USD")
	assert.Equal(t, notify.KindMembershipExpiring, n.sent[1].Kind)
	assert.Equal(t, "cy@example.com", n.sent[1].To)
}

func TestSendReminders_QueueErrorsAreSkipped(t *testing.T) {
	plans, ms := new(MockPlans), new(MockMemberships)
	n := &recordingNotifier{err: errors.New("redis down")}

	inst := paymentplan.InstallmentDetail{MemberEmail: strPtr("ana@example.com")}
	plans.On("ListUpcoming", mock.Anything, 3).Return([]paymentplan.InstallmentDetail{inst}, nil)
	ms.On("ListExpiring", mock.Anything, expiringWithinDays).Return([]membership.Detail{}, nil)

	res, err := newTestScheduler(plans, ms, n).SendReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Installments)
}

func TestSendReminders_ListError(t *testing.T) {
	plans, ms := new(MockPlans), new(MockMemberships)
	plans.On("ListUpcoming", mock.Anything, 3).Return([]paymentplan.InstallmentDetail{}, errors.New("db down"))

	_, err := newTestScheduler(plans, ms, &recordingNotifier{}).SendReminders(context.Background())
	assert.Error(t, err)
	ms.AssertNotCalled(t, "ListExpiring", mock.Anything, mock.Anything)
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	s := newTestScheduler(new(MockPlans), new(MockMemberships), &recordingNotifier{})
	s.cfg.SweepSchedule = "every tuesday"

	err := s.Start(context.Background())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s := newTestScheduler(new(MockPlans), new(MockMemberships), &recordingNotifier{})
	require.NoError(t, s.Start(context.Background()))
	assert.Len(t, s.cron.Entries(), 2)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
