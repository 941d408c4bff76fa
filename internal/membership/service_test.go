package membership

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, ms *Membership) (*Membership, error) {
	args := m.Called(ctx, ms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepository) GetDetail(ctx context.Context, id int) (*Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Detail), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]Detail, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]Detail), args.Error(1)
}

func (m *MockRepository) ListByMember(ctx context.Context, memberID int) ([]Membership, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).([]Membership), args.Error(1)
}

func (m *MockRepository) ListExpiring(ctx context.Context, from, to time.Time) ([]Detail, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]Detail), args.Error(1)
}

func (m *MockRepository) SaveState(ctx context.Context, ms *Membership) error {
	return m.Called(ctx, ms).Error(0)
}

func (m *MockRepository) Cancel(ctx context.Context, id int, reason string, at time.Time) error {
	return m.Called(ctx, id, reason, at).Error(0)
}

func (m *MockRepository) ExpireDue(ctx context.Context, today time.Time) ([]Expired, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]Expired), args.Error(1)
}

func (m *MockRepository) ConsumeVisit(ctx context.Context, id int) (*Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepository) ConsumeSession(ctx context.Context, id int) (*Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

type stubPackages map[int]*catalog.Package

func (s stubPackages) Get(_ context.Context, id int) (*catalog.Package, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, catalog.ErrPackageNotFound
}

type stubMembers map[int]*member.Member

func (s stubMembers) Get(_ context.Context, id int) (*member.Member, error) {
	if m, ok := s[id]; ok {
		return m, nil
	}
	return nil, member.ErrMemberNotFound
}

type recordingNotifier struct{ sent []notify.Message }

func (r *recordingNotifier) Enqueue(_ context.Context, msg notify.Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

type recordingPublisher struct{ keys []string }

func (r *recordingPublisher) Publish(_ context.Context, key string, _ interface{}) error {
	r.keys = append(r.keys, key)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

var fixedNow = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthly() *catalog.Package {
	visits := 12
	return &catalog.Package{
		ID: 1, Name: "Monthly", DurationDays: 30, PriceCents: 5000, VisitsLimit: &visits,
		SessionsIncluded: 2, TrialDays: 3, FreezeAllowed: true, MaxFreezeDays: 10, Active: true,
	}
}

func newTestService(repo Repository, pkgs stubPackages) (*service, *recordingNotifier, *recordingPublisher) {
	email := "ana@example.com"
	members := stubMembers{
		1: {ID: 1, FirstName: "Ana", LastName: "Silva", Email: &email, Status: member.StatusActive},
		2: {ID: 2, FirstName: "Bo", Status: member.StatusInactive},
	}
	n, p := &recordingNotifier{}, &recordingPublisher{}
	svc := &service{repo: repo, packages: pkgs, members: members, publisher: p, notifier: n, now: func() time.Time { return fixedNow }}
	return svc, n, p
}

func TestBuild_Paid(t *testing.T) {
	m, err := Build(monthly(), 1, day(2024, 1, 31), 1000, false)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, m.Status)
	assert.Equal(t, day(2024, 2, 29), m.EndDate)
	assert.Equal(t, int64(4000), m.AmountDueCents)
	assert.Equal(t, int64(4000), m.AmountPendingCents)
	assert.Equal(t, PaymentUnpaid, m.PaymentStatus)
	assert.Equal(t, 2, m.SessionsRemaining)
	assert.Equal(t, 12, *m.VisitsLimit)
}

func TestBuild_DiscountLargerThanPrice(t *testing.T) {
	m, err := Build(monthly(), 1, day(2024, 1, 1), 9000, false)
	require.NoError(t, err)

	assert.Zero(t, m.AmountDueCents)
	assert.Equal(t, int64(5000), m.DiscountCents)
	assert.Equal(t, PaymentPaid, m.PaymentStatus)
}

func TestBuild_Trial(t *testing.T) {
	m, err := Build(monthly(), 1, day(2024, 1, 1), 0, true)
	require.NoError(t, err)

	assert.Equal(t, StatusTrial, m.Status)
	assert.Equal(t, day(2024, 1, 3), m.EndDate)
	assert.Zero(t, m.AmountDueCents)
	assert.Zero(t, m.SessionsRemaining)

	pkg := monthly()
	pkg.TrialDays = 0
	_, err = Build(pkg, 1, day(2024, 1, 1), 0, true)
	assert.ErrorIs(t, err, ErrTrialUnavailable)
}

func TestCreate_SendsWelcomeAndEvent(t *testing.T) {
	repo := new(MockRepository)
	svc, notifier, publisher := newTestService(repo, stubPackages{1: monthly()})

	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *Membership) bool {
		return m.StartDate.Equal(day(2024, 3, 10)) && m.EndDate.Equal(day(2024, 4, 8))
	})).Return(&Membership{ID: 5, MemberID: 1, StartDate: day(2024, 3, 10), EndDate: day(2024, 4, 8)}, nil)

	m, err := svc.Create(context.Background(), CreateRequest{MemberID: 1, PackageID: 1})
	require.NoError(t, err)
	assert.Equal(t, 5, m.ID)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notify.KindWelcome, notifier.sent[0].Kind)
	assert.Equal(t, []string{events.MembershipCreated}, publisher.keys)
}

func TestCreate_Rejections(t *testing.T) {
	inactive := monthly()
	inactive.ID = 2
	inactive.Active = false
	svc, _, _ := newTestService(new(MockRepository), stubPackages{1: monthly(), 2: inactive})

	_, err := svc.Create(context.Background(), CreateRequest{MemberID: 2, PackageID: 1})
	assert.ErrorIs(t, err, ErrMemberInactive)

	_, err = svc.Create(context.Background(), CreateRequest{MemberID: 1, PackageID: 2})
	assert.ErrorIs(t, err, ErrPackageInactive)

	_, err = svc.Create(context.Background(), CreateRequest{MemberID: 1, PackageID: 9})
	assert.ErrorIs(t, err, catalog.ErrPackageNotFound)
}

func TestFreezeAndUnfreeze(t *testing.T) {
	repo := new(MockRepository)
	svc, _, _ := newTestService(repo, stubPackages{1: monthly()})

	active := &Membership{ID: 3, PackageID: 1, Status: StatusActive, EndDate: day(2024, 3, 31)}
	repo.On("GetByID", mock.Anything, 3).Return(active, nil).Once()
	repo.On("SaveState", mock.Anything, mock.Anything).Return(nil)

	m, err := svc.Freeze(context.Background(), 3, "injury")
	require.NoError(t, err)
	assert.Equal(t, StatusFrozen, m.Status)
	require.NotNil(t, m.FrozenAt)

	frozenAt := day(2024, 2, 20)
	frozen := &Membership{ID: 3, PackageID: 1, Status: StatusFrozen, FrozenAt: &frozenAt, FreezeDaysUsed: 4, EndDate: day(2024, 3, 31)}
	repo.On("GetByID", mock.Anything, 3).Return(frozen, nil).Once()

	m, err = svc.Unfreeze(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, m.Status)
	// 19 days frozen, but only 6 left of the 10 day allowance.
	assert.Equal(t, day(2024, 4, 6), m.EndDate)
	assert.Equal(t, 10, m.FreezeDaysUsed)
	assert.Nil(t, m.FrozenAt)
}

func TestFreeze_NotAllowed(t *testing.T) {
	pkg := monthly()
	pkg.FreezeAllowed = false
	repo := new(MockRepository)
	svc, _, _ := newTestService(repo, stubPackages{1: pkg})
	repo.On("GetByID", mock.Anything, 3).Return(&Membership{ID: 3, PackageID: 1, Status: StatusActive}, nil)

	_, err := svc.Freeze(context.Background(), 3, "")
	assert.ErrorIs(t, err, ErrFreezeNotAllowed)

	repo2 := new(MockRepository)
	svc2, _, _ := newTestService(repo2, stubPackages{1: monthly()})
	repo2.On("GetByID", mock.Anything, 3).Return(&Membership{ID: 3, PackageID: 1, Status: StatusTrial}, nil)
	_, err = svc2.Freeze(context.Background(), 3, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFreezeCredit(t *testing.T) {
	assert.Equal(t, 5, FreezeCredit(day(2024, 1, 1), day(2024, 1, 6), 0, 30))
	assert.Equal(t, 2, FreezeCredit(day(2024, 1, 1), day(2024, 1, 6), 28, 30))
	assert.Equal(t, 0, FreezeCredit(day(2024, 1, 1), day(2024, 1, 6), 30, 30))
	assert.Equal(t, 0, FreezeCredit(day(2024, 1, 6), day(2024, 1, 1), 0, 30))
}

func TestCancel(t *testing.T) {
	repo := new(MockRepository)
	svc, _, publisher := newTestService(repo, stubPackages{})

	repo.On("GetByID", mock.Anything, 4).Return(&Membership{ID: 4, MemberID: 1, Status: StatusActive}, nil)
	repo.On("Cancel", mock.Anything, 4, "moved away", fixedNow).Return(nil)

	require.NoError(t, svc.Cancel(context.Background(), 4, "moved away"))
	assert.Equal(t, []string{events.MembershipCancelled}, publisher.keys)

	repo.On("GetByID", mock.Anything, 5).Return(&Membership{ID: 5, Status: StatusExpired}, nil)
	assert.ErrorIs(t, svc.Cancel(context.Background(), 5, "x"), ErrInvalidTransition)
}

func TestRenew_StartsAfterCurrentTerm(t *testing.T) {
	repo := new(MockRepository)
	svc, _, _ := newTestService(repo, stubPackages{1: monthly()})

	repo.On("GetByID", mock.Anything, 6).Return(&Membership{ID: 6, MemberID: 1, PackageID: 1, Status: StatusActive, EndDate: day(2024, 3, 31)}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *Membership) bool {
		return m.StartDate.Equal(day(2024, 4, 1)) && m.AmountDueCents == 5000
	})).Return(&Membership{ID: 7}, nil)

	m, err := svc.Renew(context.Background(), 6, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, m.ID)
	repo.AssertExpectations(t)
}

func TestExpireDue(t *testing.T) {
	repo := new(MockRepository)
	svc, _, publisher := newTestService(repo, stubPackages{})
	repo.On("ExpireDue", mock.Anything, day(2024, 3, 10)).Return([]Expired{{ID: 1, MemberID: 1}, {ID: 2, MemberID: 3}}, nil)

	n, err := svc.ExpireDue(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, publisher.keys, 2)
}

func TestUsable(t *testing.T) {
	m := &Membership{Status: StatusActive, StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 31)}
	assert.True(t, m.Usable(day(2024, 3, 31)))
	assert.False(t, m.Usable(day(2024, 4, 1)))

	m.Status = StatusFrozen
	assert.False(t, m.Usable(day(2024, 3, 15)))
}

func TestUpdateAmounts(t *testing.T) {
	m := &Membership{AmountDueCents: 5000, AmountPaidCents: 2000}
	m.UpdateAmounts()
	assert.Equal(t, int64(3000), m.AmountPendingCents)
	assert.Equal(t, PaymentPartial, m.PaymentStatus)

	m.AmountPaidCents = 5000
	m.UpdateAmounts()
	assert.Zero(t, m.AmountPendingCents)
	assert.Equal(t, PaymentPaid, m.PaymentStatus)
}
