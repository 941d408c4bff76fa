package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, s *Staff) (*Staff, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Staff), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Staff), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]Staff, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]Staff), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, s *Staff) (*Staff, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Staff), args.Error(1)
}

func (m *MockRepository) SetActive(ctx context.Context, id int, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockRepository) ReplaceShifts(ctx context.Context, staffID int, shifts []Shift) error {
	return m.Called(ctx, staffID, shifts).Error(0)
}

func (m *MockRepository) ListShifts(ctx context.Context, staffID int) ([]Shift, error) {
	args := m.Called(ctx, staffID)
	return args.Get(0).([]Shift), args.Error(1)
}

func (m *MockRepository) AssignClient(ctx context.Context, trainerID, memberID int) (*Client, error) {
	args := m.Called(ctx, trainerID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Client), args.Error(1)
}

func (m *MockRepository) EndAssignment(ctx context.Context, trainerID, memberID int, at time.Time) error {
	return m.Called(ctx, trainerID, memberID, at).Error(0)
}

func (m *MockRepository) ListClients(ctx context.Context, trainerID int) ([]Client, error) {
	args := m.Called(ctx, trainerID)
	return args.Get(0).([]Client), args.Error(1)
}

func (m *MockRepository) CompletedSessions(ctx context.Context, trainerID int, from, to time.Time) (int, error) {
	args := m.Called(ctx, trainerID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ClientPayments(ctx context.Context, trainerID int, from, to time.Time) (int64, error) {
	args := m.Called(ctx, trainerID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type stubMembers map[int]*member.Member

func (s stubMembers) Get(_ context.Context, id int) (*member.Member, error) {
	if m, ok := s[id]; ok {
		return m, nil
	}
	return nil, member.ErrMemberNotFound
}

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *service {
	members := stubMembers{
		20: {ID: 20, Status: member.StatusActive},
		21: {ID: 21, Status: member.StatusInactive},
	}
	return &service{
		repo:    repo,
		members: members,
		now:     func() time.Time { return testNow },
	}
}

func trainer(id int) *Staff {
	return &Staff{ID: id, Name: "Rui", Role: RoleTrainer, Active: true, CommissionPerSessionCents: 2000, CommissionRateBps: 1000}
}

func TestCreate_Defaults(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *Staff) bool {
		return s.Name == "Rui" && s.Email == nil && s.HiredAt.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	})).Return(&Staff{ID: 1, Name: "Rui", Role: RoleTrainer}, nil)

	st, err := svc.Create(context.Background(), CreateStaffRequest{Name: " Rui ", Role: RoleTrainer, CompensationType: PayPerSession})
	require.NoError(t, err)
	assert.Equal(t, 1, st.ID)
	repo.AssertExpectations(t)
}

func TestGetActiveTrainer(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("GetByID", mock.Anything, 1).Return(trainer(1), nil)
	repo.On("GetByID", mock.Anything, 2).Return(&Staff{ID: 2, Role: RoleReceptionist, Active: true}, nil)
	inactive := trainer(3)
	inactive.Active = false
	repo.On("GetByID", mock.Anything, 3).Return(inactive, nil)

	_, err := svc.GetActiveTrainer(ctx, 1)
	assert.NoError(t, err)
	_, err = svc.GetActiveTrainer(ctx, 2)
	assert.ErrorIs(t, err, ErrNotTrainer)
	_, err = svc.GetActiveTrainer(ctx, 3)
	assert.ErrorIs(t, err, ErrStaffInactive)
}

func TestSetSchedule_RejectsOverlapBeforeWriting(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetByID", mock.Anything, 1).Return(trainer(1), nil)

	_, err := svc.SetSchedule(context.Background(), 1, []ShiftInput{
		{Weekday: 1, StartTime: "08:00", EndTime: "12:00"},
		{Weekday: 1, StartTime: "11:00", EndTime: "15:00"},
	})
	assert.ErrorIs(t, err, ErrShiftOverlap)
	repo.AssertNotCalled(t, "ReplaceShifts", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetSchedule(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetByID", mock.Anything, 1).Return(trainer(1), nil)
	repo.On("ReplaceShifts", mock.Anything, 1, []Shift{{StaffID: 1, Weekday: 3, StartTime: "09:00", EndTime: "17:00"}}).Return(nil)
	repo.On("ListShifts", mock.Anything, 1).Return([]Shift{{ID: 8, StaffID: 1, Weekday: 3, StartTime: "09:00", EndTime: "17:00"}}, nil)

	shifts, err := svc.SetSchedule(context.Background(), 1, []ShiftInput{{Weekday: 3, StartTime: "09:00", EndTime: "17:00"}})
	require.NoError(t, err)
	assert.Len(t, shifts, 1)
	repo.AssertExpectations(t)
}

func TestAssignClient(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("GetByID", mock.Anything, 1).Return(trainer(1), nil)
	repo.On("AssignClient", mock.Anything, 1, 20).Return(&Client{TrainerID: 1, MemberID: 20}, nil)

	c, err := svc.AssignClient(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, c.MemberID)

	_, err = svc.AssignClient(ctx, 1, 21)
	assert.ErrorIs(t, err, member.ErrMemberInactive)

	_, err = svc.AssignClient(ctx, 1, 99)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestAssignClient_RequiresTrainer(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetByID", mock.Anything, 2).Return(&Staff{ID: 2, Role: RoleManager, Active: true}, nil)

	_, err := svc.AssignClient(context.Background(), 2, 20)
	assert.ErrorIs(t, err, ErrNotTrainer)
}

func TestUnassignClient(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("EndAssignment", mock.Anything, 1, 20, testNow).Return(ErrAssignmentNotFound)

	assert.ErrorIs(t, svc.UnassignClient(context.Background(), 1, 20), ErrAssignmentNotFound)
}

func TestCommissionReport(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	repo.On("GetByID", mock.Anything, 1).Return(trainer(1), nil)
	repo.On("CompletedSessions", mock.Anything, 1, from, end).Return(5, nil)
	repo.On("ClientPayments", mock.Anything, 1, from, end).Return(int64(25000), nil)

	r, err := svc.CommissionReport(context.Background(), 1, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), r.SessionCommissionCents)
	assert.Equal(t, int64(2500), r.SalesCommissionCents)
	assert.Equal(t, int64(12500), r.TotalCents)
	assert.Equal(t, to, r.To)
}
