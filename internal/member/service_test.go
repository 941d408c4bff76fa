package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, mem *Member) (*Member, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) GetByCheckinCode(ctx context.Context, code string) (*Member, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]Member, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, mem *Member) (*Member, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) SetStatus(ctx context.Context, id int, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockRepository) SetCheckinCode(ctx context.Context, id int, code string) error {
	return m.Called(ctx, id, code).Error(0)
}

func (m *MockRepository) EmailTaken(ctx context.Context, email string, exceptID int) (bool, error) {
	args := m.Called(ctx, email, exceptID)
	return args.Bool(0), args.Error(1)
}

func newTestService(repo Repository) *service {
	return &service{repo: repo, newCode: func() string { return "code-1" }}
}

func TestCreateMember(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("EmailTaken", mock.Anything, "ana@example.com", 0).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *Member) bool {
		return m.FirstName == "Ana" && m.Contact() == "ana@example.com" &&
			m.Status == StatusActive && m.CheckinCode == "code-1"
	})).Return(&Member{ID: 7, FirstName: "Ana"}, nil)

	m, err := svc.Create(context.Background(), CreateMemberRequest{
		FirstName: " Ana ", LastName: "Silva", Email: "Ana@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, m.ID)
	repo.AssertExpectations(t)
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("EmailTaken", mock.Anything, "ana@example.com", 0).Return(true, nil)

	_, err := svc.Create(context.Background(), CreateMemberRequest{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateMember_WithoutEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *Member) bool { return m.Email == nil })).
		Return(&Member{ID: 8}, nil)

	_, err := svc.Create(context.Background(), CreateMemberRequest{FirstName: "Bo", LastName: "Li"})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "EmailTaken", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateMember_ClearsEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	email := "old@example.com"
	repo.On("GetByID", mock.Anything, 3).Return(&Member{ID: 3, FirstName: "Ana", LastName: "Silva", Email: &email}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(m *Member) bool { return m.Email == nil && m.Phone == "555" })).
		Return(&Member{ID: 3}, nil)

	empty, phone := "", "555"
	_, err := svc.Update(context.Background(), 3, UpdateMemberRequest{Email: &empty, Phone: &phone})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateMember_BlankName(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetByID", mock.Anything, 3).Return(&Member{ID: 3, FirstName: "Ana", LastName: "Silva"}, nil)

	blank := "  "
	_, err := svc.Update(context.Background(), 3, UpdateMemberRequest{LastName: &blank})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestRegenerateCheckinCode(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("SetCheckinCode", mock.Anything, 5, "code-1").Return(nil)

	code, err := svc.RegenerateCheckinCode(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "code-1", code)
}

func TestGetByCheckinCode_Blank(t *testing.T) {
	svc := newTestService(new(MockRepository))
	_, err := svc.GetByCheckinCode(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestNewService_GeneratesUUIDCodes(t *testing.T) {
	svc := NewService(new(MockRepository)).(*service)
	a, b := svc.newCode(), svc.newCode()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
