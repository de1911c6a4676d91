package domain

import (
	"context"
	"testing"
	"time"

	"github.com/draganczukp/lldap/internal/entities"
	"github.com/draganczukp/lldap/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListUsers(ctx context.Context, filter entities.Filter) ([]entities.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) GetUserDetails(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateUser(ctx context.Context, req entities.CreateUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *repoMock) UpdateUser(ctx context.Context, req entities.UpdateUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *repoMock) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *repoMock) ListGroups(ctx context.Context) ([]entities.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Group), args.Error(1)
}

func (m *repoMock) GetGroupDetails(ctx context.Context, groupID int32) (*entities.GroupIDAndName, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GroupIDAndName), args.Error(1)
}

func (m *repoMock) GetUserGroups(ctx context.Context, userID string) ([]entities.GroupIDAndName, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.GroupIDAndName), args.Error(1)
}

func (m *repoMock) CreateGroup(ctx context.Context, displayName string) (int32, error) {
	args := m.Called(ctx, displayName)
	return args.Get(0).(int32), args.Error(1)
}

func (m *repoMock) UpdateGroup(ctx context.Context, req entities.UpdateGroupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *repoMock) DeleteGroup(ctx context.Context, groupID int32) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *repoMock) AddUserToGroup(ctx context.Context, userID string, groupID int32) error {
	args := m.Called(ctx, userID, groupID)
	return args.Error(0)
}

func (m *repoMock) RemoveUserFromGroup(ctx context.Context, userID string, groupID int32) error {
	args := m.Called(ctx, userID, groupID)
	return args.Error(0)
}

func (m *repoMock) UpsertCredential(ctx context.Context, userID string, passwordHash []byte) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *repoMock) GetCredential(ctx context.Context, userID string) ([]byte, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type authnMock struct{ mock.Mock }

var _ Authenticator = (*authnMock)(nil)

func (m *authnMock) Bind(ctx context.Context, userID, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}

func (m *authnMock) RegistrationStart(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *authnMock) RegistrationFinish(ctx context.Context, userID, token, password string) error {
	args := m.Called(ctx, userID, token, password)
	return args.Error(0)
}

func newTestUsecase(repo *repoMock, authn *authnMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, authn, time.Second)
}

func TestUsecase_CreateUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &authnMock{})

	err := uc.CreateUser(context.Background(), entities.CreateUserRequest{Email: "bob@bob.bob"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_CreateUserDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &authnMock{})

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(req entities.CreateUserRequest) bool {
		return req.UserID == "bob"
	})).Return(nil)

	err := uc.CreateUser(context.Background(), entities.CreateUserRequest{UserID: "bob", Email: "bob@bob.bob"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_ListUsersPassesFilterThrough(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &authnMock{})

	filter := entities.EqualityFilter{Field: "user_id", Value: "bob"}
	expected := []entities.User{{ID: "bob"}}
	repo.On("ListUsers", mock.Anything, filter).Return(expected, nil)

	users, err := uc.ListUsers(context.Background(), filter)
	require.NoError(t, err)
	require.Equal(t, expected, users)
	repo.AssertExpectations(t)
}

func TestUsecase_UserDetailsValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &authnMock{})

	_, err := uc.UserDetails(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_UpdateUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &authnMock{})

	err := uc.UpdateUser(context.Background(), entities.UpdateUserRequest{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_CreateGroupValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &authnMock{})

	_, err := uc.CreateGroup(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateGroup", mock.Anything, mock.Anything)
}

func TestUsecase_UserGroupsValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &authnMock{})

	_, err := uc.UserGroups(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_MembershipValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &authnMock{})

	require.ErrorIs(t, uc.AddUserToGroup(context.Background(), "", 1), entities.ErrInvalidArgument)
	require.ErrorIs(t, uc.RemoveUserFromGroup(context.Background(), "", 1), entities.ErrInvalidArgument)
}

func TestUsecase_BindDelegates(t *testing.T) {
	authn := &authnMock{}
	uc := newTestUsecase(&repoMock{}, authn)

	authn.On("Bind", mock.Anything, "bob", "bob00").Return(nil)
	require.NoError(t, uc.Bind(context.Background(), "bob", "bob00"))

	authn.On("Bind", mock.Anything, "bob", "wrong").Return(entities.ErrAuthenticationFailed)
	require.ErrorIs(t, uc.Bind(context.Background(), "bob", "wrong"), entities.ErrAuthenticationFailed)
	authn.AssertExpectations(t)
}

func TestUsecase_RegisterFinishValidation(t *testing.T) {
	authn := &authnMock{}
	uc := newTestUsecase(&repoMock{}, authn)

	err := uc.RegisterFinish(context.Background(), "bob", "", "bob00")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	authn.AssertNotCalled(t, "RegistrationFinish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
