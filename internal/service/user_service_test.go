package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) GrantAdmin(ctx context.Context, id primitive.ObjectID) (*repository.GrantResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.GrantResult), args.Error(1)
}

func TestUserService_IsAdmin(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(*MockUserRepository)
		expected  bool
	}{
		{
			name:  "admin role",
			email: "boss@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "boss@example.com").
					Return(&model.User{Email: "boss@example.com", Role: model.RoleAdmin}, nil)
			},
			expected: true,
		},
		{
			name:  "regular user",
			email: "patient@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "patient@example.com").
					Return(&model.User{Email: "patient@example.com"}, nil)
			},
			expected: false,
		},
		{
			name:  "unknown email is simply not an admin",
			email: "ghost@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, mongo.ErrNoDocuments)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			svc := NewUserService(userRepo, nil)
			isAdmin, err := svc.IsAdmin(context.Background(), tt.email)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, isAdmin)
		})
	}
}

func TestUserService_PromoteToAdmin(t *testing.T) {
	targetID := primitive.NewObjectID()

	t.Run("non-admin caller is forbidden and nothing changes", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "patient@example.com").
			Return(&model.User{Email: "patient@example.com"}, nil)

		svc := NewUserService(userRepo, nil)
		result, err := svc.PromoteToAdmin(context.Background(), "patient@example.com", targetID.Hex())

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Nil(t, result)
		userRepo.AssertNotCalled(t, "GrantAdmin", mock.Anything, mock.Anything)
	})

	t.Run("unknown caller is forbidden", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, mongo.ErrNoDocuments)

		svc := NewUserService(userRepo, nil)
		_, err := svc.PromoteToAdmin(context.Background(), "ghost@example.com", targetID.Hex())

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		userRepo.AssertNotCalled(t, "GrantAdmin", mock.Anything, mock.Anything)
	})

	t.Run("admin caller upserts the role on the target", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "boss@example.com").
			Return(&model.User{Email: "boss@example.com", Role: model.RoleAdmin}, nil)
		userRepo.On("GrantAdmin", mock.Anything, targetID).
			Return(&repository.GrantResult{MatchedCount: 1, ModifiedCount: 1}, nil)
		userRepo.On("FindByID", mock.Anything, targetID).
			Return(&model.User{ID: targetID, Email: "patient@example.com", Role: model.RoleAdmin}, nil)

		svc := NewUserService(userRepo, nil)
		result, err := svc.PromoteToAdmin(context.Background(), "boss@example.com", targetID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ModifiedCount)
		userRepo.AssertExpectations(t)
	})

	t.Run("malformed target id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "boss@example.com").
			Return(&model.User{Email: "boss@example.com", Role: model.RoleAdmin}, nil)

		svc := NewUserService(userRepo, nil)
		_, err := svc.PromoteToAdmin(context.Background(), "boss@example.com", "not-a-hex-id")

		assert.ErrorIs(t, err, apperrors.ErrInvalidID)
		userRepo.AssertNotCalled(t, "GrantAdmin", mock.Anything, mock.Anything)
	})
}

func TestUserService_CreateUser(t *testing.T) {
	id := primitive.NewObjectID()
	user := &model.User{Name: "New Patient", Email: "new@example.com"}

	userRepo := new(MockUserRepository)
	userRepo.On("Create", mock.Anything, user).Return(id, nil)

	svc := NewUserService(userRepo, nil)
	got, err := svc.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, id, got)
	userRepo.AssertExpectations(t)
}
