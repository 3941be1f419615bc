package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/internal/cache"
	apperrors "doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
)

const roleCacheTTL = 5 * time.Minute

// UserService exposes user domain operations.
type UserService interface {
	CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	// IsAdmin reports whether the email belongs to an admin; an unknown email
	// is simply not an admin, never an error.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// PromoteToAdmin upserts role="admin" on the target user, provided the
	// acting email itself resolves to an admin.
	PromoteToAdmin(ctx context.Context, actorEmail, targetID string) (*repository.GrantResult, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) roleCacheKey(email string) string {
	return "user:role:" + email
}

func (s *userService) CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	_ = s.cache.Delete(ctx, s.roleCacheKey(user.Email))
	return id, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if data, _ := s.cache.Get(ctx, s.roleCacheKey(email)); data != nil {
		return string(data) == model.RoleAdmin, nil
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	_ = s.cache.Set(ctx, s.roleCacheKey(email), []byte(user.Role), roleCacheTTL)
	return user.IsAdmin(), nil
}

func (s *userService) PromoteToAdmin(ctx context.Context, actorEmail, targetID string) (*repository.GrantResult, error) {
	actor, err := s.repo.FindByEmail(ctx, actorEmail)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && !actor.IsAdmin()) {
		return nil, apperrors.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	result, err := s.repo.GrantAdmin(ctx, oid)
	if err != nil {
		return nil, err
	}

	// drop the target's cached role so the promotion is visible immediately
	if target, err := s.repo.FindByID(ctx, oid); err == nil {
		_ = s.cache.Delete(ctx, s.roleCacheKey(target.Email))
	}
	return result, nil
}
