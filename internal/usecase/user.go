package usecase

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailConflict = errors.New("email already in use")

	// Error markers for categorization
	ErrDomainValidationFailed = errors.New("domain validation failed")
	ErrForbidden              = errors.New("operation not allowed for this user")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*readmodel.UserView, error)
	Update(ctx context.Context, id int64, name, email *string) (*readmodel.UserView, error)
	FindByID(ctx context.Context, id int64) (*readmodel.UserView, error)
	FindAll(ctx context.Context) ([]*readmodel.UserView, error)
	Delete(ctx context.Context, id int64) error
}

type UserUseCase interface {
	CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (*readmodel.UserView, error)
	UpdateUser(ctx context.Context, id int64, req reqdto.UpdateUserRequest) (*readmodel.UserView, error)
	GetUser(ctx context.Context, id int64) (*readmodel.UserView, error)
	ListUsers(ctx context.Context) ([]*readmodel.UserView, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userUseCaseImpl struct {
	userRepo UserRepository
}

func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCaseImpl{userRepo: userRepo}
}

func (u *userUseCaseImpl) CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (*readmodel.UserView, error) {
	entity, err := user.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	view, err := u.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailConflict)
		}
		return nil, errs.Wrap(err, "failed to create user")
	}

	return view, nil
}

func (u *userUseCaseImpl) UpdateUser(ctx context.Context, id int64, req reqdto.UpdateUserRequest) (*readmodel.UserView, error) {
	name, email := req.Name, req.Email
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, errs.Mark(user.ErrEmptyName, ErrDomainValidationFailed)
		}
		name = &trimmed
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if err := user.ValidateEmail(trimmed); err != nil {
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}
		email = &trimmed
	}

	view, err := u.userRepo.Update(ctx, id, name, email)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrUserNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrEmailConflict)
		}
		return nil, errs.Wrap(err, "failed to update user")
	}

	return view, nil
}

func (u *userUseCaseImpl) GetUser(ctx context.Context, id int64) (*readmodel.UserView, error) {
	view, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to get user")
	}
	return view, nil
}

func (u *userUseCaseImpl) ListUsers(ctx context.Context) ([]*readmodel.UserView, error) {
	views, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return views, nil
}

// DeleteUser is idempotent. Deleting an absent id succeeds.
func (u *userUseCaseImpl) DeleteUser(ctx context.Context, id int64) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return errs.Wrap(err, "failed to delete user")
	}
	return nil
}
