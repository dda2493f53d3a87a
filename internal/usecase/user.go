package usecase

import (
	"context"
	"errors"

	"postify/internal/domain/recipient"
	"postify/internal/imaging"
	"postify/internal/infra"
	"postify/internal/infra/repository"
	"postify/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidImage     = errors.New("invalid image file")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

type UserRepository interface {
	Create(ctx context.Context, u recipient.User) (uuid.UUID, error)
	List(ctx context.Context) ([]recipient.UserSummary, error)
	FindByID(ctx context.Context, id uuid.UUID) (recipient.User, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.UserPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListForDistribution(ctx context.Context) ([]recipient.User, error)
}

type CreateUserInput struct {
	Phone        string
	Mail         string
	Website      string
	Logo         []byte // raw upload, normalized before storage
	LogoFilename string
}

type UpdateUserInput struct {
	Phone        *string
	Mail         *string
	Website      *string
	Logo         []byte
	LogoFilename *string
}

type UserUseCase interface {
	Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error)
	List(ctx context.Context) ([]recipient.UserSummary, error)
	Get(ctx context.Context, id uuid.UUID) (recipient.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	repo UserRepository
}

func NewUserUseCase(repo UserRepository) UserUseCase {
	return &userUseCaseImpl{repo: repo}
}

func (u *userUseCaseImpl) Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error) {
	if input.Phone == "" {
		return uuid.Nil, recipient.ErrEmptyPhone
	}

	var logo []byte
	if len(input.Logo) > 0 {
		processed, err := imaging.ProcessLogo(input.Logo)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrInvalidImage)
		}
		logo = processed
	}

	return u.repo.Create(ctx, recipient.User{
		Phone:        input.Phone,
		Mail:         input.Mail,
		Website:      input.Website,
		Logo:         logo,
		LogoFilename: input.LogoFilename,
	})
}

func (u *userUseCaseImpl) List(ctx context.Context) ([]recipient.UserSummary, error) {
	return u.repo.List(ctx)
}

func (u *userUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (recipient.User, error) {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return recipient.User{}, ErrUserNotFound
		}
		return recipient.User{}, err
	}
	return user, nil
}

func (u *userUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) error {
	patch := repository.UserPatch{
		Phone:        input.Phone,
		Mail:         input.Mail,
		Website:      input.Website,
		LogoFilename: input.LogoFilename,
	}

	if len(input.Logo) > 0 {
		processed, err := imaging.ProcessLogo(input.Logo)
		if err != nil {
			return errs.Mark(err, ErrInvalidImage)
		}
		patch.Logo = processed
	}

	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if err := u.repo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
