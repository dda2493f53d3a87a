package usecase

import (
	"context"
	"errors"

	"postify/internal/domain/holiday"
	"postify/internal/infra"
	"postify/internal/infra/repository"

	"github.com/google/uuid"
)

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrDuplicateHoliday = errors.New("holiday already exists for that date")
)

type HolidayRepository interface {
	Create(ctx context.Context, h holiday.Holiday) (uuid.UUID, error)
	List(ctx context.Context) ([]holiday.Holiday, error)
	FindByID(ctx context.Context, id uuid.UUID) (holiday.Holiday, error)
	FindByDate(ctx context.Context, date string) (holiday.Holiday, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.HolidayPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateHolidayInput struct {
	Date        string
	Prompt      string
	Description *string
}

type UpdateHolidayInput struct {
	Date        *string
	Prompt      *string
	Description *string
}

type HolidayUseCase interface {
	Create(ctx context.Context, input CreateHolidayInput) (uuid.UUID, error)
	List(ctx context.Context) ([]holiday.Holiday, error)
	Get(ctx context.Context, id uuid.UUID) (holiday.Holiday, error)
	GetByDate(ctx context.Context, date string) (holiday.Holiday, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateHolidayInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type holidayUseCaseImpl struct {
	repo HolidayRepository
}

func NewHolidayUseCase(repo HolidayRepository) HolidayUseCase {
	return &holidayUseCaseImpl{repo: repo}
}

func (h *holidayUseCaseImpl) Create(ctx context.Context, input CreateHolidayInput) (uuid.UUID, error) {
	if err := holiday.ValidateDate(input.Date); err != nil {
		return uuid.Nil, err
	}

	id, err := h.repo.Create(ctx, holiday.Holiday{
		Date:        input.Date,
		Prompt:      input.Prompt,
		Description: input.Description,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateHoliday
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (h *holidayUseCaseImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	return h.repo.List(ctx)
}

func (h *holidayUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (holiday.Holiday, error) {
	entry, err := h.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return holiday.Holiday{}, ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}
	return entry, nil
}

func (h *holidayUseCaseImpl) GetByDate(ctx context.Context, date string) (holiday.Holiday, error) {
	if err := holiday.ValidateDate(date); err != nil {
		return holiday.Holiday{}, err
	}

	entry, err := h.repo.FindByDate(ctx, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return holiday.Holiday{}, ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}
	return entry, nil
}

func (h *holidayUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input UpdateHolidayInput) error {
	if input.Date != nil {
		if err := holiday.ValidateDate(*input.Date); err != nil {
			return err
		}
	}

	patch := repository.HolidayPatch{
		Date:        input.Date,
		Prompt:      input.Prompt,
		Description: input.Description,
	}
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if err := h.repo.Update(ctx, id, patch); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrHolidayNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return ErrDuplicateHoliday
		}
		return err
	}
	return nil
}

func (h *holidayUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := h.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHolidayNotFound
		}
		return err
	}
	return nil
}
