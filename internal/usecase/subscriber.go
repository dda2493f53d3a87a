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

var ErrSubscriberNotFound = errors.New("subscriber not found")

type SubscriberRepository interface {
	Create(ctx context.Context, s recipient.Subscriber) (uuid.UUID, error)
	List(ctx context.Context) ([]recipient.SubscriberSummary, error)
	FindByID(ctx context.Context, id uuid.UUID) (recipient.Subscriber, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.SubscriberPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListForDistribution(ctx context.Context) ([]recipient.Subscriber, error)
}

type CreateSubscriberInput struct {
	Name    string
	Phone   string
	Overlay []byte // raw upload, re-encoded as PNG before storage
}

type UpdateSubscriberInput struct {
	Name    *string
	Phone   *string
	Overlay []byte
}

type SubscriberUseCase interface {
	Create(ctx context.Context, input CreateSubscriberInput) (uuid.UUID, error)
	List(ctx context.Context) ([]recipient.SubscriberSummary, error)
	Get(ctx context.Context, id uuid.UUID) (recipient.Subscriber, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSubscriberInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type subscriberUseCaseImpl struct {
	repo SubscriberRepository
}

func NewSubscriberUseCase(repo SubscriberRepository) SubscriberUseCase {
	return &subscriberUseCaseImpl{repo: repo}
}

func (s *subscriberUseCaseImpl) Create(ctx context.Context, input CreateSubscriberInput) (uuid.UUID, error) {
	if input.Phone == "" {
		return uuid.Nil, recipient.ErrEmptyPhone
	}

	overlay, err := imaging.ProcessOverlay(input.Overlay)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidImage)
	}

	return s.repo.Create(ctx, recipient.Subscriber{
		Name:    input.Name,
		Phone:   input.Phone,
		Overlay: overlay,
	})
}

func (s *subscriberUseCaseImpl) List(ctx context.Context) ([]recipient.SubscriberSummary, error) {
	return s.repo.List(ctx)
}

func (s *subscriberUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (recipient.Subscriber, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return recipient.Subscriber{}, ErrSubscriberNotFound
		}
		return recipient.Subscriber{}, err
	}
	return sub, nil
}

func (s *subscriberUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input UpdateSubscriberInput) error {
	patch := repository.SubscriberPatch{
		Name:  input.Name,
		Phone: input.Phone,
	}

	if len(input.Overlay) > 0 {
		processed, err := imaging.ProcessOverlay(input.Overlay)
		if err != nil {
			return errs.Mark(err, ErrInvalidImage)
		}
		patch.Overlay = processed
	}

	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSubscriberNotFound
		}
		return err
	}
	return nil
}

func (s *subscriberUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSubscriberNotFound
		}
		return err
	}
	return nil
}
