package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

type pollService struct {
	repo ports.PollRepository
	now  func() time.Time
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	if err := s.validate(input.Title, input.Deadline, input.Options); err != nil {
		return nil, err
	}

	pollID := uuid.New()
	now := s.now()

	poll := &domain.Poll{
		ID:        pollID,
		Title:     input.Title,
		Deadline:  input.Deadline,
		Status:    domain.PollStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for i, text := range input.Options {
		poll.Options = append(poll.Options, domain.Option{
			ID:           uuid.New(),
			PollID:       pollID,
			Text:         text,
			DisplayOrder: i + 1,
		})
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return poll, nil
}

func (s *pollService) Update(ctx context.Context, pollID uuid.UUID, input ports.UpdatePollInput) (*domain.Poll, error) {
	current, err := s.repo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if input.Title == nil && input.Deadline == nil && input.Options == nil {
		return current, nil
	}

	// Full-shape validation runs against the merged record: values from the
	// request where supplied, stored values everywhere else.
	title := current.Title
	if input.Title != nil {
		title = *input.Title
	}
	deadline := current.Deadline
	if input.Deadline != nil {
		deadline = *input.Deadline
	}
	optionTexts := make([]string, 0, len(current.Options))
	if input.Options != nil {
		for _, opt := range input.Options {
			optionTexts = append(optionTexts, opt.Text)
		}
	} else {
		for _, opt := range current.Options {
			optionTexts = append(optionTexts, opt.Text)
		}
	}
	if err := s.validate(title, deadline, optionTexts); err != nil {
		return nil, err
	}

	updated := &domain.Poll{
		ID:        pollID,
		Title:     title,
		Deadline:  deadline,
		Status:    current.Status,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now(),
	}

	replaceOptions := input.Options != nil
	if replaceOptions {
		for _, opt := range input.Options {
			updated.Options = append(updated.Options, domain.Option{
				ID:           uuid.New(),
				PollID:       pollID,
				Text:         opt.Text,
				DisplayOrder: opt.Order,
			})
		}
	}

	if err := s.repo.Update(ctx, updated, replaceOptions); err != nil {
		return nil, fmt.Errorf("failed to update poll: %w", err)
	}

	return s.repo.GetByID(ctx, pollID)
}

func (s *pollService) Delete(ctx context.Context, pollID uuid.UUID) error {
	return s.repo.Delete(ctx, pollID)
}

func (s *pollService) GetAllPolls(ctx context.Context) ([]*domain.Poll, error) {
	return s.repo.GetAll(ctx)
}

func (s *pollService) validate(title string, deadline time.Time, options []string) error {
	if strings.TrimSpace(title) == "" {
		return domain.ErrEmptyTitle
	}
	if len(options) < 2 {
		return domain.ErrTooFewOptions
	}
	for _, text := range options {
		if strings.TrimSpace(text) == "" {
			return domain.ErrEmptyOptionText
		}
	}
	if !deadline.After(s.now()) {
		return domain.ErrDeadlineNotFuture
	}
	return nil
}
