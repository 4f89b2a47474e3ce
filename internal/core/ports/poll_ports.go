package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
)

type PollRepository interface {
	// Save persists the poll and its options as a single transaction.
	Save(ctx context.Context, poll *domain.Poll) error
	// Update writes the poll columns and, when replaceOptions is set, swaps
	// the whole option set, all inside one transaction.
	Update(ctx context.Context, poll *domain.Poll, replaceOptions bool) error
	// Delete removes the poll; options and votes go with it via cascade.
	// Deleting an unknown id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	// GetActive returns the most recently created poll that is open for
	// voting at the given instant, or nil when none qualifies.
	GetActive(ctx context.Context, now time.Time) (*domain.Poll, error)
	// GetHistorical returns polls that are closed or past their deadline,
	// newest first.
	GetHistorical(ctx context.Context, now time.Time) ([]*domain.Poll, error)
}

type OptionInput struct {
	Text  string
	Order int
}

type CreatePollInput struct {
	Title    string
	Deadline time.Time
	Options  []string
}

type UpdatePollInput struct {
	Title    *string
	Deadline *time.Time
	Options  []OptionInput
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	Update(ctx context.Context, pollID uuid.UUID, input UpdatePollInput) (*domain.Poll, error)
	Delete(ctx context.Context, pollID uuid.UUID) error
	GetAllPolls(ctx context.Context) ([]*domain.Poll, error)
}
