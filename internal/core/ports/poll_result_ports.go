package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
)

type VoteCountRepository interface {
	// CountByOption returns per-option vote counts for a poll. Options
	// without votes are present with a zero count (left join on the option
	// set, not on the votes).
	CountByOption(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int, error)
}

type ResultsService interface {
	GetActivePoll(ctx context.Context) (*domain.Poll, error)
	GetPollResults(ctx context.Context, pollID uuid.UUID) (*domain.PollResults, error)
	GetHistoricalPolls(ctx context.Context) ([]*domain.PollResults, error)
}
