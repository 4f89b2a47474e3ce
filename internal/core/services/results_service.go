package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

type resultsService struct {
	pollRepo  ports.PollRepository
	countRepo ports.VoteCountRepository
	now       func() time.Time
}

func NewResultsService(pollRepo ports.PollRepository, countRepo ports.VoteCountRepository) ports.ResultsService {
	return &resultsService{
		pollRepo:  pollRepo,
		countRepo: countRepo,
		now:       time.Now,
	}
}

func (s *resultsService) GetActivePoll(ctx context.Context) (*domain.Poll, error) {
	return s.pollRepo.GetActive(ctx, s.now())
}

func (s *resultsService) GetPollResults(ctx context.Context, pollID uuid.UUID) (*domain.PollResults, error) {
	// Closed and expired polls still return results; only a missing poll
	// row is an error.
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	return s.buildResults(ctx, poll)
}

func (s *resultsService) GetHistoricalPolls(ctx context.Context) ([]*domain.PollResults, error) {
	polls, err := s.pollRepo.GetHistorical(ctx, s.now())
	if err != nil {
		return nil, err
	}

	results := make([]*domain.PollResults, 0, len(polls))
	for _, poll := range polls {
		r, err := s.buildResults(ctx, poll)
		if err != nil {
			return nil, fmt.Errorf("failed to build results for poll %s: %w", poll.ID, err)
		}
		results = append(results, r)
	}
	return results, nil
}

func (s *resultsService) buildResults(ctx context.Context, poll *domain.Poll) (*domain.PollResults, error) {
	counts, err := s.countRepo.CountByOption(ctx, poll.ID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, opt := range poll.Options {
		total += counts[opt.ID]
	}

	options := make([]domain.OptionResult, 0, len(poll.Options))
	for _, opt := range poll.Options {
		options = append(options, domain.OptionResult{
			Option:     opt,
			VoteCount:  counts[opt.ID],
			Percentage: percentage(counts[opt.ID], total),
		})
	}

	bare := *poll
	bare.Options = nil

	return &domain.PollResults{
		Poll:       bare,
		Options:    options,
		TotalVotes: total,
	}, nil
}

// percentage rounds half up on the float ratio; with no votes every option
// reports 0 rather than dividing by zero.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
