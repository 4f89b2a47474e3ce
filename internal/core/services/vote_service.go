package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

type voteService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
	now      func() time.Time
}

func NewVoteService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
		now:      time.Now,
	}
}

func (s *voteService) Submit(ctx context.Context, input ports.SubmitVoteInput) error {
	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return err
	}

	if poll.Status != domain.PollStatusActive {
		return domain.ErrPollNotActive
	}
	if !poll.Deadline.After(s.now()) {
		return domain.ErrPollExpired
	}
	if !poll.HasOption(input.OptionID) {
		return domain.ErrInvalidOption
	}

	hasVoted, err := s.voteRepo.HasVoted(ctx, input.PollID, input.IPAddress)
	if err != nil {
		return err
	}
	if hasVoted {
		return domain.ErrAlreadyVoted
	}

	vote := &domain.Vote{
		ID:        uuid.New(),
		PollID:    input.PollID,
		OptionID:  input.OptionID,
		IPAddress: input.IPAddress,
		VotedAt:   s.now(),
	}

	// The check above and this insert are separate statements. Two
	// concurrent submissions from the same address can both pass the check;
	// the storage-level uniqueness on (poll_id, ip_address) decides the
	// race and the loser surfaces as ErrAlreadyVoted.
	return s.voteRepo.SaveVote(ctx, vote)
}
