package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
)

type VoteRepository interface {
	// SaveVote inserts the vote. A (poll_id, ip_address) uniqueness
	// violation at the storage layer is reported as domain.ErrAlreadyVoted
	// so concurrent duplicate submissions collapse to a single stored vote.
	SaveVote(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, pollID uuid.UUID, ipAddress string) (bool, error)
}

type SubmitVoteInput struct {
	PollID    uuid.UUID
	OptionID  uuid.UUID
	IPAddress string
}

type VoteService interface {
	Submit(ctx context.Context, input SubmitVoteInput) error
}
