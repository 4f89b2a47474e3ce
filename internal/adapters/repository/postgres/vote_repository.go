package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

// pq error code for unique_violation.
const uniqueViolation = "23505"

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, poll_id, option_id, ip_address, voted_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, vote.ID, vote.PollID, vote.OptionID, vote.IPAddress, vote.VotedAt)
	if err != nil {
		// The UNIQUE(poll_id, ip_address) constraint is what actually
		// decides a duplicate-submission race. Losing it is the same
		// outcome as having voted before.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, pollID uuid.UUID, ipAddress string) (bool, error) {
	query := `SELECT 1 FROM votes WHERE poll_id = $1 AND ip_address = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, pollID, ipAddress).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}
