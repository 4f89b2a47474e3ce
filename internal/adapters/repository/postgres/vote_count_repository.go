package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

type voteCountRepository struct {
	db *sql.DB
}

func NewVoteCountRepository(db *sql.DB) ports.VoteCountRepository {
	return &voteCountRepository{
		db: db,
	}
}

func (r *voteCountRepository) CountByOption(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int, error) {
	// Left join so options nobody voted for still show up with a zero.
	query := `
		SELECT vo.id, COUNT(v.id)
		FROM vote_options vo
		LEFT JOIN votes v ON vo.id = v.option_id
		WHERE vo.poll_id = $1
		GROUP BY vo.id
	`

	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var optionID uuid.UUID
		var count int
		if err := rows.Scan(&optionID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[optionID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote counts: %w", err)
	}

	return counts, nil
}
