package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (id, title, deadline, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, queryPoll, poll.ID, poll.Title, poll.Deadline, poll.Status, poll.CreatedAt, poll.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	if err := insertOptions(ctx, tx, poll.Options); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) Update(ctx context.Context, poll *domain.Poll, replaceOptions bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		UPDATE polls
		SET title = $1, deadline = $2, updated_at = $3
		WHERE id = $4
	`
	_, err = tx.ExecContext(ctx, queryPoll, poll.Title, poll.Deadline, poll.UpdatedAt, poll.ID)
	if err != nil {
		return fmt.Errorf("failed to update poll: %w", err)
	}

	if replaceOptions {
		// Wholesale replacement; votes on the old options go away through
		// the cascade on votes.option_id.
		_, err = tx.ExecContext(ctx, `DELETE FROM vote_options WHERE poll_id = $1`, poll.ID)
		if err != nil {
			return fmt.Errorf("failed to delete old options: %w", err)
		}

		if err := insertOptions(ctx, tx, poll.Options); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertOptions(ctx context.Context, tx *sql.Tx, options []domain.Option) error {
	queryOption := `
		INSERT INTO vote_options (id, poll_id, option_text, display_order)
		VALUES ($1, $2, $3, $4)
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for _, opt := range options {
		_, err = stmt.ExecContext(ctx, opt.ID, opt.PollID, opt.Text, opt.DisplayOrder)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}
	return nil
}

func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	queryPoll := `
		SELECT id, title, deadline, status, created_at, updated_at
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Title, &poll.Deadline, &poll.Status, &poll.CreatedAt, &poll.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options

	return &poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	query := `
		SELECT id, title, deadline, status, created_at, updated_at
		FROM polls
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}
	defer rows.Close()

	return r.scanPolls(ctx, rows)
}

func (r *pollRepository) GetActive(ctx context.Context, now time.Time) (*domain.Poll, error) {
	query := `
		SELECT id, title, deadline, status, created_at, updated_at
		FROM polls
		WHERE status = 'active' AND deadline > $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, query, now).Scan(
		&poll.ID, &poll.Title, &poll.Deadline, &poll.Status, &poll.CreatedAt, &poll.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options

	return &poll, nil
}

func (r *pollRepository) GetHistorical(ctx context.Context, now time.Time) ([]*domain.Poll, error) {
	query := `
		SELECT id, title, deadline, status, created_at, updated_at
		FROM polls
		WHERE status = 'closed' OR deadline < $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get historical polls: %w", err)
	}
	defer rows.Close()

	return r.scanPolls(ctx, rows)
}

func (r *pollRepository) scanPolls(ctx context.Context, rows *sql.Rows) ([]*domain.Poll, error) {
	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(&poll.ID, &poll.Title, &poll.Deadline, &poll.Status, &poll.CreatedAt, &poll.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}

		options, err := r.fetchOptions(ctx, poll.ID)
		if err != nil {
			return nil, err
		}
		poll.Options = options

		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

func (r *pollRepository) fetchOptions(ctx context.Context, pollID uuid.UUID) ([]domain.Option, error) {
	queryOptions := `
		SELECT id, poll_id, option_text, display_order
		FROM vote_options
		WHERE poll_id = $1
		ORDER BY display_order
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	var options []domain.Option
	for rows.Next() {
		var opt domain.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}
