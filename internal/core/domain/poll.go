package domain

import (
	"time"

	"github.com/google/uuid"
)

type PollStatus string

const (
	PollStatusActive PollStatus = "active"
	PollStatusClosed PollStatus = "closed"
)

type Poll struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Deadline  time.Time  `json:"deadline"`
	Status    PollStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Options   []Option   `json:"options,omitempty"`
}

type Option struct {
	ID           uuid.UUID `json:"id"`
	PollID       uuid.UUID `json:"poll_id"`
	Text         string    `json:"text"`
	DisplayOrder int       `json:"display_order"`
}

// IsOpenForVoting reports whether a vote can be cast right now. Status and
// deadline are independent gates: the stored status stays "active" even after
// the deadline passes.
func (p *Poll) IsOpenForVoting(now time.Time) bool {
	return p.Status == PollStatusActive && p.Deadline.After(now)
}

// HasOption reports whether the given option belongs to this poll.
func (p *Poll) HasOption(optionID uuid.UUID) bool {
	for _, opt := range p.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}
