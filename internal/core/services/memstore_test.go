package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
)

// memStore is an in-memory stand-in for the postgres repositories. Vote
// uniqueness per (poll, address) is enforced under the lock, mirroring the
// storage constraint the real adapter relies on.
type memStore struct {
	mu    sync.Mutex
	polls map[uuid.UUID]*domain.Poll
	votes []domain.Vote
}

func newMemStore() *memStore {
	return &memStore{polls: make(map[uuid.UUID]*domain.Poll)}
}

func (m *memStore) Save(_ context.Context, poll *domain.Poll) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *poll
	cp.Options = append([]domain.Option(nil), poll.Options...)
	m.polls[poll.ID] = &cp
	return nil
}

func (m *memStore) Update(_ context.Context, poll *domain.Poll, replaceOptions bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.polls[poll.ID]
	if !ok {
		return domain.ErrPollNotFound
	}
	current.Title = poll.Title
	current.Deadline = poll.Deadline
	current.UpdatedAt = poll.UpdatedAt
	if replaceOptions {
		removed := make(map[uuid.UUID]bool)
		for _, opt := range current.Options {
			removed[opt.ID] = true
		}
		current.Options = append([]domain.Option(nil), poll.Options...)

		// cascade: votes referencing deleted options go away
		kept := m.votes[:0]
		for _, v := range m.votes {
			if !removed[v.OptionID] {
				kept = append(kept, v)
			}
		}
		m.votes = kept
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.polls, id)
	kept := m.votes[:0]
	for _, v := range m.votes {
		if v.PollID != id {
			kept = append(kept, v)
		}
	}
	m.votes = kept
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	poll, ok := m.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	cp := *poll
	cp.Options = append([]domain.Option(nil), poll.Options...)
	return &cp, nil
}

func (m *memStore) GetAll(_ context.Context) ([]*domain.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedPolls(func(*domain.Poll) bool { return true }), nil
}

func (m *memStore) GetActive(_ context.Context, now time.Time) (*domain.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qualified := m.sortedPolls(func(p *domain.Poll) bool { return p.IsOpenForVoting(now) })
	if len(qualified) == 0 {
		return nil, nil
	}
	return qualified[0], nil
}

func (m *memStore) GetHistorical(_ context.Context, now time.Time) ([]*domain.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedPolls(func(p *domain.Poll) bool {
		return p.Status == domain.PollStatusClosed || p.Deadline.Before(now)
	}), nil
}

func (m *memStore) sortedPolls(keep func(*domain.Poll) bool) []*domain.Poll {
	var out []*domain.Poll
	for _, poll := range m.polls {
		if keep(poll) {
			cp := *poll
			cp.Options = append([]domain.Option(nil), poll.Options...)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memStore) SaveVote(ctx context.Context, vote *domain.Vote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.votes {
		if v.PollID == vote.PollID && v.IPAddress == vote.IPAddress {
			return domain.ErrAlreadyVoted
		}
	}
	m.votes = append(m.votes, *vote)
	return nil
}

func (m *memStore) HasVoted(_ context.Context, pollID uuid.UUID, ipAddress string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.votes {
		if v.PollID == pollID && v.IPAddress == ipAddress {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CountByOption(_ context.Context, pollID uuid.UUID) (map[uuid.UUID]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[uuid.UUID]int)
	if poll, ok := m.polls[pollID]; ok {
		for _, opt := range poll.Options {
			counts[opt.ID] = 0
		}
	}
	for _, v := range m.votes {
		if v.PollID == pollID {
			counts[v.OptionID]++
		}
	}
	return counts, nil
}

func (m *memStore) voteCount(pollID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, v := range m.votes {
		if v.PollID == pollID {
			n++
		}
	}
	return n
}
