package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
)

func newResultsServiceForTest(store *memStore) *resultsService {
	return &resultsService{pollRepo: store, countRepo: store, now: time.Now}
}

func castVote(t *testing.T, store *memStore, poll *domain.Poll, optionIdx int, ip string) {
	t.Helper()
	require.NoError(t, store.SaveVote(context.Background(), &domain.Vote{
		ID:        uuid.New(),
		PollID:    poll.ID,
		OptionID:  poll.Options[optionIdx].ID,
		IPAddress: ip,
		VotedAt:   time.Now(),
	}))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		count, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 1, 100},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds half up
		{3, 8, 38}, // 37.5 rounds half up
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percentage(tt.count, tt.total), "%d/%d", tt.count, tt.total)
	}
}

func TestGetPollResults(t *testing.T) {
	store := newMemStore()
	svc := newResultsServiceForTest(store)
	poll := seedPoll(t, store, domain.PollStatusActive, time.Now().Add(time.Hour))

	// no votes yet: every option present, all zeros
	results, err := svc.GetPollResults(context.Background(), poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, results.TotalVotes)
	require.Len(t, results.Options, 2)
	for _, opt := range results.Options {
		assert.Zero(t, opt.VoteCount)
		assert.Zero(t, opt.Percentage)
	}

	castVote(t, store, poll, 0, "1.1.1.1")

	results, err = svc.GetPollResults(context.Background(), poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, results.TotalVotes)
	assert.Equal(t, 1, results.Options[0].VoteCount)
	assert.Equal(t, 100, results.Options[0].Percentage)
	assert.Equal(t, 0, results.Options[1].VoteCount)
	assert.Equal(t, 0, results.Options[1].Percentage)

	castVote(t, store, poll, 1, "2.2.2.2")

	results, err = svc.GetPollResults(context.Background(), poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, results.TotalVotes)
	assert.Equal(t, 50, results.Options[0].Percentage)
	assert.Equal(t, 50, results.Options[1].Percentage)
}

func TestGetPollResultsPercentagesSum(t *testing.T) {
	store := newMemStore()
	svc := newResultsServiceForTest(store)

	pollID := uuid.New()
	poll := &domain.Poll{
		ID:       pollID,
		Title:    "Thirds",
		Deadline: time.Now().Add(time.Hour),
		Status:   domain.PollStatusActive,
		Options: []domain.Option{
			{ID: uuid.New(), PollID: pollID, Text: "A", DisplayOrder: 1},
			{ID: uuid.New(), PollID: pollID, Text: "B", DisplayOrder: 2},
			{ID: uuid.New(), PollID: pollID, Text: "C", DisplayOrder: 3},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(context.Background(), poll))

	castVote(t, store, poll, 0, "1.1.1.1")
	castVote(t, store, poll, 1, "2.2.2.2")
	castVote(t, store, poll, 2, "3.3.3.3")

	results, err := svc.GetPollResults(context.Background(), poll.ID)
	require.NoError(t, err)

	sum := 0
	for _, opt := range results.Options {
		assert.Equal(t, 33, opt.Percentage)
		sum += opt.Percentage
	}
	assert.InDelta(t, 100, sum, 1, "percentages sum to 100 within rounding")
}

func TestGetPollResultsClosedPollStillReturns(t *testing.T) {
	store := newMemStore()
	svc := newResultsServiceForTest(store)
	poll := seedPoll(t, store, domain.PollStatusClosed, time.Now().Add(-time.Hour))

	results, err := svc.GetPollResults(context.Background(), poll.ID)
	require.NoError(t, err)
	assert.Equal(t, poll.ID, results.Poll.ID)
}

func TestGetPollResultsNotFound(t *testing.T) {
	svc := newResultsServiceForTest(newMemStore())

	_, err := svc.GetPollResults(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
}

func TestGetActivePoll(t *testing.T) {
	store := newMemStore()
	svc := newResultsServiceForTest(store)

	poll, err := svc.GetActivePoll(context.Background())
	require.NoError(t, err)
	assert.Nil(t, poll, "nil when nothing qualifies")

	base := time.Now()
	older := &domain.Poll{
		ID: uuid.New(), Title: "older", Status: domain.PollStatusActive,
		Deadline: base.Add(time.Hour), CreatedAt: base.Add(-2 * time.Minute),
	}
	newer := &domain.Poll{
		ID: uuid.New(), Title: "newer", Status: domain.PollStatusActive,
		Deadline: base.Add(time.Hour), CreatedAt: base.Add(-time.Minute),
	}
	expired := &domain.Poll{
		ID: uuid.New(), Title: "expired", Status: domain.PollStatusActive,
		Deadline: base.Add(-time.Hour), CreatedAt: base,
	}
	closed := &domain.Poll{
		ID: uuid.New(), Title: "closed", Status: domain.PollStatusClosed,
		Deadline: base.Add(time.Hour), CreatedAt: base,
	}
	for _, p := range []*domain.Poll{older, newer, expired, closed} {
		require.NoError(t, store.Save(context.Background(), p))
	}

	poll, err = svc.GetActivePoll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, poll)
	assert.Equal(t, "newer", poll.Title, "most recently created qualifying poll wins")
}

func TestGetHistoricalPolls(t *testing.T) {
	store := newMemStore()
	svc := newResultsServiceForTest(store)

	base := time.Now()
	expired := &domain.Poll{
		ID: uuid.New(), Title: "expired", Status: domain.PollStatusActive,
		Deadline: base.Add(-time.Hour), CreatedAt: base.Add(-2 * time.Minute),
	}
	expired.Options = []domain.Option{
		{ID: uuid.New(), PollID: expired.ID, Text: "A", DisplayOrder: 1},
		{ID: uuid.New(), PollID: expired.ID, Text: "B", DisplayOrder: 2},
	}
	closedEarly := &domain.Poll{
		ID: uuid.New(), Title: "closed early", Status: domain.PollStatusClosed,
		Deadline: base.Add(time.Hour), CreatedAt: base.Add(-time.Minute),
	}
	current := &domain.Poll{
		ID: uuid.New(), Title: "current", Status: domain.PollStatusActive,
		Deadline: base.Add(time.Hour), CreatedAt: base,
	}
	for _, p := range []*domain.Poll{expired, closedEarly, current} {
		require.NoError(t, store.Save(context.Background(), p))
	}

	castVote(t, store, expired, 0, "1.1.1.1")

	history, err := svc.GetHistoricalPolls(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 2)

	// newest created first, active-and-future polls excluded
	assert.Equal(t, "closed early", history[0].Poll.Title)
	assert.Equal(t, "expired", history[1].Poll.Title)

	assert.Equal(t, 1, history[1].TotalVotes)
	assert.Equal(t, 100, history[1].Options[0].Percentage)
}
