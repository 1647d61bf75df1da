package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetboard/api/internal/core/domain"
)

type VoteRepository interface {
	// CastAndTally records the voter's delete vote (a duplicate is a silent
	// no-op), recounts distinct voters, and, when the tally reaches quorum,
	// destroys the meeting and its votes — all within one transaction.
	CastAndTally(ctx context.Context, meetingID uuid.UUID, voterID string, quorum int) (tally int, deleted bool, err error)
}

type VoteService interface {
	CastVote(ctx context.Context, meetingID string, voterID string) (*domain.VoteOutcome, error)
}
