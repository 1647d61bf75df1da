package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetboard/api/internal/core/domain"
	"github.com/meetboard/api/internal/core/ports"
)

// Quorum is the number of distinct voters required to destroy a meeting.
const Quorum = 5

type voteService struct {
	voteRepo ports.VoteRepository
	quorum   int
}

func NewVoteService(voteRepo ports.VoteRepository, quorum int) ports.VoteService {
	if quorum <= 0 {
		quorum = Quorum
	}
	return &voteService{
		voteRepo: voteRepo,
		quorum:   quorum,
	}
}

func (s *voteService) CastVote(ctx context.Context, meetingID string, voterID string) (*domain.VoteOutcome, error) {
	if voterID == "" {
		return nil, domain.ErrVoterRequired
	}

	id, err := uuid.Parse(meetingID)
	if err != nil {
		return nil, domain.ErrInvalidMeetingID
	}

	tally, deleted, err := s.voteRepo.CastAndTally(ctx, id, voterID, s.quorum)
	if err != nil {
		return nil, err
	}

	outcome := &domain.VoteOutcome{
		Deleted: deleted,
		Tally:   tally,
	}
	if !deleted {
		outcome.VotesRemaining = s.quorum - tally
	}

	return outcome, nil
}
