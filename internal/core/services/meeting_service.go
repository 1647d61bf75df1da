package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meetboard/api/internal/core/domain"
	"github.com/meetboard/api/internal/core/ports"
)

// ListWindow keeps recently elapsed meetings visible: a meeting stays
// listed until this long after its scheduled time.
const ListWindow = 2 * time.Hour

type meetingService struct {
	repo      ports.MeetingRepository
	shortener ports.LinkShortener
}

// NewMeetingService builds the meeting lifecycle service. A nil shortener
// disables link shortening and stores links as given.
func NewMeetingService(repo ports.MeetingRepository, shortener ports.LinkShortener) ports.MeetingService {
	return &meetingService{
		repo:      repo,
		shortener: shortener,
	}
}

func (s *meetingService) Create(ctx context.Context, input ports.MeetingInput) (*domain.Meeting, error) {
	meetingTime, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	link := input.Link
	if link != "" && s.shortener != nil {
		link, err = s.shortener.Shorten(ctx, link)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrShortenerUnavailable, err)
		}
	}

	now := time.Now()
	meeting := &domain.Meeting{
		ID:        uuid.New(),
		Title:     input.Title,
		Time:      meetingTime,
		Link:      link,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, meeting); err != nil {
		return nil, err
	}

	meeting.DeleteVotes = 0
	return meeting, nil
}

func (s *meetingService) Update(ctx context.Context, id string, input ports.MeetingInput) (*domain.Meeting, error) {
	meetingID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidMeetingID
	}

	meetingTime, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	meeting := &domain.Meeting{
		ID:        meetingID,
		Title:     input.Title,
		Time:      meetingTime,
		Link:      input.Link,
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Update(ctx, meeting); err != nil {
		return nil, err
	}

	// Updating never touches the vote table; re-read the live tally.
	votes, err := s.repo.CountVotes(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	meeting.DeleteVotes = votes

	return meeting, nil
}

func (s *meetingService) List(ctx context.Context) ([]*domain.Meeting, error) {
	cutoff := time.Now().Add(-ListWindow)
	return s.repo.List(ctx, cutoff)
}

// validateInput checks the lifecycle preconditions shared by Create and
// Update and returns the parsed meeting time.
func validateInput(input ports.MeetingInput) (time.Time, error) {
	if input.Title == "" {
		return time.Time{}, domain.ErrTitleRequired
	}
	if input.Time == "" {
		return time.Time{}, domain.ErrTimeRequired
	}

	meetingTime, err := time.Parse(time.RFC3339, input.Time)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTime
	}

	if !meetingTime.After(time.Now()) {
		return time.Time{}, domain.ErrTimeInPast
	}

	return meetingTime, nil
}
