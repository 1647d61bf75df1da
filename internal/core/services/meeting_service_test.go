package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetboard/api/internal/core/domain"
	"github.com/meetboard/api/internal/core/ports"
)

type fakeMeetingRepo struct {
	inserted   []*domain.Meeting
	updated    []*domain.Meeting
	updateErr  error
	voteCount  int
	listCutoff time.Time
	listResult []*domain.Meeting
}

func (f *fakeMeetingRepo) Insert(_ context.Context, m *domain.Meeting) error {
	f.inserted = append(f.inserted, m)
	return nil
}

func (f *fakeMeetingRepo) Update(_ context.Context, m *domain.Meeting) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, m)
	return nil
}

func (f *fakeMeetingRepo) CountVotes(_ context.Context, _ uuid.UUID) (int, error) {
	return f.voteCount, nil
}

func (f *fakeMeetingRepo) List(_ context.Context, cutoff time.Time) ([]*domain.Meeting, error) {
	f.listCutoff = cutoff
	return f.listResult, nil
}

type fakeShortener struct {
	result string
	err    error
	calls  []string
}

func (f *fakeShortener) Shorten(_ context.Context, originalURL string) (string, error) {
	f.calls = append(f.calls, originalURL)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func futureTime(d time.Duration) string {
	return time.Now().Add(d).Format(time.RFC3339)
}

func TestCreateValidation(t *testing.T) {
	repo := &fakeMeetingRepo{}
	svc := NewMeetingService(repo, nil)

	cases := []struct {
		name  string
		input ports.MeetingInput
		want  error
	}{
		{"missing title", ports.MeetingInput{Time: futureTime(time.Hour)}, domain.ErrTitleRequired},
		{"missing time", ports.MeetingInput{Title: "Standup"}, domain.ErrTimeRequired},
		{"unparseable time", ports.MeetingInput{Title: "Standup", Time: "tomorrow at noon"}, domain.ErrInvalidTime},
		{"time one second in the past", ports.MeetingInput{Title: "Standup", Time: futureTime(-time.Second)}, domain.ErrTimeInPast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Empty(t, repo.inserted, "validation failures must not reach the repository")
}

func TestCreateFutureMeeting(t *testing.T) {
	repo := &fakeMeetingRepo{}
	svc := NewMeetingService(repo, nil)

	meeting, err := svc.Create(context.Background(), ports.MeetingInput{
		Title: "Standup",
		Time:  futureTime(time.Hour),
		Link:  "https://example.com/call",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, meeting.ID)
	assert.Equal(t, "Standup", meeting.Title)
	assert.Equal(t, "https://example.com/call", meeting.Link)
	assert.Equal(t, 0, meeting.DeleteVotes)
	require.Len(t, repo.inserted, 1)
}

func TestCreateShortensLink(t *testing.T) {
	repo := &fakeMeetingRepo{}
	short := &fakeShortener{result: "https://sho.rt/abc"}
	svc := NewMeetingService(repo, short)

	meeting, err := svc.Create(context.Background(), ports.MeetingInput{
		Title: "Standup",
		Time:  futureTime(time.Hour),
		Link:  "https://example.com/very/long/link",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://sho.rt/abc", meeting.Link)
	assert.Equal(t, []string{"https://example.com/very/long/link"}, short.calls)
}

func TestCreateShortenerFailureAbortsCreate(t *testing.T) {
	repo := &fakeMeetingRepo{}
	short := &fakeShortener{err: errors.New("connection refused")}
	svc := NewMeetingService(repo, short)

	_, err := svc.Create(context.Background(), ports.MeetingInput{
		Title: "Standup",
		Time:  futureTime(time.Hour),
		Link:  "https://example.com/call",
	})

	assert.ErrorIs(t, err, domain.ErrShortenerUnavailable)
	assert.Empty(t, repo.inserted, "no partial meeting may be persisted")
}

func TestCreateEmptyLinkSkipsShortener(t *testing.T) {
	repo := &fakeMeetingRepo{}
	short := &fakeShortener{err: errors.New("should not be called")}
	svc := NewMeetingService(repo, short)

	meeting, err := svc.Create(context.Background(), ports.MeetingInput{
		Title: "Standup",
		Time:  futureTime(time.Hour),
	})
	require.NoError(t, err)

	assert.Empty(t, meeting.Link)
	assert.Empty(t, short.calls)
}

func TestUpdateInvalidID(t *testing.T) {
	svc := NewMeetingService(&fakeMeetingRepo{}, nil)

	_, err := svc.Update(context.Background(), "not-a-uuid", ports.MeetingInput{
		Title: "Standup",
		Time:  futureTime(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMeetingID)
}

func TestUpdateNotFound(t *testing.T) {
	repo := &fakeMeetingRepo{updateErr: domain.ErrMeetingNotFound}
	svc := NewMeetingService(repo, nil)

	_, err := svc.Update(context.Background(), uuid.NewString(), ports.MeetingInput{
		Title: "Standup",
		Time:  futureTime(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrMeetingNotFound)
}

func TestUpdateValidatesNewValues(t *testing.T) {
	repo := &fakeMeetingRepo{}
	svc := NewMeetingService(repo, nil)

	_, err := svc.Update(context.Background(), uuid.NewString(), ports.MeetingInput{
		Title: "Standup",
		Time:  futureTime(-time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrTimeInPast)
	assert.Empty(t, repo.updated)
}

func TestUpdatePreservesVotes(t *testing.T) {
	repo := &fakeMeetingRepo{voteCount: 2}
	svc := NewMeetingService(repo, nil)

	meeting, err := svc.Update(context.Background(), uuid.NewString(), ports.MeetingInput{
		Title: "Renamed standup",
		Time:  futureTime(time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, meeting.DeleteVotes)
	assert.Equal(t, "Renamed standup", meeting.Title)
}

func TestListWindowCutoff(t *testing.T) {
	repo := &fakeMeetingRepo{}
	svc := NewMeetingService(repo, nil)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(-ListWindow), repo.listCutoff, 2*time.Second)
}
