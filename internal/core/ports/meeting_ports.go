package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meetboard/api/internal/core/domain"
)

type MeetingRepository interface {
	Insert(ctx context.Context, meeting *domain.Meeting) error
	Update(ctx context.Context, meeting *domain.Meeting) error
	CountVotes(ctx context.Context, id uuid.UUID) (int, error)
	List(ctx context.Context, cutoff time.Time) ([]*domain.Meeting, error)
}

type MeetingInput struct {
	Title string
	Time  string
	Link  string
}

type MeetingService interface {
	Create(ctx context.Context, input MeetingInput) (*domain.Meeting, error)
	Update(ctx context.Context, id string, input MeetingInput) (*domain.Meeting, error)
	List(ctx context.Context) ([]*domain.Meeting, error)
}
