package ports

import (
	"context"
	"io"

	"github.com/meetboard/api/internal/core/domain"
)

// LinkShortener is the outbound shortening collaborator. Implementations
// must return an error rather than fall back to the original URL; Create
// aborts entirely when shortening fails.
type LinkShortener interface {
	Shorten(ctx context.Context, originalURL string) (string, error)
}

// CalendarExporter writes a calendar-file rendition of the given meetings.
type CalendarExporter interface {
	Export(w io.Writer, meetings []*domain.Meeting) error
}
