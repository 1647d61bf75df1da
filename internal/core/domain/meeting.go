package domain

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is the projection exchanged with clients: stored fields plus
// the vote count derived from the delete_votes table at read time.
type Meeting struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Time        time.Time `json:"time"`
	Link        string    `json:"link"`
	DeleteVotes int       `json:"deleteVotes"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
