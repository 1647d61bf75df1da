package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/meetboard/api/internal/core/domain"
	"github.com/meetboard/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// CastAndTally runs the whole vote sequence in one transaction. The
// meeting row is locked first so that concurrent votes on the same
// meeting serialize: whichever transaction crosses the quorum threshold
// deletes the meeting, and the ones waiting behind it see no row and
// report the meeting as gone.
func (r *voteRepository) CastAndTally(ctx context.Context, meetingID uuid.UUID, voterID string, quorum int) (int, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM meetings WHERE id = $1 FOR UPDATE`, meetingID,
	).Scan(&exists)
	if err == sql.ErrNoRows {
		return 0, false, domain.ErrMeetingNotFound
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to lock meeting: %w", err)
	}

	// The unique (meeting_id, voter_id) constraint does the dedup; a
	// repeat vote from the same voter is a no-op, never an error.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO delete_votes (meeting_id, voter_id)
		VALUES ($1, $2)
		ON CONFLICT (meeting_id, voter_id) DO NOTHING
	`, meetingID, voterID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to cast delete vote: %w", err)
	}

	var tally int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM delete_votes WHERE meeting_id = $1`, meetingID,
	).Scan(&tally)
	if err != nil {
		return 0, false, fmt.Errorf("failed to tally delete votes: %w", err)
	}

	deleted := false
	if tally >= quorum {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM delete_votes WHERE meeting_id = $1`, meetingID,
		); err != nil {
			return 0, false, fmt.Errorf("failed to purge delete votes: %w", err)
		}
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM meetings WHERE id = $1`, meetingID,
		); err != nil {
			return 0, false, fmt.Errorf("failed to delete meeting: %w", err)
		}
		deleted = true
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return tally, deleted, nil
}
