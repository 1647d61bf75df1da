package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meetboard/api/internal/core/domain"
	"github.com/meetboard/api/internal/core/ports"
)

type meetingRepository struct {
	db *sql.DB
}

func NewMeetingRepository(db *sql.DB) ports.MeetingRepository {
	return &meetingRepository{
		db: db,
	}
}

func (r *meetingRepository) Insert(ctx context.Context, meeting *domain.Meeting) error {
	query := `
		INSERT INTO meetings (id, title, time, link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		meeting.ID, meeting.Title, meeting.Time, nullableLink(meeting.Link),
		meeting.CreatedAt, meeting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meeting: %w", err)
	}
	return nil
}

func (r *meetingRepository) Update(ctx context.Context, meeting *domain.Meeting) error {
	query := `
		UPDATE meetings
		SET title = $1, time = $2, link = $3, updated_at = $4
		WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		meeting.Title, meeting.Time, nullableLink(meeting.Link),
		meeting.UpdatedAt, meeting.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}

func (r *meetingRepository) CountVotes(ctx context.Context, id uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM delete_votes WHERE meeting_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count delete votes: %w", err)
	}
	return count, nil
}

func (r *meetingRepository) List(ctx context.Context, cutoff time.Time) ([]*domain.Meeting, error) {
	query := `
		SELECT m.id, m.title, m.time, m.link, m.created_at, m.updated_at,
			COUNT(dv.voter_id) AS delete_votes
		FROM meetings m
		LEFT JOIN delete_votes dv ON m.id = dv.meeting_id
		WHERE m.time > $1
		GROUP BY m.id
		ORDER BY m.time ASC, m.created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	var meetings []*domain.Meeting
	for rows.Next() {
		var (
			meeting domain.Meeting
			link    sql.NullString
		)
		if err := rows.Scan(
			&meeting.ID, &meeting.Title, &meeting.Time, &link,
			&meeting.CreatedAt, &meeting.UpdatedAt, &meeting.DeleteVotes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meeting.Link = link.String
		meetings = append(meetings, &meeting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meetings: %w", err)
	}
	return meetings, nil
}

func nullableLink(link string) sql.NullString {
	return sql.NullString{String: link, Valid: link != ""}
}
