package booking

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed activity.sql
var SetupSQL string

// Activity is one confirmed status change dispatched through the service.
type Activity struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	ActorID   string    `json:"actorId"`
	ActorRole string    `json:"actorRole"`
	Action    string    `json:"action"`
	From      string    `json:"fromStatus"`
	To        string    `json:"toStatus"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Record(ctx context.Context, activity Activity) error {
	sql := `
			INSERT INTO skillbridge.booking_activity(
			id, booking_id, actor_id, actor_role, action, from_status, to_status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`

	_, err := r.pool.Exec(ctx, sql,
		activity.ID,
		activity.BookingID,
		activity.ActorID,
		activity.ActorRole,
		activity.Action,
		activity.From,
		activity.To,
		activity.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to record activity for booking '%v': %w", activity.BookingID, err)
	}

	return nil
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]Activity, error) {
	sql := `
            SELECT id, booking_id, actor_id, actor_role, action, from_status, to_status, created_at
            FROM skillbridge.booking_activity
            ORDER BY created_at DESC
            LIMIT $1;
        `

	rows, err := r.pool.Query(ctx, sql, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}

	defer rows.Close()

	activities := []Activity{}

	for rows.Next() {
		var activity Activity
		err := rows.Scan(
			&activity.ID,
			&activity.BookingID,
			&activity.ActorID,
			&activity.ActorRole,
			&activity.Action,
			&activity.From,
			&activity.To,
			&activity.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}

		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}

// NopJournal is used when no database is configured.
type NopJournal struct{}

func (NopJournal) Record(context.Context, Activity) error { return nil }

func (NopJournal) Recent(context.Context, int) ([]Activity, error) { return []Activity{}, nil }
