package dbq

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)
`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}

const claimNotificationJobs = `-- name: ClaimNotificationJobs :many
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued'
  AND run_at <= $1
ORDER BY run_at ASC, id ASC
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimNotificationJobsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

func (q *Queries) ClaimNotificationJobs(ctx context.Context, db DBTX, arg ClaimNotificationJobsParams) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimNotificationJobs, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (NotificationJob, error) {
		var j NotificationJob
		err := row.Scan(
			&j.ID,
			&j.Kind,
			&j.Topic,
			&j.Payload,
			&j.RunAt,
			&j.Attempts,
			&j.Status,
			&j.LastError,
			&j.CreatedAt,
			&j.UpdatedAt,
		)
		return j, err
	})
}

const updateNotificationJobStatus = `-- name: UpdateNotificationJobStatus :exec
UPDATE notification_jobs
SET status = $2,
    attempts = attempts + $3,
    last_error = $4,
    run_at = COALESCE($5, run_at),
    updated_at = now()
WHERE id = $1
`

type UpdateNotificationJobStatusParams struct {
	ID        pgtype.UUID
	Status    string
	Attempted int32
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus, arg.ID, arg.Status, arg.Attempted, arg.LastError, arg.RunAt)
	return err
}

const countNotificationJobsByStatus = `-- name: CountNotificationJobsByStatus :one
SELECT COUNT(*) FROM notification_jobs WHERE status = $1
`

func (q *Queries) CountNotificationJobsByStatus(ctx context.Context, db DBTX, status string) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countNotificationJobsByStatus, status).Scan(&n)
	return n, err
}
