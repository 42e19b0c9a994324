package repository

import (
	"context"
	"time"

	"reservation-book/internal/infra"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/pgconv"
	"reservation-book/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	jobStatusQueued = "queued"
	jobStatusSent   = "sent"
	jobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db dbq.DBTX, arg dbq.CreateNotificationJobParams) error
	ClaimNotificationJobs(ctx context.Context, db dbq.DBTX, arg dbq.ClaimNotificationJobsParams) ([]dbq.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db dbq.DBTX, arg dbq.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx dbq.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := dbq.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  jobStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimPending locks up to limit due jobs; rows stay locked until tx ends and are skipped by other claimers.
func (r *NotificationRepository) ClaimPending(ctx context.Context, tx dbq.DBTX, now time.Time, limit int32) ([]*shared.NotificationJob, error) {
	rows, err := r.queries.ClaimNotificationJobs(ctx, tx, dbq.ClaimNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]*shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = &shared.NotificationJob{
			ID:       pgconv.UUIDFromPgtype(row.ID),
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx dbq.DBTX, jobID uuid.UUID) error {
	return r.updateStatus(ctx, tx, dbq.UpdateNotificationJobStatusParams{
		ID:        pgconv.UUIDToPgtype(jobID),
		Status:    jobStatusSent,
		Attempted: 1,
	})
}

// MarkFailed records a failed attempt. A nil retryAt gives up on the job for good.
func (r *NotificationRepository) MarkFailed(ctx context.Context, tx dbq.DBTX, jobID uuid.UUID, lastError string, retryAt *time.Time) error {
	params := dbq.UpdateNotificationJobStatusParams{
		ID:        pgconv.UUIDToPgtype(jobID),
		Status:    jobStatusFailed,
		Attempted: 1,
		LastError: pgconv.StringPtrToPgtype(&lastError),
	}
	if retryAt != nil {
		params.Status = jobStatusQueued
		params.RunAt = pgconv.TimeToPgtype(*retryAt)
	} else {
		params.RunAt = pgtype.Timestamptz{Valid: false}
	}
	return r.updateStatus(ctx, tx, params)
}

func (r *NotificationRepository) updateStatus(ctx context.Context, tx dbq.DBTX, params dbq.UpdateNotificationJobStatusParams) error {
	if err := r.queries.UpdateNotificationJobStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
