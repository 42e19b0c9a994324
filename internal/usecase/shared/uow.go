package shared

import (
	"context"
	"time"

	"reservation-book/internal/domain/customer"
	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra/dbq"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error
}

type Tx interface {
	// LockSlot serialises bookings for one instant until the transaction ends.
	LockSlot(ctx context.Context, slot reservation.Slot) error
	Reads() CommandReads
	Customers() CustomerRepository
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	DB() dbq.DBTX
}

// CommandReads are reads bound to the surrounding transaction.
type CommandReads interface {
	OpenTables(ctx context.Context, partySize int, slot reservation.Slot) ([]*table.Table, error)
}

type CustomerRepository interface {
	FindOrCreate(ctx context.Context, tx dbq.DBTX, contact customer.Contact) (*customer.Customer, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx dbq.DBTX, res *reservation.Reservation) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx dbq.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimPending(ctx context.Context, tx dbq.DBTX, now time.Time, limit int32) ([]*NotificationJob, error)
	MarkSent(ctx context.Context, tx dbq.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx dbq.DBTX, jobID uuid.UUID, lastError string, retryAt *time.Time) error
}
