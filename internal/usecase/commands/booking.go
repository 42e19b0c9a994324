package commands

import (
	"context"
	"log/slog"
	"time"

	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/infra"
	"reservation-book/internal/pkg/clock"
	"reservation-book/internal/pkg/config"
	"reservation-book/internal/pkg/errs"
	"reservation-book/internal/usecase/shared"
)

var (
	// ErrBookingFailed marks every infrastructure failure of a booking attempt.
	ErrBookingFailed = errs.New("booking failed")
	// ErrSlotContended means every attempt lost the race for the chosen table.
	ErrSlotContended = errs.New("reservation slot stayed contended")
)

type BookingCommands interface {
	// MakeReservation returns exactly one outcome, or an error when the store could not decide.
	MakeReservation(ctx context.Context, form reservation.Form) (reservation.Outcome, error)
}

type bookingCommandsImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	recorder        OutcomeRecorder
	invalidator     ListingInvalidator
	timeout         time.Duration
	conflictRetries int
	logger          *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	recorder OutcomeRecorder,
	invalidator ListingInvalidator,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	retries := cfg.Booking.ConflictRetries
	if retries < 1 {
		retries = 1
	}
	return &bookingCommandsImpl{
		uow:             uow,
		clock:           clk,
		recorder:        recorder,
		invalidator:     invalidator,
		timeout:         cfg.Booking.Timeout,
		conflictRetries: retries,
		logger:          logger,
	}
}

func (b *bookingCommandsImpl) MakeReservation(ctx context.Context, form reservation.Form) (reservation.Outcome, error) {
	started := time.Now()
	now := b.clock.Now()

	if problems := form.Validate(now); !problems.Empty() {
		outcome := reservation.FailedValidation{Form: form, Problems: problems}
		b.recorder.ObserveOutcome(outcome.Kind(), time.Since(started))
		b.logger.Info("booking rejected", "fields", problems.Fields())
		return outcome, nil
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	outcome, err := b.bookWithConflictRetry(ctx, form, now)
	if err != nil {
		b.recorder.ObserveFailure(time.Since(started))
		b.logger.Error("booking failed",
			"party_size", form.PartySize,
			"datetime", form.Slot().Time(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	if booked, ok := outcome.(reservation.SuccessfulBooking); ok {
		if invErr := b.invalidator.Invalidate(ctx); invErr != nil {
			b.logger.Warn("failed to invalidate upcoming reservations cache", "error", invErr.Error())
		}
		b.logger.Info("reservation booked",
			"reservation_id", booked.Reservation.ID().String(),
			"table_id", booked.Reservation.TableID(),
			"party_size", booked.Reservation.PartySize(),
			"datetime", booked.Reservation.DateTime())
	} else {
		b.logger.Info("no table available",
			"party_size", form.PartySize,
			"datetime", form.Slot().Time())
	}

	b.recorder.ObserveOutcome(outcome.Kind(), time.Since(started))
	return outcome, nil
}

// bookWithConflictRetry re-runs the whole unit when the insert loses a race for the table,
// so availability is evaluated again against the committed state.
func (b *bookingCommandsImpl) bookWithConflictRetry(ctx context.Context, form reservation.Form, now time.Time) (reservation.Outcome, error) {
	var lastErr error
	for attempt := 1; attempt <= b.conflictRetries; attempt++ {
		outcome, err := b.book(ctx, form, now)
		if err == nil {
			return outcome, nil
		}
		if !isSlotConflict(err) {
			return nil, err
		}
		lastErr = err
		b.recorder.ConflictRetried()
		b.logger.Warn("reservation slot taken concurrently, re-evaluating availability",
			"attempt", attempt,
			"datetime", form.Slot().Time())
	}
	return nil, errs.Mark(lastErr, ErrSlotContended)
}

func (b *bookingCommandsImpl) book(ctx context.Context, form reservation.Form, now time.Time) (reservation.Outcome, error) {
	var outcome reservation.Outcome
	slot := form.Slot()

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome = nil

		if err := tx.LockSlot(ctx, slot); err != nil {
			return err
		}

		open, err := tx.Reads().OpenTables(ctx, form.PartySize, slot)
		if err != nil {
			return err
		}
		if len(open) == 0 {
			outcome = reservation.NoAvailability{Form: form}
			return nil
		}

		cust, err := tx.Customers().FindOrCreate(ctx, tx.DB(), form.Contact())
		if err != nil {
			return err
		}

		res, err := reservation.New(slot, form.PartySize, open[0], cust, now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}

		payload, err := shared.NewBookedEvent(res).Marshal()
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.JobKindEvent, shared.TopicReservationBooked, payload, now); err != nil {
			return err
		}

		outcome = reservation.SuccessfulBooking{Reservation: res}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func isSlotConflict(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey) && infra.IsConstraint(err, infra.ConstraintReservationSlot)
}
