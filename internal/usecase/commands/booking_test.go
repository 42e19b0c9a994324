//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/clock"
	"reservation-book/internal/pkg/config"
	"reservation-book/internal/pkg/errs"
	"reservation-book/internal/usecase/commands"
	"reservation-book/internal/usecase/shared"
	"reservation-book/tests/common/builder"
	commandsmock "reservation-book/tests/mock/commands"
	sharedmock "reservation-book/tests/mock/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	customers     *sharedmock.MockCustomerRepository
	reservations  *sharedmock.MockReservationRepository
	notifications *sharedmock.MockNotificationRepository
	recorder      *commandsmock.MockOutcomeRecorder
	invalidator   *commandsmock.MockListingInvalidator
	commands      commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.customers = sharedmock.NewMockCustomerRepository(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.recorder = commandsmock.NewMockOutcomeRecorder(s.ctrl)
	s.invalidator = commandsmock.NewMockListingInvalidator(s.ctrl)

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Customers().Return(s.customers).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewBookingCommands(
		s.uow,
		clock.NewMockClock(builder.FixedNow),
		s.recorder,
		s.invalidator,
		config.NewTestConfig(),
		logger,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// runUnit makes Within execute the callback against the mocked transaction.
func (s *BookingCommandsTestSuite) runUnit() *gomock.Call {
	return s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func slotConflict() error {
	return infra.WrapRepoErr("failed to create reservation", &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: infra.ConstraintReservationSlot,
	})
}

func (s *BookingCommandsTestSuite) TestMakeReservation_InvalidFormNeverTouchesStore() {
	form := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.PartySize = 0
		b.Email = ""
	}).BuildForm()

	s.recorder.EXPECT().ObserveOutcome(reservation.KindFailedValidation, gomock.Any())

	outcome, err := s.commands.MakeReservation(context.Background(), form)

	s.Require().NoError(err)
	failed, ok := outcome.(reservation.FailedValidation)
	s.Require().True(ok)
	s.Equal([]string{reservation.FieldPartySize, reservation.FieldEmail}, failed.Problems.Fields())
	s.Equal(form, failed.Form)
}

func (s *BookingCommandsTestSuite) TestMakeReservation_OversizedPartyIsAValidationFailure() {
	form := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.PartySize = 4294967298
	}).BuildForm()

	s.recorder.EXPECT().ObserveOutcome(reservation.KindFailedValidation, gomock.Any())

	outcome, err := s.commands.MakeReservation(context.Background(), form)

	s.Require().NoError(err)
	failed, ok := outcome.(reservation.FailedValidation)
	s.Require().True(ok)
	s.Equal([]string{reservation.MsgPartyTooLarge}, failed.Problems[reservation.FieldPartySize])
}

func (s *BookingCommandsTestSuite) TestMakeReservation_BooksSmallestOpenTable() {
	b := builder.NewReservationBuilder()
	form := b.BuildForm()
	cust := b.BuildCustomer()

	var created *reservation.Reservation
	var payload []byte

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			_, hasDeadline := ctx.Deadline()
			s.True(hasDeadline, "booking must run under the booking timeout")
			return fn(ctx, s.tx)
		})
	s.tx.EXPECT().LockSlot(gomock.Any(), form.Slot()).Return(nil)
	s.reads.EXPECT().OpenTables(gomock.Any(), form.PartySize, form.Slot()).Return(builder.Tables(4, 6), nil)
	s.customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), form.Contact()).Return(cust, nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ dbq.DBTX, res *reservation.Reservation) error {
			created = res
			return nil
		})
	s.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), shared.JobKindEvent, shared.TopicReservationBooked, gomock.Any(), builder.FixedNow).
		DoAndReturn(func(_ context.Context, _ dbq.DBTX, _, _ string, p []byte, _ time.Time) error {
			payload = p
			return nil
		})
	s.invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil)
	s.recorder.EXPECT().ObserveOutcome(reservation.KindSuccessfulBooking, gomock.Any())

	outcome, err := s.commands.MakeReservation(context.Background(), form)

	s.Require().NoError(err)
	booked, ok := outcome.(reservation.SuccessfulBooking)
	s.Require().True(ok)
	s.Same(created, booked.Reservation)
	s.Equal(int64(1), booked.Reservation.TableID())
	s.Equal(4, booked.Reservation.TableSeats())
	s.Equal(cust.ID(), booked.Reservation.CustomerID())

	var event shared.BookedEvent
	s.Require().NoError(json.Unmarshal(payload, &event))
	s.Equal(booked.Reservation.ID(), event.ReservationID)
	s.Equal(form.PartySize, event.PartySize)
}

func (s *BookingCommandsTestSuite) TestMakeReservation_NoOpenTable() {
	form := builder.NewReservationBuilder().BuildForm()

	s.runUnit()
	s.tx.EXPECT().LockSlot(gomock.Any(), form.Slot()).Return(nil)
	s.reads.EXPECT().OpenTables(gomock.Any(), form.PartySize, form.Slot()).Return([]*table.Table{}, nil)
	s.recorder.EXPECT().ObserveOutcome(reservation.KindNoAvailability, gomock.Any())

	outcome, err := s.commands.MakeReservation(context.Background(), form)

	s.Require().NoError(err)
	none, ok := outcome.(reservation.NoAvailability)
	s.Require().True(ok)
	s.Equal(form, none.Form)
}

func (s *BookingCommandsTestSuite) TestMakeReservation_SlotConflictReevaluatesAvailability() {
	b := builder.NewReservationBuilder()
	form := b.BuildForm()

	gomock.InOrder(
		s.runUnit(),
		s.runUnit(),
	)
	s.tx.EXPECT().LockSlot(gomock.Any(), form.Slot()).Return(nil).Times(2)
	gomock.InOrder(
		s.reads.EXPECT().OpenTables(gomock.Any(), form.PartySize, form.Slot()).Return(builder.Tables(4), nil),
		s.reads.EXPECT().OpenTables(gomock.Any(), form.PartySize, form.Slot()).Return(nil, nil),
	)
	s.customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(b.BuildCustomer(), nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(slotConflict())
	s.recorder.EXPECT().ConflictRetried()
	s.recorder.EXPECT().ObserveOutcome(reservation.KindNoAvailability, gomock.Any())

	outcome, err := s.commands.MakeReservation(context.Background(), form)

	s.Require().NoError(err)
	s.Equal(reservation.KindNoAvailability, outcome.Kind())
}

func (s *BookingCommandsTestSuite) TestMakeReservation_SlotStaysContended() {
	b := builder.NewReservationBuilder()
	form := b.BuildForm()
	attempts := config.NewTestConfig().Booking.ConflictRetries

	s.runUnit().Times(attempts)
	s.tx.EXPECT().LockSlot(gomock.Any(), gomock.Any()).Return(nil).Times(attempts)
	s.reads.EXPECT().OpenTables(gomock.Any(), gomock.Any(), gomock.Any()).Return(builder.Tables(4), nil).Times(attempts)
	s.customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(b.BuildCustomer(), nil).Times(attempts)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(slotConflict()).Times(attempts)
	s.recorder.EXPECT().ConflictRetried().Times(attempts)
	s.recorder.EXPECT().ObserveFailure(gomock.Any())

	outcome, err := s.commands.MakeReservation(context.Background(), form)

	s.Nil(outcome)
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrSlotContended))
	s.True(errs.Is(err, commands.ErrBookingFailed))
}

func (s *BookingCommandsTestSuite) TestMakeReservation_InfrastructureFailure() {
	form := builder.NewReservationBuilder().BuildForm()
	lockErr := infra.WrapRepoErr("failed to acquire slot lock", &pgconn.PgError{Code: "55P03"})

	s.runUnit()
	s.tx.EXPECT().LockSlot(gomock.Any(), form.Slot()).Return(lockErr)
	s.recorder.EXPECT().ObserveFailure(gomock.Any())

	outcome, err := s.commands.MakeReservation(context.Background(), form)

	s.Nil(outcome)
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrBookingFailed))
	s.False(errs.Is(err, commands.ErrSlotContended))
	s.True(infra.IsKind(err, infra.KindLockTimeout))
}

func (s *BookingCommandsTestSuite) TestMakeReservation_CacheInvalidationFailureIsNotFatal() {
	b := builder.NewReservationBuilder()
	form := b.BuildForm()

	s.runUnit()
	s.tx.EXPECT().LockSlot(gomock.Any(), gomock.Any()).Return(nil)
	s.reads.EXPECT().OpenTables(gomock.Any(), gomock.Any(), gomock.Any()).Return(builder.Tables(8), nil)
	s.customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(b.BuildCustomer(), nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.invalidator.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis: connection refused"))
	s.recorder.EXPECT().ObserveOutcome(reservation.KindSuccessfulBooking, gomock.Any())

	outcome, err := s.commands.MakeReservation(context.Background(), form)

	s.Require().NoError(err)
	s.Equal(reservation.KindSuccessfulBooking, outcome.Kind())
}

func TestNopPorts(t *testing.T) {
	var rec commands.OutcomeRecorder = commands.NopRecorder{}
	rec.ObserveOutcome(reservation.KindNoAvailability, time.Millisecond)
	rec.ObserveFailure(time.Millisecond)
	rec.ConflictRetried()

	var inv commands.ListingInvalidator = commands.NopInvalidator{}
	require.NoError(t, inv.Invalidate(context.Background()))
	assert.NotNil(t, rec)
}
