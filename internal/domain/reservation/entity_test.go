//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"reservation-book/internal/domain/customer"
	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/domain/table"
	"reservation-book/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := builder.FixedNow
	b := builder.NewReservationBuilder()
	cust, err := customer.New(b.BuildForm().Contact())
	require.NoError(t, err)
	fourTop := table.Reconstruct(7, 4, now)

	t.Run("books the table", func(t *testing.T) {
		res, err := reservation.New(b.BuildForm().Slot(), 4, fourTop, cust, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, int64(7), res.TableID())
		assert.Equal(t, 4, res.TableSeats())
		assert.Equal(t, cust.ID(), res.CustomerID())
		assert.Equal(t, time.UTC, res.DateTime().Location())
		assert.True(t, res.DateTime().Equal(b.DateTime))
	})

	tests := []struct {
		name      string
		slot      reservation.Slot
		partySize int
		tbl       *table.Table
		cust      *customer.Customer
		errIs     error
	}{
		{name: "party larger than table", slot: b.BuildForm().Slot(), partySize: 5, tbl: fourTop, cust: cust, errIs: reservation.ErrOverCapacity},
		{name: "no table", slot: b.BuildForm().Slot(), partySize: 2, tbl: nil, cust: cust, errIs: reservation.ErrOverCapacity},
		{name: "empty party", slot: b.BuildForm().Slot(), partySize: 0, tbl: fourTop, cust: cust, errIs: reservation.ErrInvalidPartySize},
		{name: "no customer", slot: b.BuildForm().Slot(), partySize: 2, tbl: fourTop, cust: nil, errIs: reservation.ErrMissingCustomer},
		{name: "slot in the past", slot: reservation.NewSlot(now.Add(-time.Minute)), partySize: 2, tbl: fourTop, cust: cust, errIs: reservation.ErrSlotInPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reservation.New(tt.slot, tt.partySize, tt.tbl, tt.cust, now)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestSlot(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	local := time.Date(2026, 8, 26, 19, 0, 0, 0, chicago)
	slot := reservation.NewSlot(local)

	assert.Equal(t, time.UTC, slot.Time().Location())
	assert.True(t, slot.Equal(reservation.NewSlot(local.UTC())))
	assert.False(t, slot.Equal(reservation.NewSlot(local.Add(time.Minute))))
	assert.Equal(t, local.Unix(), slot.LockKey())
	assert.Equal(t, "Wed, Aug 26, 7:00 PM", slot.Format(chicago))
	assert.Equal(t, "Thu, Aug 27, 12:00 AM", slot.Format(nil))
}

func TestMessages(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.DateTime = time.Date(2030, 8, 26, 19, 0, 0, 0, chicago)
		b.PartySize = 6
	})

	assert.Equal(t,
		"No tables that can seat a party of 6 are available on Mon, Aug 26, 7:00 PM.",
		reservation.NoAvailabilityMessage(b.BuildForm(), chicago))

	res := b.BuildDomain(table.Reconstruct(1, 6, builder.FixedNow))
	assert.Equal(t,
		"Your reservation for a party of 6 on Mon, Aug 26, 7:00 PM has been confirmed.",
		reservation.ConfirmationMessage(res, chicago))
}
