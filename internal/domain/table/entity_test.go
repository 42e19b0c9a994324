//go:build unit

package table_test

import (
	"testing"
	"time"

	"reservation-book/internal/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid seats", func(t *testing.T) {
		tbl, err := table.New(4)
		require.NoError(t, err)
		assert.Equal(t, 4, tbl.Seats())
	})

	t.Run("zero seats rejected", func(t *testing.T) {
		_, err := table.New(0)
		assert.ErrorIs(t, err, table.ErrInvalidSeats)
	})
}

func TestCanSeat(t *testing.T) {
	tbl := table.Reconstruct(1, 4, time.Now())

	assert.True(t, tbl.CanSeat(1))
	assert.True(t, tbl.CanSeat(4))
	assert.False(t, tbl.CanSeat(5))
	assert.False(t, tbl.CanSeat(0))
}

func TestMaxSeats(t *testing.T) {
	assert.Equal(t, 0, table.MaxSeats(nil))

	tables := []*table.Table{
		table.Reconstruct(1, 2, time.Time{}),
		table.Reconstruct(2, 8, time.Time{}),
		table.Reconstruct(3, 6, time.Time{}),
	}
	assert.Equal(t, 8, table.MaxSeats(tables))
}

func TestCatalogExpand(t *testing.T) {
	t.Run("front desk layout", func(t *testing.T) {
		catalog := table.Catalog{Groups: []table.Group{
			{Seats: 2, Count: 3},
			{Seats: 4, Count: 5},
			{Seats: 6, Count: 3},
			{Seats: 8, Count: 2},
		}}

		capacities, err := catalog.Expand()
		require.NoError(t, err)
		assert.Len(t, capacities, 13)
		assert.Equal(t, []int{2, 2, 2}, capacities[:3])
		assert.Equal(t, []int{8, 8}, capacities[11:])
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := table.Catalog{}.Expand()
		assert.ErrorIs(t, err, table.ErrEmptyCatalog)
	})

	t.Run("group beyond the seat limit", func(t *testing.T) {
		_, err := table.Catalog{Groups: []table.Group{{Seats: table.SeatLimit + 1, Count: 1}}}.Expand()
		assert.ErrorIs(t, err, table.ErrInvalidSeats)
	})

	t.Run("invalid group", func(t *testing.T) {
		_, err := table.Catalog{Groups: []table.Group{{Seats: 0, Count: 1}}}.Expand()
		assert.ErrorIs(t, err, table.ErrInvalidSeats)
	})
}
