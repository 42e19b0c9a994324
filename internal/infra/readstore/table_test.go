//go:build unit

package readstore

import (
	"context"
	"math"
	"testing"

	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra"
	"reservation-book/internal/infra/dbq"
	"reservation-book/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTableReadQueries struct {
	mock.Mock
}

func (m *MockTableReadQueries) ListTables(ctx context.Context, db dbq.DBTX) ([]dbq.Table, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]dbq.Table), args.Error(1)
}

func (m *MockTableReadQueries) OpenTables(ctx context.Context, db dbq.DBTX, arg dbq.OpenTablesParams) ([]dbq.Table, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]dbq.Table), args.Error(1)
}

func (m *MockTableReadQueries) MaxTableSeats(ctx context.Context, db dbq.DBTX) (int32, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int32), args.Error(1)
}

func TestTableReadStore_OpenTables(t *testing.T) {
	ctx := context.Background()
	slot := reservation.NewSlot(builder.NewReservationBuilder().DateTime)

	t.Run("converts rows in query order", func(t *testing.T) {
		q := new(MockTableReadQueries)
		store := NewTableReadStore(q, nil)

		q.On("OpenTables", ctx, nil, mock.MatchedBy(func(arg dbq.OpenTablesParams) bool {
			return arg.PartySize == 5 && arg.Datetime.Time.Equal(slot.Time())
		})).Return(builder.TableRows(6, 8), nil)

		tables, err := store.OpenTables(ctx, nil, 5, slot)

		require.NoError(t, err)
		require.Len(t, tables, 2)
		assert.Equal(t, 6, tables[0].Seats())
		assert.Equal(t, int64(2), tables[1].ID())
		q.AssertExpectations(t)
	})

	t.Run("party at the seat limit reaches SQL unchanged", func(t *testing.T) {
		q := new(MockTableReadQueries)
		store := NewTableReadStore(q, nil)

		q.On("OpenTables", ctx, nil, mock.MatchedBy(func(arg dbq.OpenTablesParams) bool {
			return arg.PartySize == math.MaxInt32
		})).Return([]dbq.Table{}, nil)

		tables, err := store.OpenTables(ctx, nil, table.SeatLimit, slot)

		require.NoError(t, err)
		assert.Empty(t, tables)
		q.AssertExpectations(t)
	})

	t.Run("party beyond the seat limit matches nothing without narrowing", func(t *testing.T) {
		for _, partySize := range []int{4294967298, 3_000_000_000, table.SeatLimit + 1} {
			q := new(MockTableReadQueries)
			store := NewTableReadStore(q, nil)

			tables, err := store.OpenTables(ctx, nil, partySize, slot)

			require.NoError(t, err)
			assert.Empty(t, tables, "party of %d", partySize)
			q.AssertNotCalled(t, "OpenTables", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("query failure is a repository error", func(t *testing.T) {
		q := new(MockTableReadQueries)
		store := NewTableReadStore(q, nil)

		q.On("OpenTables", ctx, nil, mock.Anything).Return([]dbq.Table(nil), assert.AnError)

		_, err := store.OpenTables(ctx, nil, 2, slot)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestTableReadStore_ListAndMax(t *testing.T) {
	ctx := context.Background()
	q := new(MockTableReadQueries)
	store := NewTableReadStore(q, nil)

	q.On("ListTables", ctx, nil).Return(builder.TableRows(2, 4), nil)
	q.On("MaxTableSeats", ctx, nil).Return(int32(4), nil)

	views, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].ID)
	assert.Equal(t, 2, views[0].Seats)
	assert.True(t, views[1].CreatedAt.Equal(builder.FixedNow))

	maxSeats, err := store.MaxSeats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, maxSeats)
}
