//go:build unit

package seed_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/infra/seed"
	"reservation-book/internal/usecase/shared"
	sharedmock "reservation-book/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type MockTableSeedQueries struct {
	mock.Mock
}

func (m *MockTableSeedQueries) CountTables(ctx context.Context, db dbq.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTableSeedQueries) CreateTable(ctx context.Context, db dbq.DBTX, seats int32) (dbq.Table, error) {
	args := m.Called(ctx, db, seats)
	return args.Get(0).(dbq.Table), args.Error(1)
}

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    []int
		wantErr error
	}{
		{
			name: "groups expand in order",
			yaml: "tables:\n  - seats: 2\n    count: 2\n  - seats: 6\n    count: 1\n",
			want: []int{2, 2, 6},
		},
		{
			name:    "empty catalog",
			yaml:    "tables: []\n",
			wantErr: table.ErrEmptyCatalog,
		},
		{
			name:    "zero seats",
			yaml:    "tables:\n  - seats: 0\n    count: 1\n",
			wantErr: table.ErrInvalidSeats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := seed.ParseCatalog([]byte(tt.yaml))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := catalog.Expand()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := seed.ParseCatalog([]byte("tables:\n  - seats: 2\n    cnt: 1\n"))
		assert.Error(t, err)
	})
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables:\n  - seats: 4\n    count: 3\n"), 0o600))

	catalog, err := seed.LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []table.Group{{Seats: 4, Count: 3}}, catalog.Groups)

	_, err = seed.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func newSeeder(t *testing.T, q seed.TableSeedQueries) *seed.Seeder {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		})
	tx.EXPECT().DB().Return(nil).AnyTimes()
	return seed.NewSeeder(uow, q, slog.New(slog.DiscardHandler))
}

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	catalog := table.Catalog{Groups: []table.Group{{Seats: 2, Count: 2}, {Seats: 8, Count: 1}}}

	t.Run("empty dining room gets every table", func(t *testing.T) {
		q := new(MockTableSeedQueries)
		q.On("CountTables", mock.Anything, nil).Return(int64(0), nil)
		q.On("CreateTable", mock.Anything, nil, int32(2)).Return(dbq.Table{}, nil).Twice()
		q.On("CreateTable", mock.Anything, nil, int32(8)).Return(dbq.Table{}, nil).Once()

		created, err := newSeeder(t, q).Seed(ctx, catalog)

		require.NoError(t, err)
		assert.Equal(t, 3, created)
		q.AssertExpectations(t)
	})

	t.Run("existing tables are left alone", func(t *testing.T) {
		q := new(MockTableSeedQueries)
		q.On("CountTables", mock.Anything, nil).Return(int64(13), nil)

		created, err := newSeeder(t, q).Seed(ctx, catalog)

		require.NoError(t, err)
		assert.Zero(t, created)
		q.AssertNotCalled(t, "CreateTable", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insert failure aborts", func(t *testing.T) {
		q := new(MockTableSeedQueries)
		q.On("CountTables", mock.Anything, nil).Return(int64(0), nil)
		q.On("CreateTable", mock.Anything, nil, mock.Anything).Return(dbq.Table{}, assert.AnError)

		created, err := newSeeder(t, q).Seed(ctx, catalog)

		require.Error(t, err)
		assert.Zero(t, created)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
