//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"reservation-book/internal/usecase/queries"
	queriesmock "reservation-book/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPartySizeChoicesUpTo(t *testing.T) {
	tests := []struct {
		name    string
		maxSize int
		want    []queries.PartySizeChoice
	}{
		{name: "no tables", maxSize: 0, want: []queries.PartySizeChoice{}},
		{name: "negative", maxSize: -2, want: []queries.PartySizeChoice{}},
		{
			name:    "up to three",
			maxSize: 3,
			want: []queries.PartySizeChoice{
				{Label: "1 person", Value: 1},
				{Label: "2 people", Value: 2},
				{Label: "3 people", Value: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queries.PartySizeChoicesUpTo(tt.maxSize))
		})
	}
}

func TestTableQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("party sizes follow the largest table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTableReadStore(ctrl)
		q := queries.NewTableQueries(store)

		store.EXPECT().MaxSeats(ctx).Return(8, nil)

		choices, err := q.PartySizeChoices(ctx)
		require.NoError(t, err)
		require.Len(t, choices, 8)
		assert.Equal(t, queries.PartySizeChoice{Label: "8 people", Value: 8}, choices[7])
	})

	t.Run("max table size passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTableReadStore(ctrl)
		q := queries.NewTableQueries(store)

		store.EXPECT().MaxSeats(ctx).Return(6, nil)

		got, err := q.MaxTableSize(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	t.Run("list errors surface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTableReadStore(ctrl)
		q := queries.NewTableQueries(store)

		store.EXPECT().List(ctx).Return(nil, errors.New("down"))

		_, err := q.List(ctx)
		assert.Error(t, err)
	})

	t.Run("party sizes fail with the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTableReadStore(ctrl)
		q := queries.NewTableQueries(store)

		store.EXPECT().MaxSeats(ctx).Return(0, errors.New("down"))

		_, err := q.PartySizeChoices(ctx)
		assert.Error(t, err)
	})
}
