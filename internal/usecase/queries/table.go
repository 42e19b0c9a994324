package queries

import (
	"context"
	"fmt"
)

type TableQueries interface {
	List(ctx context.Context) ([]*TableView, error)
	// MaxTableSize is the largest party any single table can seat, 0 without tables.
	MaxTableSize(ctx context.Context) (int, error)
	PartySizeChoices(ctx context.Context) ([]PartySizeChoice, error)
}

type TableReadStore interface {
	List(ctx context.Context) ([]*TableView, error)
	MaxSeats(ctx context.Context) (int, error)
}

type tableQueriesImpl struct {
	store TableReadStore
}

func NewTableQueries(store TableReadStore) TableQueries {
	return &tableQueriesImpl{store: store}
}

func (q *tableQueriesImpl) List(ctx context.Context) ([]*TableView, error) {
	return q.store.List(ctx)
}

func (q *tableQueriesImpl) MaxTableSize(ctx context.Context) (int, error) {
	return q.store.MaxSeats(ctx)
}

func (q *tableQueriesImpl) PartySizeChoices(ctx context.Context) ([]PartySizeChoice, error) {
	maxSize, err := q.store.MaxSeats(ctx)
	if err != nil {
		return nil, err
	}
	return PartySizeChoicesUpTo(maxSize), nil
}

// PartySizeChoicesUpTo labels every party size from 1 to maxSize.
func PartySizeChoicesUpTo(maxSize int) []PartySizeChoice {
	choices := make([]PartySizeChoice, 0, max(maxSize, 0))
	for n := 1; n <= maxSize; n++ {
		label := fmt.Sprintf("%d people", n)
		if n == 1 {
			label = "1 person"
		}
		choices = append(choices, PartySizeChoice{Label: label, Value: n})
	}
	return choices
}
