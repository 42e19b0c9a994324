package table

import "errors"

var ErrEmptyCatalog = errors.New("table catalog is empty")

// Group describes Count identical tables of the given size.
type Group struct {
	Seats int `yaml:"seats"`
	Count int `yaml:"count"`
}

type Catalog struct {
	Groups []Group `yaml:"tables"`
}

// Expand lists one capacity per physical table, preserving group order.
func (c Catalog) Expand() ([]int, error) {
	var capacities []int
	for _, g := range c.Groups {
		if g.Seats < 1 || g.Seats > SeatLimit {
			return nil, ErrInvalidSeats
		}
		for range g.Count {
			capacities = append(capacities, g.Seats)
		}
	}
	if len(capacities) == 0 {
		return nil, ErrEmptyCatalog
	}
	return capacities, nil
}
