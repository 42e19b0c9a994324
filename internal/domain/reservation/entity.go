package reservation

import (
	"errors"
	"time"

	"reservation-book/internal/domain/customer"
	"reservation-book/internal/domain/table"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartySize = errors.New("party size must be at least 1")
	ErrOverCapacity     = errors.New("party does not fit at table")
	ErrSlotInPast       = errors.New("reservation slot is not in the future")
	ErrMissingCustomer  = errors.New("reservation requires a customer")
)

type Reservation struct {
	id         uuid.UUID
	slot       Slot
	partySize  int
	tableID    int64
	tableSeats int
	customerID uuid.UUID
	contact    customer.Contact
	createdAt  time.Time
}

// New books tbl for the party. Capacity is re-checked here even though the availability
// query already filters on it.
func New(slot Slot, partySize int, tbl *table.Table, cust *customer.Customer, now time.Time) (*Reservation, error) {
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}
	if tbl == nil || !tbl.CanSeat(partySize) {
		return nil, ErrOverCapacity
	}
	if cust == nil {
		return nil, ErrMissingCustomer
	}
	if !slot.After(now) {
		return nil, ErrSlotInPast
	}

	return &Reservation{
		id:         uuid.New(),
		slot:       slot,
		partySize:  partySize,
		tableID:    tbl.ID(),
		tableSeats: tbl.Seats(),
		customerID: cust.ID(),
		contact:    cust.Contact(),
		createdAt:  now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	slot Slot,
	partySize int,
	tableID int64,
	tableSeats int,
	customerID uuid.UUID,
	contact customer.Contact,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		slot:       slot,
		partySize:  partySize,
		tableID:    tableID,
		tableSeats: tableSeats,
		customerID: customerID,
		contact:    contact,
		createdAt:  createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) Slot() Slot                { return r.slot }
func (r *Reservation) DateTime() time.Time       { return r.slot.Time() }
func (r *Reservation) PartySize() int            { return r.partySize }
func (r *Reservation) TableID() int64            { return r.tableID }
func (r *Reservation) TableSeats() int           { return r.tableSeats }
func (r *Reservation) CustomerID() uuid.UUID     { return r.customerID }
func (r *Reservation) Contact() customer.Contact { return r.contact }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
