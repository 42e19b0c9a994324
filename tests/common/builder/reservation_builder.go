//go:build unit || e2e

package builder

import (
	"time"

	"reservation-book/internal/domain/customer"
	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/domain/table"
	reqdto "reservation-book/internal/handler/dto/request"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/pgconv"
	"reservation-book/internal/usecase/queries"

	"github.com/google/uuid"
)

// FixedNow is the clock reading unit tests book against.
var FixedNow = time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	DateTime  time.Time
	PartySize int
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		DateTime:  FixedNow.AddDate(0, 0, 7).Add(7 * time.Hour),
		PartySize: 4,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "+13125551212",
		Email:     "ada@example.com",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildForm() reservation.Form {
	return reservation.Form{
		DateTime:  r.DateTime,
		PartySize: r.PartySize,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		DateTime:  r.DateTime.Format(time.RFC3339),
		PartySize: reqdto.FlexibleInt(r.PartySize),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

func (r *ReservationBuilder) BuildCustomer() *customer.Customer {
	cust, err := customer.New(r.BuildForm().Contact())
	if err != nil {
		panic(err)
	}
	return cust
}

func (r *ReservationBuilder) BuildDomain(tbl *table.Table) *reservation.Reservation {
	form := r.BuildForm()
	res, err := reservation.New(form.Slot(), form.PartySize, tbl, r.BuildCustomer(), FixedNow)
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ReservationBuilder) BuildView(tableID int64, seats int) *queries.ReservationView {
	contact := r.BuildForm().Contact()
	return &queries.ReservationView{
		ID:         uuid.New(),
		DateTime:   r.DateTime.UTC(),
		PartySize:  r.PartySize,
		TableID:    tableID,
		TableSeats: seats,
		CustomerID: uuid.New(),
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
		Phone:      contact.Phone,
		Email:      contact.Email,
		CreatedAt:  FixedNow,
	}
}

func (r *ReservationBuilder) BuildUpcomingRow(tableID int64, seats int) dbq.ListUpcomingReservationsRow {
	contact := r.BuildForm().Contact()
	return dbq.ListUpcomingReservationsRow{
		ID:         pgconv.UUIDToPgtype(uuid.New()),
		Datetime:   pgconv.TimeToPgtype(r.DateTime),
		PartySize:  int32(r.PartySize),
		TableID:    tableID,
		TableSeats: int32(seats),
		CustomerID: pgconv.UUIDToPgtype(uuid.New()),
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
		Phone:      contact.Phone,
		Email:      contact.Email,
		CreatedAt:  pgconv.TimeToPgtype(FixedNow),
	}
}

func (r *ReservationBuilder) BuildCustomerRow() dbq.Customer {
	contact := r.BuildForm().Contact()
	return dbq.Customer{
		ID:        pgconv.UUIDToPgtype(uuid.New()),
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Phone:     contact.Phone,
		Email:     contact.Email,
		CreatedAt: pgconv.TimeToPgtype(FixedNow),
	}
}
