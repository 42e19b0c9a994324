package response

import (
	"time"

	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/pkg/phone"
	"reservation-book/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Presenter renders times and phone numbers for the front desk.
type Presenter struct {
	Location *time.Location
	Region   string
}

func (p Presenter) when(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return reservation.NewSlot(t).Format(p.Location)
}

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	DateTime     time.Time `json:"datetime"`
	When         string    `json:"when"`
	PartySize    int       `json:"party_size"`
	TableID      int64     `json:"table_id"`
	TableSeats   int       `json:"table_seats"`
	CustomerID   uuid.UUID `json:"customer_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phone_display"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p Presenter) FromReservationView(v *queries.ReservationView) (ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return ReservationResponse{}, err
	}
	resp.When = p.when(v.DateTime)
	resp.PhoneDisplay = phone.Display(v.Phone, p.Region)
	return resp, nil
}

func (p Presenter) FromReservationViews(views []*queries.ReservationView) ([]ReservationResponse, error) {
	out := make([]ReservationResponse, 0, len(views))
	for _, v := range views {
		resp, err := p.FromReservationView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (p Presenter) FromReservation(r *reservation.Reservation) ReservationResponse {
	contact := r.Contact()
	return ReservationResponse{
		ID:           r.ID(),
		DateTime:     r.DateTime(),
		When:         p.when(r.DateTime()),
		PartySize:    r.PartySize(),
		TableID:      r.TableID(),
		TableSeats:   r.TableSeats(),
		CustomerID:   r.CustomerID(),
		FirstName:    contact.FirstName,
		LastName:     contact.LastName,
		Phone:        contact.Phone,
		PhoneDisplay: phone.Display(contact.Phone, p.Region),
		Email:        contact.Email,
		CreatedAt:    r.CreatedAt(),
	}
}

type BookingResponse struct {
	Message     string              `json:"message"`
	Reservation ReservationResponse `json:"reservation"`
}

// FormEcho is a rejected form rendered back for correction.
type FormEcho struct {
	When      string `json:"datetime"`
	PartySize int    `json:"party_size"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (p Presenter) EchoForm(f reservation.Form) (FormEcho, error) {
	var echo FormEcho
	if err := copier.Copy(&echo, &f); err != nil {
		return FormEcho{}, err
	}
	echo.When = p.when(f.DateTime)
	if f.Phone != "" {
		echo.Phone = phone.Display(f.Phone, p.Region)
	}
	return echo, nil
}

type RejectionDetail struct {
	Form     FormEcho            `json:"form"`
	Errors   map[string][]string `json:"errors,omitempty"`
	Messages []string            `json:"messages,omitempty"`
}
