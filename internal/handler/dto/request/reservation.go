package request

import (
	"strconv"
	"strings"
	"time"

	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/pkg/phone"
)

// datetimeLayouts are tried in order. Layouts without an offset are read in the restaurant zone.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 3:04 PM",
	"01/02/2006 15:04",
}

// No binding tags: missing fields must reach form validation, not fail the bind.
type CreateReservationRequest struct {
	DateTime  string      `json:"datetime" example:"2026-08-26T19:00"`
	PartySize FlexibleInt `json:"party_size" swaggertype:"integer" example:"4"`
	FirstName string      `json:"first_name" example:"Ada"`
	LastName  string      `json:"last_name" example:"Lovelace"`
	Phone     string      `json:"phone" example:"312-555-1212"`
	Email     string      `json:"email" example:"ada@example.com"`
}

// ToForm parses the raw request. Unparseable values become zero values so that validation
// reports them against the right field.
func (r CreateReservationRequest) ToForm(loc *time.Location, region string) reservation.Form {
	return reservation.Form{
		DateTime:  ParseDateTime(r.DateTime, loc),
		PartySize: int(r.PartySize),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     normalizePhone(r.Phone, region),
		Email:     r.Email,
	}
}

// ParseDateTime returns the zero time when raw matches none of the accepted layouts.
func ParseDateTime(raw string, loc *time.Location) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

// normalizePhone keeps the raw input when it cannot be normalised; validation flags it.
func normalizePhone(raw, region string) string {
	e164, err := phone.Normalize(raw, region)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return e164
}

// FlexibleInt decodes 4, "4" or " 4 "; anything else decodes as zero.
type FlexibleInt int

func (n *FlexibleInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	v, err := strconv.Atoi(s)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexibleInt(v)
	return nil
}
