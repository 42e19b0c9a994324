package reservation

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"reservation-book/internal/domain/customer"
	"reservation-book/internal/domain/table"
	"reservation-book/internal/pkg/phone"
)

const (
	FieldDateTime  = "datetime"
	FieldPartySize = "party_size"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
)

var fieldOrder = []string{FieldDateTime, FieldPartySize, FieldFirstName, FieldLastName, FieldPhone, FieldEmail}

var fieldLabels = map[string]string{
	FieldDateTime:  "Datetime",
	FieldPartySize: "Party size",
	FieldFirstName: "First name",
	FieldLastName:  "Last name",
	FieldPhone:     "Phone",
	FieldEmail:     "Email",
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	MsgBlank         = "can't be blank"
	MsgNotInFuture   = "must be in the future"
	MsgPartyTooSmall = "must be at least 1"
	MsgPartyTooLarge = "is too large"
	MsgInvalidPhone  = "is an invalid number"
	MsgInvalidEmail  = "is invalid"
)

// Form is a parsed booking request. Phone is expected in E.164 when it could be normalised.
type Form struct {
	DateTime  time.Time
	PartySize int
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

func (f Form) Slot() Slot {
	return NewSlot(f.DateTime)
}

func (f Form) Contact() customer.Contact {
	return customer.Contact{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Phone:     f.Phone,
		Email:     f.Email,
	}.Normalized()
}

// Validate checks the form against now without touching any store.
func (f Form) Validate(now time.Time) Problems {
	p := Problems{}

	switch {
	case f.DateTime.IsZero():
		p.Add(FieldDateTime, MsgBlank)
	case !f.Slot().After(now):
		p.Add(FieldDateTime, MsgNotInFuture)
	}

	switch {
	case f.PartySize < 1:
		p.Add(FieldPartySize, MsgPartyTooSmall)
	case f.PartySize > table.SeatLimit:
		p.Add(FieldPartySize, MsgPartyTooLarge)
	}

	contact := f.Contact()
	if contact.FirstName == "" {
		p.Add(FieldFirstName, MsgBlank)
	}
	if contact.LastName == "" {
		p.Add(FieldLastName, MsgBlank)
	}

	switch {
	case contact.Phone == "":
		p.Add(FieldPhone, MsgBlank)
	case !phone.Plausible(contact.Phone):
		p.Add(FieldPhone, MsgInvalidPhone)
	}

	switch {
	case contact.Email == "":
		p.Add(FieldEmail, MsgBlank)
	case !emailPattern.MatchString(contact.Email):
		p.Add(FieldEmail, MsgInvalidEmail)
	}

	return p
}

// Problems maps a form field to its validation messages.
type Problems map[string][]string

func (p Problems) Add(field, msg string) {
	p[field] = append(p[field], msg)
}

func (p Problems) Empty() bool {
	return len(p) == 0
}

func (p Problems) Has(field string) bool {
	return len(p[field]) > 0
}

// Fields lists fields with problems in form order; unknown fields follow alphabetically.
func (p Problems) Fields() []string {
	fields := make([]string, 0, len(p))
	known := make(map[string]bool, len(fieldOrder))
	for _, f := range fieldOrder {
		known[f] = true
		if p.Has(f) {
			fields = append(fields, f)
		}
	}
	var rest []string
	for f := range p {
		if !known[f] && p.Has(f) {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	return append(fields, rest...)
}

// FullMessages renders "Party size must be at least 1" style sentences.
func (p Problems) FullMessages() []string {
	var out []string
	for _, f := range p.Fields() {
		label, ok := fieldLabels[f]
		if !ok {
			label = strings.ReplaceAll(f, "_", " ")
		}
		for _, msg := range p[f] {
			out = append(out, label+" "+msg)
		}
	}
	return out
}
