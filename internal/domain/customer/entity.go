package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrIncompleteContact = errors.New("customer contact details are incomplete")

// Contact is the identity tuple of a customer; two customers with equal contacts are the same customer.
type Contact struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// Normalized squishes names and trims phone and email.
func (c Contact) Normalized() Contact {
	return Contact{
		FirstName: Squish(c.FirstName),
		LastName:  Squish(c.LastName),
		Phone:     strings.TrimSpace(c.Phone),
		Email:     strings.TrimSpace(c.Email),
	}
}

func (c Contact) Complete() bool {
	return c.FirstName != "" && c.LastName != "" && c.Phone != "" && c.Email != ""
}

func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Customer struct {
	id        uuid.UUID
	contact   Contact
	createdAt time.Time
}

func New(contact Contact) (*Customer, error) {
	contact = contact.Normalized()
	if !contact.Complete() {
		return nil, ErrIncompleteContact
	}
	return &Customer{
		id:      uuid.New(),
		contact: contact,
	}, nil
}

func Reconstruct(id uuid.UUID, contact Contact, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		contact:   contact,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Contact() Contact     { return c.contact }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// Squish trims s and collapses internal whitespace runs to a single space.
func Squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
