package dbq

import (
	"context"
)

const insertCustomerIfAbsent = `-- name: InsertCustomerIfAbsent :one
INSERT INTO customers (first_name, last_name, phone, email)
VALUES ($1, $2, $3, $4)
ON CONFLICT ON CONSTRAINT customers_contact_key DO NOTHING
RETURNING id, first_name, last_name, phone, email, created_at
`

type CustomerContactParams struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// InsertCustomerIfAbsent returns pgx.ErrNoRows when a customer with the same contact already exists.
func (q *Queries) InsertCustomerIfAbsent(ctx context.Context, db DBTX, arg CustomerContactParams) (Customer, error) {
	row := db.QueryRow(ctx, insertCustomerIfAbsent, arg.FirstName, arg.LastName, arg.Phone, arg.Email)
	var c Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.CreatedAt)
	return c, err
}

const getCustomerByContact = `-- name: GetCustomerByContact :one
SELECT id, first_name, last_name, phone, email, created_at
FROM customers
WHERE first_name = $1
  AND last_name = $2
  AND phone = $3
  AND email = $4
`

func (q *Queries) GetCustomerByContact(ctx context.Context, db DBTX, arg CustomerContactParams) (Customer, error) {
	row := db.QueryRow(ctx, getCustomerByContact, arg.FirstName, arg.LastName, arg.Phone, arg.Email)
	var c Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.CreatedAt)
	return c, err
}
