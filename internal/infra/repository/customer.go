package repository

import (
	"context"

	"reservation-book/internal/domain/customer"
	"reservation-book/internal/infra"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/pgconv"
)

type CustomerWriteQueries interface {
	InsertCustomerIfAbsent(ctx context.Context, db dbq.DBTX, arg dbq.CustomerContactParams) (dbq.Customer, error)
	GetCustomerByContact(ctx context.Context, db dbq.DBTX, arg dbq.CustomerContactParams) (dbq.Customer, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
}

func NewCustomerRepository(queries CustomerWriteQueries) *CustomerRepository {
	return &CustomerRepository{queries: queries}
}

// FindOrCreate returns the customer whose contact matches exactly, inserting one if none exists.
// Concurrent callers with the same contact converge on a single row through the unique constraint.
func (r *CustomerRepository) FindOrCreate(ctx context.Context, tx dbq.DBTX, contact customer.Contact) (*customer.Customer, error) {
	candidate, err := customer.New(contact)
	if err != nil {
		return nil, err
	}
	params := contactToParams(candidate.Contact())

	row, err := r.queries.InsertCustomerIfAbsent(ctx, tx, params)
	if err == nil {
		return customerFromRow(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to insert customer", err)
	}

	row, err = r.queries.GetCustomerByContact(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load existing customer", err)
	}
	return customerFromRow(row), nil
}

func contactToParams(c customer.Contact) dbq.CustomerContactParams {
	return dbq.CustomerContactParams{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

func customerFromRow(row dbq.Customer) *customer.Customer {
	return customer.Reconstruct(
		pgconv.UUIDFromPgtype(row.ID),
		customer.Contact{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Phone:     row.Phone,
			Email:     row.Email,
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
