package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelsByClientQueryIsNotConstructed = errors.New(
	"GetParcelsByClientQuery must be created via NewGetParcelsByClientQuery constructor",
)

// GetParcelsByClientQuery lists the parcels sent by one client.
type GetParcelsByClientQuery struct {
	clientID kernel.UUID
	page     int
	size     int

	guard guard.ConstructorGuard
}

// NewGetParcelsByClientQuery creates a by-client listing query.
func NewGetParcelsByClientQuery(clientID kernel.UUID, page, size int) (GetParcelsByClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetParcelsByClientQuery{}, err
	}
	if err := validatePaging(page, size); err != nil {
		return GetParcelsByClientQuery{}, err
	}

	return GetParcelsByClientQuery{
		clientID: clientID,
		page:     page,
		size:     size,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsByClientQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsByClientQueryIsNotConstructed)
}

// ClientID returns the client whose parcels are listed.
func (q GetParcelsByClientQuery) ClientID() kernel.UUID {
	return q.clientID
}

// Page returns the zero-based page index.
func (q GetParcelsByClientQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetParcelsByClientQuery) Size() int {
	return q.size
}
