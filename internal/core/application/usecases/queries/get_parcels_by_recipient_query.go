package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelsByRecipientQueryIsNotConstructed = errors.New(
	"GetParcelsByRecipientQuery must be created via NewGetParcelsByRecipientQuery constructor",
)

// GetParcelsByRecipientQuery lists the parcels addressed to one recipient.
type GetParcelsByRecipientQuery struct {
	recipientID kernel.UUID
	page        int
	size        int

	guard guard.ConstructorGuard
}

// NewGetParcelsByRecipientQuery creates a by-recipient listing query.
func NewGetParcelsByRecipientQuery(
	recipientID kernel.UUID, page, size int,
) (GetParcelsByRecipientQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return GetParcelsByRecipientQuery{}, err
	}
	if err := validatePaging(page, size); err != nil {
		return GetParcelsByRecipientQuery{}, err
	}

	return GetParcelsByRecipientQuery{
		recipientID: recipientID,
		page:        page,
		size:        size,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsByRecipientQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsByRecipientQueryIsNotConstructed)
}

// RecipientID returns the recipient whose parcels are listed.
func (q GetParcelsByRecipientQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// Page returns the zero-based page index.
func (q GetParcelsByRecipientQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetParcelsByRecipientQuery) Size() int {
	return q.size
}
