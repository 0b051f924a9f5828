package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetParcelQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.ParcelID())
}

func TestNewGetParcelQuery_UnconstructedID(t *testing.T) {
	_, err := queries.NewGetParcelQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetParcelQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetParcelQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelQueryIsNotConstructed)
}
