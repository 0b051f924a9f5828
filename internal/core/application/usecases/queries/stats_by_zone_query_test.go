package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatsByZoneQuery_Valid(t *testing.T) {
	query := queries.NewStatsByZoneQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestStatsByZoneQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.StatsByZoneQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrStatsByZoneQueryIsNotConstructed)
}
