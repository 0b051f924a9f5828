package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateParcelCommand_ValidInput(t *testing.T) {
	parcelID := kernel.NewUUID()
	description := "replacement parts"
	weight := 12.0

	cmd, err := commands.NewUpdateParcelCommand(parcelID, commands.UpdateParcelFields{
		Description: &description,
		Weight:      &weight,
	})
	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	require.NotNil(t, cmd.Fields().Description)
	assert.Equal(t, description, *cmd.Fields().Description)
	assert.Nil(t, cmd.Fields().Status)
}

func TestNewUpdateParcelCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateParcelCommand(kernel.NewUUID(), commands.UpdateParcelFields{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoFieldsToUpdate)
}

func TestNewUpdateParcelCommand_InvalidFields(t *testing.T) {
	emptyDescription := ""
	negativeWeight := -1.0
	badStatus := parcel.StatusUnknown

	_, err := commands.NewUpdateParcelCommand(kernel.NewUUID(), commands.UpdateParcelFields{
		Description: &emptyDescription,
		Weight:      &negativeWeight,
		Status:      &badStatus,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDescriptionIsRequired)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}

func TestNewUpdateParcelCommand_InvalidZoneID(t *testing.T) {
	badZone := kernel.UUID{}

	_, err := commands.NewUpdateParcelCommand(kernel.NewUUID(), commands.UpdateParcelFields{
		ZoneID: &badZone,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
