package commands_test

import (
	"context"
	"errors"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/refs"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, id kernel.UUID) *refs.Client {
	t.Helper()
	client, err := refs.NewClient(id, "Alice Martin", "alice@example.com", "+33100000001", "1 rue de la Paix")
	require.NoError(t, err)
	return client
}

func testRecipient(t *testing.T, id kernel.UUID) *refs.Recipient {
	t.Helper()
	recipient, err := refs.NewRecipient(id, "Bob Durand", "+33100000002", "2 avenue Foch")
	require.NoError(t, err)
	return recipient
}

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	parcelID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	recipientID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		parcelID, clientID, recipientID, nil,
		"books", 2.5, parcel.PriorityNormal, "Paris", nil,
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	refRepo := new(MockReferenceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReferenceRepository").Return(refRepo).Once(),
		refRepo.On("GetClient", ctx, clientID).Return(testClient(t, clientID), nil).Once(),
		refRepo.On("GetRecipient", ctx, recipientID).Return(testRecipient(t, recipientID), nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*parcel.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedParcel := parcelRepo.Calls[0].Arguments[1].(*parcel.Parcel)
	assert.Equal(t, parcelID, addedParcel.ID())
	assert.Equal(t, parcel.StatusCreated, addedParcel.Status())
	assert.Nil(t, addedParcel.CollectedAt())
	assert.Nil(t, addedParcel.DeliveredAt())

	addedEntry := historyRepo.Calls[0].Arguments[1].(*parcel.HistoryEntry)
	assert.Equal(t, parcelID, addedEntry.Parcel())
	assert.Equal(t, parcel.StatusCreated, addedEntry.Status())

	parcelRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	refRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_WithZone(t *testing.T) {
	ctx := context.Background()

	parcelID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	zoneID := kernel.NewUUID()
	testZone, err := refs.NewZone(zoneID, "north", "northern districts")
	require.NoError(t, err)

	cmd, err := commands.NewCreateParcelCommand(
		parcelID, clientID, recipientID, &zoneID,
		"books", 2.5, parcel.PriorityUrgent, "Lille", nil,
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	refRepo := new(MockReferenceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReferenceRepository").Return(refRepo).Once(),
		refRepo.On("GetClient", ctx, clientID).Return(testClient(t, clientID), nil).Once(),
		refRepo.On("GetRecipient", ctx, recipientID).Return(testRecipient(t, recipientID), nil).Once(),
		refRepo.On("GetZone", ctx, zoneID).Return(testZone, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*parcel.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedParcel := parcelRepo.Calls[0].Arguments[1].(*parcel.Parcel)
	require.NotNil(t, addedParcel.Zone())
	assert.Equal(t, zoneID, *addedParcel.Zone())
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.CreateParcelCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateParcelCommandHandler_Handle_ClientNotFound(t *testing.T) {
	ctx := context.Background()

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), clientID, kernel.NewUUID(), nil,
		"books", 2.5, parcel.PriorityNormal, "Paris", nil,
	)
	require.NoError(t, err)

	refRepo := new(MockReferenceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReferenceRepository").Return(refRepo).Once(),
		refRepo.On("GetClient", ctx, clientID).
			Return(nil, errs.NewObjectNotFoundError("clientID", clientID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateParcelCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"books", 2.5, parcel.PriorityNormal, "Paris", nil,
	)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}
