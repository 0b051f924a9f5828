package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testParcel(t *testing.T, id kernel.UUID) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		id, kernel.NewUUID(), kernel.NewUUID(),
		"books", 2.5, parcel.PriorityNormal, "Paris", nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func TestChangeParcelStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	parcelID := kernel.NewUUID()
	trackedParcel := testParcel(t, parcelID)

	cmd, err := commands.NewChangeParcelStatusCommand(
		parcelID, parcel.StatusCollected, "picked up at depot", "jdupont",
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(trackedParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*parcel.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeParcelStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updatedParcel := parcelRepo.Calls[1].Arguments[1].(*parcel.Parcel)
	assert.Equal(t, parcel.StatusCollected, updatedParcel.Status())
	assert.NotNil(t, updatedParcel.CollectedAt())
	assert.Nil(t, updatedParcel.DeliveredAt())

	addedEntry := historyRepo.Calls[0].Arguments[1].(*parcel.HistoryEntry)
	assert.Equal(t, parcelID, addedEntry.Parcel())
	assert.Equal(t, parcel.StatusCollected, addedEntry.Status())
	assert.Equal(t, "picked up at depot", addedEntry.Comment())
	assert.Equal(t, "jdupont", addedEntry.ChangedBy())

	parcelRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeParcelStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := context.Background()

	var logs bytes.Buffer
	previousLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previousLogger) })

	parcelID := kernel.NewUUID()
	trackedParcel := testParcel(t, parcelID) // already in created status

	cmd, err := commands.NewChangeParcelStatusCommand(
		parcelID, parcel.StatusCreated, "should not appear", "nobody",
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(trackedParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeParcelStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	parcelRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "HistoryRepository")
	uow.AssertNotCalled(t, "Commit", ctx)

	assert.Contains(t, logs.String(), "Parcel already in requested status")
	assert.Contains(t, logs.String(), parcelID.String())
}

func TestChangeParcelStatusCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := context.Background()

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewChangeParcelStatusCommand(parcelID, parcel.StatusInTransit, "", "")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).
			Return(nil, errs.NewObjectNotFoundError("parcelID", parcelID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeParcelStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeParcelStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.ChangeParcelStatusCommand{} // not constructed properly

	factory := new(MockTrackingUoWFactory)
	handler := commands.NewChangeParcelStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeParcelStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewChangeParcelStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeParcelStatusCommand(kernel.NewUUID(), parcel.StatusUnknown, "", "")
	require.Error(t, err)
}
