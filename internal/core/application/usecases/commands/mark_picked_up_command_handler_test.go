package commands_test

import (
	"testing"

	"logistima/internal/core/application/usecases/commands"
	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
	"logistima/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkPickedUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	// Given a freshly dispatched delivery
	zoneID := kernel.NewUUID()
	p := testParcel(t, zoneID)
	drv := testDriver(t, "Yassine", 5, zoneID)
	require.NoError(t, p.Assign(drv.ID()))
	d := testDelivery(t, p.ID(), drv.ID())

	cmd, err := commands.NewMarkPickedUpCommand(d.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	deliveryRepo.On("Update", ctx, d).Return(nil).Once()
	parcelRepo.On("Update", ctx, p).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	// When
	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Then both lifecycles advanced together
	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, d.Status())
	assert.Equal(t, parcel.PickedUp, p.Status())

	mock.AssertExpectationsForObjects(t, factory, uow, parcelRepo, deliveryRepo)
}

func TestMarkPickedUpCommandHandler_Handle_AlreadyPickedUp(t *testing.T) {
	ctx := t.Context()

	zoneID := kernel.NewUUID()
	p := testParcel(t, zoneID)
	drv := testDriver(t, "Yassine", 5, zoneID)
	require.NoError(t, p.Assign(drv.ID()))
	require.NoError(t, p.MarkPickedUp())
	d := testDelivery(t, p.ID(), drv.ID())
	require.NoError(t, d.MarkPickedUp())

	cmd, err := commands.NewMarkPickedUpCommand(d.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}
