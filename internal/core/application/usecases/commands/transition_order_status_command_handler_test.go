package commands_test

import (
	"testing"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionOrderStatusCommandHandler_Handle_CancelRestoresStock(t *testing.T) {
	ctx := t.Context()

	liveItem, err := order.NewLineItem(kernel.NewUUID(), 3, mustMoney(t, 2.00))
	require.NoError(t, err)
	orphanItem, err := order.RestoreLineItem(nil, 1, mustMoney(t, 5.00))
	require.NoError(t, err)

	stored := newStoredOrder(t, order.Processing, liveItem, orphanItem)
	cmd, err := commands.NewTransitionOrderStatusCommand(stored.ID(), order.Canceled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		// Only the item whose product still exists gets its stock back.
		productRepo.On("RestoreStock", mock.Anything, *liveItem.ProductID(), 3).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Canceled, stored.Status())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()

	stored := newStoredOrder(t, order.Pending)
	cmd, err := commands.NewTransitionOrderStatusCommand(stored.ID(), order.Pending)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)

	h := commands.NewTransitionOrderStatusCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestTransitionOrderStatusCommandHandler_Handle_ForbiddenMove(t *testing.T) {
	ctx := t.Context()

	stored := newStoredOrder(t, order.Pending)
	cmd, err := commands.NewTransitionOrderStatusCommand(stored.ID(), order.Completed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, new(MockNotificationDispatcher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, order.Pending, stored.Status())
}

func TestTransitionOrderStatusCommandHandler_Handle_ReadyDoesNotTouchStock(t *testing.T) {
	ctx := t.Context()

	stored := newStoredOrder(t, order.Processing)
	cmd, err := commands.NewTransitionOrderStatusCommand(stored.ID(), order.Ready)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertNotCalled(t, "RestoreStock", mock.Anything, mock.Anything, mock.Anything)
	require.Equal(t, order.Ready, stored.Status())
}
