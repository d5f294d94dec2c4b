package commands_test

import (
	"testing"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), mustUserID(t, 7), mustMoney(t, 4.50), 25,
		"kg", "", []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateProductCommand_RequiresCategories(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), mustUserID(t, 7), mustMoney(t, 4.50), 25,
		"kg", "", nil)
	require.ErrorIs(t, err, commands.ErrCategoriesAreRequired)
}

func TestNewCreateProductCommand_RequiresUnitType(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), mustUserID(t, 7), mustMoney(t, 4.50), 25,
		"", "", []kernel.UUID{kernel.NewUUID()})
	require.ErrorIs(t, err, commands.ErrUnitTypeIsRequired)
}
