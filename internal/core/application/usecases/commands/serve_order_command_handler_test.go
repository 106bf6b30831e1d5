package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrder(t, order.TypeEatIn, order.Accepted, "", nil)
	cmd, err := commands.NewServeOrderCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewServeOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Served, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestServeOrderCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrder(t, order.TypeEatIn, order.Waiting, "", nil)
	cmd, err := commands.NewServeOrderCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewServeOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidState)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestServeOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ServeOrderCommand{} // not constructed properly
	h := commands.NewServeOrderCommandHandler(new(MockOrderUoWFactory))
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrServeOrderCommandIsNotConstructed)
}
