package commands_test

import (
	"testing"
	"time"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshTrackerLinksCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	links := testLinkBuilder(t)

	id1, _ := kernel.NewOrderID("SO-1")
	id2, _ := kernel.NewOrderID("SO-2")
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	// Stale row: link never computed.
	stale, err := order.RestoreOrder(id1, "Dana", 1, kernel.NewToken(), now, "")
	require.NoError(t, err)

	// Fresh row: stored link already matches the computed one.
	fresh, err := order.RestoreOrder(id2, "Noa", 2, kernel.NewToken(), now, "")
	require.NoError(t, err)
	fresh.RefreshTrackerURL(links.Build(fresh.ID(), fresh.Token()))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAll", ctx).Return([]*order.Order{stale, fresh}, nil).Once(),
		repo.On("Update", ctx, stale).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshTrackerLinksCommandHandler(factory, links)
	result, err := h.Handle(ctx, commands.NewRefreshTrackerLinksCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Refreshed)
	assert.Contains(t, stale.TrackerURL(), "o=SO-1")

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRefreshTrackerLinksCommandHandler_Handle_IssuesMissingTokens(t *testing.T) {
	ctx := t.Context()
	links := testLinkBuilder(t)

	id, _ := kernel.NewOrderID("SO-1")
	legacy, err := order.RestoreOrder(id, "Dana", 1, kernel.Token{}, time.Now(), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAll", ctx).Return([]*order.Order{legacy}, nil).Once(),
		repo.On("Update", ctx, legacy).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshTrackerLinksCommandHandler(factory, links)
	result, err := h.Handle(ctx, commands.NewRefreshTrackerLinksCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Refreshed)
	assert.False(t, legacy.Token().IsZero())
	assert.Contains(t, legacy.TrackerURL(), "t="+legacy.Token().String())
}
