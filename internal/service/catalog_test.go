package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"gamevault/internal/cache"
	"gamevault/internal/model"
	"gamevault/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubCatalogCache struct {
	games       []*model.VideoGame
	hit         bool
	generation  int
	sets        int
	staleSets   int
	invalidated int
}

func (c *stubCatalogCache) Get(ctx context.Context) (cache.Listing, error) {
	return cache.Listing{Games: c.games, Hit: c.hit, Generation: strconv.Itoa(c.generation)}, nil
}

func (c *stubCatalogCache) Set(ctx context.Context, generation string, games []*model.VideoGame) error {
	if generation != strconv.Itoa(c.generation) {
		c.staleSets++
		return nil
	}
	c.games = games
	c.hit = true
	c.sets++
	return nil
}

func (c *stubCatalogCache) Invalidate(ctx context.Context) error {
	c.games = nil
	c.hit = false
	c.generation++
	c.invalidated++
	return nil
}

var _ cache.CatalogCache = (*stubCatalogCache)(nil)

func fifa20(quantity int) *model.VideoGame {
	return &model.VideoGame{
		ID:                1,
		Title:             "FIFA 20",
		Creator:           "EA Sports",
		YearOfPublication: 2019,
		Quantity:          quantity,
		Credits:           decimal.NewFromInt(20),
	}
}

func TestListGames_FillsCacheOnMiss(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockGameRepo.On("List", ctx).Return([]*model.VideoGame{fifa20(15)}, nil).Once()

	stub := &stubCatalogCache{}
	service := NewCatalogService(mockGameRepo, stub, zerolog.Nop())

	games, err := service.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	// Second read is served from the cache.
	games, err = service.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, 1, stub.sets)
}

func TestListGames_FillAfterInvalidationIsDropped(t *testing.T) {
	ctx := context.Background()
	stub := &stubCatalogCache{}

	mockGameRepo := mocks.NewVideoGameRepository(t)
	service := NewCatalogService(mockGameRepo, stub, zerolog.Nop())

	// A purchase commits while the listing is being loaded.
	mockGameRepo.On("List", ctx).Run(func(mock.Arguments) {
		service.InvalidateListing(ctx)
	}).Return([]*model.VideoGame{fifa20(15)}, nil).Once()

	games, err := service.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, 0, stub.sets)
	assert.Equal(t, 1, stub.staleSets)
	assert.False(t, stub.hit)

	// The next read fills the cache with fresh stock.
	mockGameRepo.On("List", ctx).Return([]*model.VideoGame{fifa20(13)}, nil).Once()
	games, err = service.ListGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, games[0].Quantity)
	assert.Equal(t, 1, stub.sets)
}

func TestListGames_NilCacheFallsBackToRepository(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockGameRepo.On("List", ctx).Return([]*model.VideoGame{fifa20(15)}, nil).Twice()

	service := NewCatalogService(mockGameRepo, nil, zerolog.Nop())

	_, err := service.ListGames(ctx)
	require.NoError(t, err)
	_, err = service.ListGames(ctx)
	require.NoError(t, err)
}

func TestCheckStock(t *testing.T) {
	service := NewCatalogService(mocks.NewVideoGameRepository(t), nil, zerolog.Nop())

	assert.NoError(t, service.CheckStock(fifa20(2), 2))
	assert.ErrorIs(t, service.CheckStock(fifa20(1), 2), model.ErrInsufficientStock)
}

func TestAdjustStock_RetainsEntryAtZero(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockGameRepo.On("UpdateQuantity", ctx, int64(1), 0, mock.Anything).Return(nil)

	service := NewCatalogService(mockGameRepo, nil, zerolog.Nop())
	game := fifa20(2)

	err := service.AdjustStock(ctx, game, 2, model.KindPurchase, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, game.Quantity)
}

func TestAdjustStock_RejectsOtherKinds(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	service := NewCatalogService(mockGameRepo, nil, zerolog.Nop())

	err := service.AdjustStock(ctx, fifa20(5), 1, model.KindCancellation, nil)

	assert.ErrorIs(t, err, model.ErrInvalidTransactionKind)
	mockGameRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustStock_InsufficientStock(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	service := NewCatalogService(mockGameRepo, nil, zerolog.Nop())
	game := fifa20(1)

	err := service.AdjustStock(ctx, game, 2, model.KindReservation, nil)

	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.Equal(t, 1, game.Quantity)
}

func reservationOf(game *model.VideoGame, qty int) *model.Reservation {
	res := model.NewReservation(1, game, qty, time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC))
	res.ID = 5
	return res
}

func TestRestock_ExistingEntry(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockGameRepo.On("GetByTitleForUpdate", ctx, "FIFA 20", mock.Anything).Return(fifa20(13), nil)
	mockGameRepo.On("UpdateQuantity", ctx, int64(1), 15, mock.Anything).Return(nil)

	service := NewCatalogService(mockGameRepo, nil, zerolog.Nop())

	game, err := service.Restock(ctx, reservationOf(fifa20(15), 2), nil)

	require.NoError(t, err)
	assert.Equal(t, 15, game.Quantity)
}

func TestRestock_RecreatesMissingEntry(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockGameRepo.On("GetByTitleForUpdate", ctx, "FIFA 20", mock.Anything).Return(nil, model.ErrVideoGameNotFound)
	mockGameRepo.On("Create", ctx, mock.MatchedBy(func(g *model.VideoGame) bool {
		return g.Title == "FIFA 20" &&
			g.Creator == "EA Sports" &&
			g.Quantity == 2 &&
			g.Credits.Equal(decimal.NewFromInt(20))
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.VideoGame).ID = 9
	}).Return(nil)

	service := NewCatalogService(mockGameRepo, nil, zerolog.Nop())

	game, err := service.Restock(ctx, reservationOf(fifa20(15), 2), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(9), game.ID)
	assert.Equal(t, 2, game.Quantity)
}

func TestRestock_LookupFailure(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockGameRepo.On("GetByTitleForUpdate", ctx, "FIFA 20", mock.Anything).Return(nil, errors.New("connection reset"))

	service := NewCatalogService(mockGameRepo, nil, zerolog.Nop())

	_, err := service.Restock(ctx, reservationOf(fifa20(15), 2), nil)

	require.Error(t, err)
	mockGameRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddGame(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockGameRepo.On("Create", ctx, mock.MatchedBy(func(g *model.VideoGame) bool {
		return g.Title == "WWE 2K23" && g.Quantity == 1 && g.Credits.Equal(decimal.NewFromInt(10))
	})).Return(nil)

	stub := &stubCatalogCache{}
	service := NewCatalogService(mockGameRepo, stub, zerolog.Nop())

	game, err := service.AddGame(ctx, &model.AddGameRequest{
		Title:             " WWE 2K23 ",
		Creator:           "Visual Concepts",
		YearOfPublication: 2023,
		Quantity:          1,
		Credits:           "10",
	})

	require.NoError(t, err)
	assert.Equal(t, "WWE 2K23", game.Title)
	assert.Equal(t, 1, stub.invalidated)
}

func TestAddGame_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  *model.AddGameRequest
	}{
		{"blank title", &model.AddGameRequest{Title: " ", Creator: "EA Sports", Quantity: 1, Credits: "10"}},
		{"negative quantity", &model.AddGameRequest{Title: "FIFA 21", Creator: "EA Sports", Quantity: -1, Credits: "10"}},
		{"zero credits", &model.AddGameRequest{Title: "FIFA 21", Creator: "EA Sports", Quantity: 1, Credits: "0"}},
		{"credits not a number", &model.AddGameRequest{Title: "FIFA 21", Creator: "EA Sports", Quantity: 1, Credits: "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGameRepo := mocks.NewVideoGameRepository(t)
			service := NewCatalogService(mockGameRepo, nil, zerolog.Nop())

			_, err := service.AddGame(context.Background(), tt.req)

			assert.ErrorIs(t, err, model.ErrInvalidVideoGame)
		})
	}
}
