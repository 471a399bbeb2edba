package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamevault/internal/cache"
	"gamevault/internal/model"
	"gamevault/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CatalogServiceImpl struct {
	gameRepo repository.VideoGameRepository
	cache    cache.CatalogCache
	logger   zerolog.Logger
}

func NewCatalogService(gameRepo repository.VideoGameRepository, catalogCache cache.CatalogCache, logger zerolog.Logger) CatalogService {
	if catalogCache == nil {
		catalogCache = cache.NoopCatalogCache{}
	}
	return &CatalogServiceImpl{
		gameRepo: gameRepo,
		cache:    catalogCache,
		logger:   logger,
	}
}

func (s *CatalogServiceImpl) GetGame(ctx context.Context, gameID int64) (*model.VideoGame, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("get video game: %w", err)
	}
	return game, nil
}

func (s *CatalogServiceImpl) GetGameForUpdate(ctx context.Context, gameID int64, tx pgx.Tx) (*model.VideoGame, error) {
	game, err := s.gameRepo.GetForUpdate(ctx, gameID, tx)
	if err != nil {
		return nil, fmt.Errorf("get video game for update: %w", err)
	}
	return game, nil
}

func (s *CatalogServiceImpl) GetGameByTitleForUpdate(ctx context.Context, title string, tx pgx.Tx) (*model.VideoGame, error) {
	game, err := s.gameRepo.GetByTitleForUpdate(ctx, title, tx)
	if err != nil {
		return nil, fmt.Errorf("get video game by title: %w", err)
	}
	return game, nil
}

// ListGames serves the catalog from cache, filling it on a miss
func (s *CatalogServiceImpl) ListGames(ctx context.Context) ([]*model.VideoGame, error) {
	listing, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache read failed")
	}
	if listing.Hit {
		return listing.Games, nil
	}

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list video games: %w", err)
	}

	// A stock change committed since the read bumps the generation and the fill is dropped.
	if err := s.cache.Set(ctx, listing.Generation, games); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache write failed")
	}
	return games, nil
}

func (s *CatalogServiceImpl) CheckStock(game *model.VideoGame, qty int) error {
	if game.Quantity < qty {
		return fmt.Errorf("%w: %d requested, %d available", model.ErrInsufficientStock, qty, game.Quantity)
	}
	return nil
}

// AdjustStock decrements the stock. An entry that reaches zero stays in the catalog.
func (s *CatalogServiceImpl) AdjustStock(ctx context.Context, game *model.VideoGame, qty int, kind model.TransactionKind, tx pgx.Tx) error {
	if kind != model.KindPurchase && kind != model.KindReservation {
		return fmt.Errorf("%w: %s", model.ErrInvalidTransactionKind, kind)
	}

	newQuantity := game.Quantity - qty
	if newQuantity < 0 {
		return fmt.Errorf("%w: %d requested, %d available", model.ErrInsufficientStock, qty, game.Quantity)
	}

	if err := s.gameRepo.UpdateQuantity(ctx, game.ID, newQuantity, tx); err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}

	s.logger.Debug().
		Int64("video_game_id", game.ID).
		Str("kind", kind.String()).
		Int("old_quantity", game.Quantity).
		Int("new_quantity", newQuantity).
		Msg("stock adjusted")

	game.Quantity = newQuantity
	return nil
}

// Restock increases the stock of the reserved title. If the title is no longer
// in the catalog, it is recreated from the reservation snapshot.
func (s *CatalogServiceImpl) Restock(ctx context.Context, res *model.Reservation, tx pgx.Tx) (*model.VideoGame, error) {
	game, err := s.gameRepo.GetByTitleForUpdate(ctx, res.Title, tx)
	if err != nil && !errors.Is(err, model.ErrVideoGameNotFound) {
		return nil, fmt.Errorf("get video game by title: %w", err)
	}

	if game == nil {
		game = &model.VideoGame{
			Title:    res.Title,
			Creator:  res.Creator,
			Quantity: res.Quantity,
			Credits:  res.UnitPrice(),
		}
		if err := s.gameRepo.Create(ctx, game, tx); err != nil {
			return nil, fmt.Errorf("recreate video game: %w", err)
		}
		s.logger.Info().
			Int64("video_game_id", game.ID).
			Str("title", game.Title).
			Int("quantity", game.Quantity).
			Msg("video game recreated from reservation")
		return game, nil
	}

	newQuantity := game.Quantity + res.Quantity
	if err := s.gameRepo.UpdateQuantity(ctx, game.ID, newQuantity, tx); err != nil {
		return nil, fmt.Errorf("update quantity: %w", err)
	}
	game.Quantity = newQuantity
	return game, nil
}

func (s *CatalogServiceImpl) AddGame(ctx context.Context, req *model.AddGameRequest) (*model.VideoGame, error) {
	credits, err := decimal.NewFromString(strings.TrimSpace(req.Credits))
	if err != nil {
		return nil, fmt.Errorf("%w: credits %q", model.ErrInvalidVideoGame, req.Credits)
	}

	game := &model.VideoGame{
		Title:             strings.TrimSpace(req.Title),
		Creator:           strings.TrimSpace(req.Creator),
		YearOfPublication: req.YearOfPublication,
		Quantity:          req.Quantity,
		Credits:           model.RoundCredits(credits),
	}

	switch {
	case game.Title == "":
		return nil, fmt.Errorf("%w: title is required", model.ErrInvalidVideoGame)
	case game.Quantity < 0:
		return nil, fmt.Errorf("%w: quantity must not be negative", model.ErrInvalidVideoGame)
	case !game.Credits.IsPositive():
		return nil, fmt.Errorf("%w: credits must be positive", model.ErrInvalidVideoGame)
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("create video game: %w", err)
	}

	s.logger.Info().
		Int64("video_game_id", game.ID).
		Str("title", game.Title).
		Int("quantity", game.Quantity).
		Str("credits", game.Credits.StringFixed(2)).
		Msg("video game added")

	s.InvalidateListing(ctx)
	return game, nil
}

func (s *CatalogServiceImpl) InvalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
