package service

import (
	"context"

	"gamevault/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CatalogService defines stock availability and mutation of video games
type CatalogService interface {
	GetGame(ctx context.Context, gameID int64) (*model.VideoGame, error)
	GetGameForUpdate(ctx context.Context, gameID int64, tx pgx.Tx) (*model.VideoGame, error)
	GetGameByTitleForUpdate(ctx context.Context, title string, tx pgx.Tx) (*model.VideoGame, error)
	ListGames(ctx context.Context) ([]*model.VideoGame, error)

	// CheckStock fails with ErrInsufficientStock when fewer than qty units are available
	CheckStock(game *model.VideoGame, qty int) error

	// AdjustStock decrements stock for a purchase or a reservation
	AdjustStock(ctx context.Context, game *model.VideoGame, qty int, kind model.TransactionKind, tx pgx.Tx) error

	// Restock returns a reservation's units to the catalog, recreating the entry if needed
	Restock(ctx context.Context, res *model.Reservation, tx pgx.Tx) (*model.VideoGame, error)

	AddGame(ctx context.Context, req *model.AddGameRequest) (*model.VideoGame, error)
	InvalidateListing(ctx context.Context)
}

// AccountService defines registration, authentication and credit management
type AccountService interface {
	Register(ctx context.Context, req *model.RegistrationRequest) (*model.Gamer, error)
	RegisterAdministrator(ctx context.Context, req *model.RegistrationRequest) (*model.Administrator, error)
	AuthenticateGamer(ctx context.Context, username, password string) (*model.Principal, error)
	AuthenticateAdministrator(ctx context.Context, username, password string) (*model.Principal, error)

	// GetGamer returns the gamer with all histories loaded
	GetGamer(ctx context.Context, gamerID int64) (*model.Gamer, error)
	GetGamerForUpdate(ctx context.Context, gamerID int64, tx pgx.Tx) (*model.Gamer, error)

	// CheckAffordable returns the amount the gamer would be charged, or ErrInsufficientCredits
	CheckAffordable(gamer *model.Gamer, game *model.VideoGame, qty int, kind model.TransactionKind) (decimal.Decimal, error)
	DebitCredits(ctx context.Context, gamer *model.Gamer, amount decimal.Decimal, tx pgx.Tx) error

	AppendHistory(gamer *model.Gamer, rec model.LedgerRecord)
	RemoveReservation(gamer *model.Gamer, res *model.Reservation)
}

// LedgerService defines creation and lookup of ledger records
type LedgerService interface {
	RecordPurchase(ctx context.Context, gamer *model.Gamer, game *model.VideoGame, qty int, tx pgx.Tx) (*model.Purchase, error)
	RecordReservation(ctx context.Context, gamer *model.Gamer, game *model.VideoGame, qty int, tx pgx.Tx) (*model.Reservation, error)
	FindReservation(ctx context.Context, reservationID int64) (*model.Reservation, error)
	FindReservationForUpdate(ctx context.Context, reservationID int64, tx pgx.Tx) (*model.Reservation, error)
	RecordCancellation(ctx context.Context, gamer *model.Gamer, res *model.Reservation, reason string, tx pgx.Tx) (*model.Cancellation, error)
	DeleteReservation(ctx context.Context, res *model.Reservation, tx pgx.Tx) error
}

// MarketplaceService defines the gamer facing pipelines. Each one runs in a single database transaction.
type MarketplaceService interface {
	Buy(ctx context.Context, gamerID, gameID int64, qty int) (*model.TransactionResponse, error)
	Reserve(ctx context.Context, gamerID, gameID int64, qty int) (*model.TransactionResponse, error)
	CancelReservation(ctx context.Context, gamerID, reservationID int64) (*model.TransactionResponse, error)
	CompleteReservationPurchase(ctx context.Context, gamerID, reservationID int64) (*model.TransactionResponse, error)
}

// ExpiryService defines the background cancellation of reservations past their latest purchase date
type ExpiryService interface {
	CancelExpiredReservations(ctx context.Context) error
}

// EventPublisher delivers committed ledger events
type EventPublisher interface {
	Publish(ctx context.Context, event model.LedgerEvent) error
}
