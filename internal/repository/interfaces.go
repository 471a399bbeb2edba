package repository

import (
	"context"
	"time"

	"gamevault/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// GamerRepository defines operations for gamer accounts and their credit balance
type GamerRepository interface {
	// Create inserts a new gamer and fills its generated fields
	Create(ctx context.Context, gamer *model.Gamer, tx ...pgx.Tx) error

	// GetByID retrieves a gamer without histories
	GetByID(ctx context.Context, gamerID int64, tx ...pgx.Tx) (*model.Gamer, error)

	// GetForUpdate retrieves a gamer with row-level lock (must be in transaction)
	GetForUpdate(ctx context.Context, gamerID int64, tx pgx.Tx) (*model.Gamer, error)

	GetByUsername(ctx context.Context, username string) (*model.Gamer, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateCredits persists a new balance and bumps the row version
	UpdateCredits(ctx context.Context, gamerID int64, credits decimal.Decimal, tx pgx.Tx) error

	Count(ctx context.Context) (int64, error)
}

// AdministratorRepository defines operations for administrator accounts
type AdministratorRepository interface {
	Create(ctx context.Context, admin *model.Administrator) error
	GetByUsername(ctx context.Context, username string) (*model.Administrator, error)
	Count(ctx context.Context) (int64, error)
}

// VideoGameRepository defines operations for the catalog
type VideoGameRepository interface {
	Create(ctx context.Context, game *model.VideoGame, tx ...pgx.Tx) error
	GetByID(ctx context.Context, gameID int64, tx ...pgx.Tx) (*model.VideoGame, error)

	// GetForUpdate retrieves a video game with row-level lock (must be in transaction)
	GetForUpdate(ctx context.Context, gameID int64, tx pgx.Tx) (*model.VideoGame, error)

	// GetByTitleForUpdate retrieves a video game by its unique title with row-level lock
	GetByTitleForUpdate(ctx context.Context, title string, tx pgx.Tx) (*model.VideoGame, error)

	// List returns the whole catalog ordered by id
	List(ctx context.Context) ([]*model.VideoGame, error)

	UpdateQuantity(ctx context.Context, gameID int64, quantity int, tx pgx.Tx) error
	Count(ctx context.Context) (int64, error)
}

// LedgerRepository defines operations for purchases, reservations and cancellations
type LedgerRepository interface {
	InsertPurchase(ctx context.Context, p *model.Purchase, tx pgx.Tx) error
	InsertReservation(ctx context.Context, r *model.Reservation, tx pgx.Tx) error
	InsertCancellation(ctx context.Context, c *model.Cancellation, tx pgx.Tx) error

	GetReservation(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Reservation, error)

	// GetReservationForUpdate retrieves a reservation with row-level lock (must be in transaction)
	GetReservationForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Reservation, error)

	DeleteReservation(ctx context.Context, id int64, tx pgx.Tx) error

	// List methods return the gamer's records newest first
	ListPurchasesByGamer(ctx context.Context, gamerID int64, tx ...pgx.Tx) ([]*model.Purchase, error)
	ListReservationsByGamer(ctx context.Context, gamerID int64, tx ...pgx.Tx) ([]*model.Reservation, error)
	ListCancellationsByGamer(ctx context.Context, gamerID int64, tx ...pgx.Tx) ([]*model.Cancellation, error)

	// GetExpiredReservations retrieves reservations whose purchase window closed before the given time
	GetExpiredReservations(ctx context.Context, before time.Time, limit int) ([]*model.Reservation, error)

	// LockReservationForCancellation locks a reservation row unless another worker already holds it
	LockReservationForCancellation(ctx context.Context, id int64, tx pgx.Tx) (bool, error)
}
