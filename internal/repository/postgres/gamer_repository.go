package postgres

import (
	"context"
	"errors"
	"fmt"

	"gamevault/internal/model"
	"gamevault/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.GamerRepository = (*GamerRepositoryImpl)(nil)

// GamerRepositoryImpl is the PostgreSQL implementation of GamerRepository
type GamerRepositoryImpl struct {
	*TransactionManager
}

func NewGamerRepository(pool *pgxpool.Pool) repository.GamerRepository {
	return &GamerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const gamerColumns = `id, name, username, email, password_hash, role, total_credits, version, created_at, updated_at`

func scanGamer(row pgx.Row) (*model.Gamer, error) {
	g := &model.Gamer{}
	err := row.Scan(&g.ID, &g.Name, &g.Username, &g.Email, &g.PasswordHash, &g.Role, &g.TotalCredits, &g.Version, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.PurchaseHistory = []*model.Purchase{}
	g.ReservationHistory = []*model.Reservation{}
	g.CancellationHistory = []*model.Cancellation{}
	return g, nil
}

// Create inserts a new gamer
func (r *GamerRepositoryImpl) Create(ctx context.Context, gamer *model.Gamer, tx ...pgx.Tx) error {
	query := `
        INSERT INTO gamers (name, username, email, password_hash, role, total_credits)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, version, created_at, updated_at`

	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, gamer.Name, gamer.Username, gamer.Email, gamer.PasswordHash, gamer.Role, gamer.TotalCredits).
		Scan(&gamer.ID, &gamer.Version, &gamer.CreatedAt, &gamer.UpdatedAt)
	if err != nil {
		if code, constraint, ok := violatedConstraint(err); ok && code == pgerrcode.UniqueViolation {
			switch constraint {
			case "gamers_username_key":
				return model.ErrUnavailableUsername
			case "gamers_email_key":
				return model.ErrUnavailableEmail
			}
		}
		return fmt.Errorf("failed to insert gamer: %w", err)
	}
	return nil
}

// GetByID retrieves a gamer by id
func (r *GamerRepositoryImpl) GetByID(ctx context.Context, gamerID int64, tx ...pgx.Tx) (*model.Gamer, error) {
	query := `SELECT ` + gamerColumns + ` FROM gamers WHERE id = $1`

	executor := r.getExecutor(tx...)
	gamer, err := scanGamer(executor.QueryRow(ctx, query, gamerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGamerNotFound
		}
		return nil, fmt.Errorf("failed to get gamer: %w", err)
	}
	return gamer, nil
}

// GetForUpdate retrieves a gamer with row-level lock
func (r *GamerRepositoryImpl) GetForUpdate(ctx context.Context, gamerID int64, tx pgx.Tx) (*model.Gamer, error) {
	query := `SELECT ` + gamerColumns + ` FROM gamers WHERE id = $1 FOR UPDATE`

	gamer, err := scanGamer(tx.QueryRow(ctx, query, gamerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGamerNotFound
		}
		return nil, fmt.Errorf("failed to get gamer for update: %w", err)
	}
	return gamer, nil
}

// GetByUsername retrieves a gamer by exact username
func (r *GamerRepositoryImpl) GetByUsername(ctx context.Context, username string) (*model.Gamer, error) {
	query := `SELECT ` + gamerColumns + ` FROM gamers WHERE username = $1`

	gamer, err := scanGamer(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGamerNotFound
		}
		return nil, fmt.Errorf("failed to get gamer by username: %w", err)
	}
	return gamer, nil
}

func (r *GamerRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM gamers WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (r *GamerRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM gamers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// UpdateCredits updates the gamer balance
func (r *GamerRepositoryImpl) UpdateCredits(ctx context.Context, gamerID int64, credits decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE gamers
        SET total_credits = $1, version = version + 1, updated_at = date_trunc('second', NOW())
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, credits, gamerID)
	if err != nil {
		// CONSTRAINT gamers_total_credits_non_negative CHECK (total_credits >= 0)
		if code, _, ok := violatedConstraint(err); ok && code == pgerrcode.CheckViolation {
			return model.ErrInsufficientCredits
		}
		return fmt.Errorf("failed to update credits: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrGamerNotFound
	}
	return nil
}

func (r *GamerRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM gamers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count gamers: %w", err)
	}
	return n, nil
}
