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
)

// Ensure implementation satisfies interface at compile time
var _ repository.VideoGameRepository = (*VideoGameRepositoryImpl)(nil)

// VideoGameRepositoryImpl is the PostgreSQL implementation of VideoGameRepository
type VideoGameRepositoryImpl struct {
	*TransactionManager
}

func NewVideoGameRepository(pool *pgxpool.Pool) repository.VideoGameRepository {
	return &VideoGameRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const videoGameColumns = `id, title, creator, year_of_publication, quantity, credits, created_at, updated_at`

func scanVideoGame(row pgx.Row) (*model.VideoGame, error) {
	v := &model.VideoGame{}
	if err := row.Scan(&v.ID, &v.Title, &v.Creator, &v.YearOfPublication, &v.Quantity, &v.Credits, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return v, nil
}

// Create inserts a catalog entry
func (r *VideoGameRepositoryImpl) Create(ctx context.Context, game *model.VideoGame, tx ...pgx.Tx) error {
	query := `
        INSERT INTO video_games (title, creator, year_of_publication, quantity, credits)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, game.Title, game.Creator, game.YearOfPublication, game.Quantity, game.Credits).
		Scan(&game.ID, &game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		if code, _, ok := violatedConstraint(err); ok {
			if code == pgerrcode.UniqueViolation {
				return model.ErrDuplicateTitle
			}
			return fmt.Errorf("%w: %v", model.ErrInvalidVideoGame, err)
		}
		return fmt.Errorf("failed to insert video game: %w", err)
	}
	return nil
}

// GetByID retrieves a video game by id
func (r *VideoGameRepositoryImpl) GetByID(ctx context.Context, gameID int64, tx ...pgx.Tx) (*model.VideoGame, error) {
	query := `SELECT ` + videoGameColumns + ` FROM video_games WHERE id = $1`

	executor := r.getExecutor(tx...)
	game, err := scanVideoGame(executor.QueryRow(ctx, query, gameID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVideoGameNotFound
		}
		return nil, fmt.Errorf("failed to get video game: %w", err)
	}
	return game, nil
}

// GetForUpdate retrieves a video game with row-level lock
func (r *VideoGameRepositoryImpl) GetForUpdate(ctx context.Context, gameID int64, tx pgx.Tx) (*model.VideoGame, error) {
	query := `SELECT ` + videoGameColumns + ` FROM video_games WHERE id = $1 FOR UPDATE`

	game, err := scanVideoGame(tx.QueryRow(ctx, query, gameID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVideoGameNotFound
		}
		return nil, fmt.Errorf("failed to get video game for update: %w", err)
	}
	return game, nil
}

// GetByTitleForUpdate retrieves a video game by title with row-level lock
func (r *VideoGameRepositoryImpl) GetByTitleForUpdate(ctx context.Context, title string, tx pgx.Tx) (*model.VideoGame, error) {
	query := `SELECT ` + videoGameColumns + ` FROM video_games WHERE title = $1 FOR UPDATE`

	game, err := scanVideoGame(tx.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVideoGameNotFound
		}
		return nil, fmt.Errorf("failed to get video game by title for update: %w", err)
	}
	return game, nil
}

// List retrieves the catalog
func (r *VideoGameRepositoryImpl) List(ctx context.Context) ([]*model.VideoGame, error) {
	query := `SELECT ` + videoGameColumns + ` FROM video_games ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query video games: %w", err)
	}
	defer rows.Close()

	games := []*model.VideoGame{}
	for rows.Next() {
		game, err := scanVideoGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate video games: %w", err)
	}
	return games, nil
}

// UpdateQuantity sets the stock of a video game
func (r *VideoGameRepositoryImpl) UpdateQuantity(ctx context.Context, gameID int64, quantity int, tx pgx.Tx) error {
	query := `
        UPDATE video_games
        SET quantity = $1, updated_at = date_trunc('second', NOW())
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, quantity, gameID)
	if err != nil {
		// CONSTRAINT video_games_quantity_non_negative CHECK (quantity >= 0)
		if code, _, ok := violatedConstraint(err); ok && code == pgerrcode.CheckViolation {
			return model.ErrInsufficientStock
		}
		return fmt.Errorf("failed to update quantity: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrVideoGameNotFound
	}
	return nil
}

func (r *VideoGameRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM video_games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count video games: %w", err)
	}
	return n, nil
}
