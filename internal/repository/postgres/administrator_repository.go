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

var _ repository.AdministratorRepository = (*AdministratorRepositoryImpl)(nil)

type AdministratorRepositoryImpl struct {
	*TransactionManager
}

func NewAdministratorRepository(pool *pgxpool.Pool) repository.AdministratorRepository {
	return &AdministratorRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *AdministratorRepositoryImpl) Create(ctx context.Context, admin *model.Administrator) error {
	query := `
        INSERT INTO administrators (name, username, email, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, admin.Name, admin.Username, admin.Email, admin.PasswordHash, admin.Role).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		if code, constraint, ok := violatedConstraint(err); ok && code == pgerrcode.UniqueViolation {
			switch constraint {
			case "administrators_username_key":
				return model.ErrUnavailableUsername
			case "administrators_email_key":
				return model.ErrUnavailableEmail
			}
		}
		return fmt.Errorf("failed to insert administrator: %w", err)
	}
	return nil
}

func (r *AdministratorRepositoryImpl) GetByUsername(ctx context.Context, username string) (*model.Administrator, error) {
	query := `
        SELECT id, name, username, email, password_hash, role, created_at
        FROM administrators WHERE username = $1`

	a := &model.Administrator{}
	err := r.pool.QueryRow(ctx, query, username).
		Scan(&a.ID, &a.Name, &a.Username, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAdministratorNotFound
		}
		return nil, fmt.Errorf("failed to get administrator: %w", err)
	}
	return a, nil
}

func (r *AdministratorRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM administrators`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count administrators: %w", err)
	}
	return n, nil
}
