package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamevault/internal/model"
	"gamevault/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository.
// Ledger rows are only ever inserted, except reservations which are deleted
// once cancelled or converted to a purchase.
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const (
	purchaseColumns     = `id, gamer_id, video_game_id, title, creator, quantity, cost, created_at`
	reservationColumns  = `id, gamer_id, video_game_id, title, creator, quantity, cost, credits_paid, credits_to_pay, latest_purchase_date, created_at`
	cancellationColumns = `id, reservation_id, gamer_id, video_game_id, title, creator, quantity, cost, credits_paid, credits_to_pay, latest_purchase_date, cancelled_at, reason, created_at`
)

func scanPurchase(row pgx.Row) (*model.Purchase, error) {
	p := &model.Purchase{}
	if err := row.Scan(&p.ID, &p.GamerID, &p.VideoGameID, &p.Title, &p.Creator, &p.Quantity, &p.Cost, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func scanReservation(row pgx.Row) (*model.Reservation, error) {
	r := &model.Reservation{}
	err := row.Scan(&r.ID, &r.GamerID, &r.VideoGameID, &r.Title, &r.Creator, &r.Quantity, &r.Cost,
		&r.CreditsPaid, &r.CreditsToPay, &r.LatestPurchaseDate, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanCancellation(row pgx.Row) (*model.Cancellation, error) {
	c := &model.Cancellation{}
	err := row.Scan(&c.ID, &c.ReservationID, &c.GamerID, &c.VideoGameID, &c.Title, &c.Creator, &c.Quantity, &c.Cost,
		&c.CreditsPaid, &c.CreditsToPay, &c.LatestPurchaseDate, &c.CancelledAt, &c.Reason, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// InsertPurchase creates a new purchase record
func (r *LedgerRepositoryImpl) InsertPurchase(ctx context.Context, p *model.Purchase, tx pgx.Tx) error {
	query := `
        INSERT INTO purchases (gamer_id, video_game_id, title, creator, quantity, cost, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`

	err := tx.QueryRow(ctx, query, p.GamerID, p.VideoGameID, p.Title, p.Creator, p.Quantity, p.Cost, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}
	return nil
}

// InsertReservation creates a new reservation record
func (r *LedgerRepositoryImpl) InsertReservation(ctx context.Context, res *model.Reservation, tx pgx.Tx) error {
	query := `
        INSERT INTO reservations (gamer_id, video_game_id, title, creator, quantity, cost, credits_paid, credits_to_pay, latest_purchase_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id`

	err := tx.QueryRow(ctx, query, res.GamerID, res.VideoGameID, res.Title, res.Creator, res.Quantity, res.Cost,
		res.CreditsPaid, res.CreditsToPay, res.LatestPurchaseDate, res.CreatedAt).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

// InsertCancellation creates a new cancellation record. A second cancellation
// of the same reservation violates cancellations_reservation_id_key.
func (r *LedgerRepositoryImpl) InsertCancellation(ctx context.Context, c *model.Cancellation, tx pgx.Tx) error {
	query := `
        INSERT INTO cancellations (reservation_id, gamer_id, video_game_id, title, creator, quantity, cost,
                                   credits_paid, credits_to_pay, latest_purchase_date, cancelled_at, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id`

	err := tx.QueryRow(ctx, query, c.ReservationID, c.GamerID, c.VideoGameID, c.Title, c.Creator, c.Quantity, c.Cost,
		c.CreditsPaid, c.CreditsToPay, c.LatestPurchaseDate, c.CancelledAt, c.Reason, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		if code, _, ok := violatedConstraint(err); ok && code == pgerrcode.UniqueViolation {
			return model.ErrReservationNotFound
		}
		return fmt.Errorf("failed to insert cancellation: %w", err)
	}
	return nil
}

// GetReservation retrieves a reservation by id
func (r *LedgerRepositoryImpl) GetReservation(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	executor := r.getExecutor(tx...)
	res, err := scanReservation(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// GetReservationForUpdate retrieves a reservation with row-level lock
func (r *LedgerRepositoryImpl) GetReservationForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	res, err := scanReservation(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation for update: %w", err)
	}
	return res, nil
}

// DeleteReservation permanently removes a reservation
func (r *LedgerRepositoryImpl) DeleteReservation(ctx context.Context, id int64, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrReservationNotFound
	}
	return nil
}

func (r *LedgerRepositoryImpl) ListPurchasesByGamer(ctx context.Context, gamerID int64, tx ...pgx.Tx) ([]*model.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE gamer_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.getExecutor(tx...).Query(ctx, query, gamerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []*model.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (r *LedgerRepositoryImpl) ListReservationsByGamer(ctx context.Context, gamerID int64, tx ...pgx.Tx) ([]*model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE gamer_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.getExecutor(tx...).Query(ctx, query, gamerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	reservations := []*model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *LedgerRepositoryImpl) ListCancellationsByGamer(ctx context.Context, gamerID int64, tx ...pgx.Tx) ([]*model.Cancellation, error) {
	query := `SELECT ` + cancellationColumns + ` FROM cancellations WHERE gamer_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.getExecutor(tx...).Query(ctx, query, gamerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cancellations: %w", err)
	}
	defer rows.Close()

	cancellations := []*model.Cancellation{}
	for rows.Next() {
		c, err := scanCancellation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cancellation: %w", err)
		}
		cancellations = append(cancellations, c)
	}
	return cancellations, rows.Err()
}

// GetExpiredReservations retrieves the oldest reservations past their latest purchase date
func (r *LedgerRepositoryImpl) GetExpiredReservations(ctx context.Context, before time.Time, limit int) ([]*model.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE latest_purchase_date < $1
        ORDER BY latest_purchase_date
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired reservations: %w", err)
	}
	defer rows.Close()

	reservations := []*model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// LockReservationForCancellation locks a reservation row if no other worker holds it
func (r *LedgerRepositoryImpl) LockReservationForCancellation(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `SELECT id FROM reservations WHERE id = $1 FOR UPDATE SKIP LOCKED`

	var lockedID int64
	err := tx.QueryRow(ctx, query, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock reservation for cancellation: %w", err)
	}
	return true, nil
}
