package service

import (
	"context"
	"fmt"
	"time"

	"gamevault/internal/model"
	"gamevault/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type LedgerServiceImpl struct {
	ledgerRepo repository.LedgerRepository
	logger     zerolog.Logger
	now        func() time.Time
}

func NewLedgerService(ledgerRepo repository.LedgerRepository, logger zerolog.Logger) LedgerService {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// timestamp returns the current time truncated to whole seconds
func (s *LedgerServiceImpl) timestamp() time.Time {
	return s.now().Truncate(time.Second)
}

func (s *LedgerServiceImpl) RecordPurchase(ctx context.Context, gamer *model.Gamer, game *model.VideoGame, qty int, tx pgx.Tx) (*model.Purchase, error) {
	purchase := model.NewPurchase(gamer.ID, game, qty, s.timestamp())
	if err := s.ledgerRepo.InsertPurchase(ctx, purchase, tx); err != nil {
		return nil, fmt.Errorf("insert purchase: %w", err)
	}

	s.logger.Info().
		Int64("purchase_id", purchase.ID).
		Int64("gamer_id", gamer.ID).
		Int64("video_game_id", game.ID).
		Int("quantity", qty).
		Str("cost", purchase.Cost.StringFixed(2)).
		Msg("purchase recorded")
	return purchase, nil
}

func (s *LedgerServiceImpl) RecordReservation(ctx context.Context, gamer *model.Gamer, game *model.VideoGame, qty int, tx pgx.Tx) (*model.Reservation, error) {
	reservation := model.NewReservation(gamer.ID, game, qty, s.timestamp())
	if err := s.ledgerRepo.InsertReservation(ctx, reservation, tx); err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	s.logger.Info().
		Int64("reservation_id", reservation.ID).
		Int64("gamer_id", gamer.ID).
		Int64("video_game_id", game.ID).
		Int("quantity", qty).
		Str("cost", reservation.Cost.StringFixed(2)).
		Str("credits_paid", reservation.CreditsPaid.StringFixed(2)).
		Str("credits_to_pay", reservation.CreditsToPay.StringFixed(2)).
		Time("latest_purchase_date", reservation.LatestPurchaseDate).
		Msg("reservation recorded")
	return reservation, nil
}

func (s *LedgerServiceImpl) FindReservation(ctx context.Context, reservationID int64) (*model.Reservation, error) {
	res, err := s.ledgerRepo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

func (s *LedgerServiceImpl) FindReservationForUpdate(ctx context.Context, reservationID int64, tx pgx.Tx) (*model.Reservation, error) {
	res, err := s.ledgerRepo.GetReservationForUpdate(ctx, reservationID, tx)
	if err != nil {
		return nil, fmt.Errorf("get reservation for update: %w", err)
	}
	return res, nil
}

func (s *LedgerServiceImpl) RecordCancellation(ctx context.Context, gamer *model.Gamer, res *model.Reservation, reason string, tx pgx.Tx) (*model.Cancellation, error) {
	cancellation := model.NewCancellation(res, reason, s.timestamp())
	if err := s.ledgerRepo.InsertCancellation(ctx, cancellation, tx); err != nil {
		return nil, fmt.Errorf("insert cancellation: %w", err)
	}

	s.logger.Info().
		Int64("cancellation_id", cancellation.ID).
		Int64("reservation_id", res.ID).
		Int64("gamer_id", gamer.ID).
		Str("reason", reason).
		Msg("cancellation recorded")
	return cancellation, nil
}

func (s *LedgerServiceImpl) DeleteReservation(ctx context.Context, res *model.Reservation, tx pgx.Tx) error {
	if err := s.ledgerRepo.DeleteReservation(ctx, res.ID, tx); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}
