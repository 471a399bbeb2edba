package service

import (
	"context"
	"fmt"
	"time"

	"gamevault/internal/model"
	"gamevault/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultExpiryBatchSize = 10

type ExpiryServiceImpl struct {
	ledgerRepo repository.LedgerRepository
	catalog    CatalogService
	accounts   AccountService
	ledger     LedgerService
	dbManager  repository.DBManager
	publisher  EventPublisher
	batchSize  int
	logger     zerolog.Logger
	now        func() time.Time
}

func NewExpiryService(
	ledgerRepo repository.LedgerRepository,
	catalog CatalogService,
	accounts AccountService,
	ledger LedgerService,
	dbManager repository.DBManager,
	publisher EventPublisher,
	batchSize int,
	logger zerolog.Logger,
) ExpiryService {
	if batchSize <= 0 {
		batchSize = defaultExpiryBatchSize
	}
	return &ExpiryServiceImpl{
		ledgerRepo: ledgerRepo,
		catalog:    catalog,
		accounts:   accounts,
		ledger:     ledger,
		dbManager:  dbManager,
		publisher:  publisher,
		batchSize:  batchSize,
		logger:     logger,
		now:        time.Now,
	}
}

// CancelExpiredReservations cancels reservations whose latest purchase date has passed,
// restocking their units. The deposit is kept, as with a manual cancellation.
func (s *ExpiryServiceImpl) CancelExpiredReservations(ctx context.Context) error {
	var cancelledCount int

	reservations, err := s.ledgerRepo.GetExpiredReservations(ctx, s.now(), s.batchSize)
	if err != nil {
		return fmt.Errorf("get expired reservations: %w", err)
	}

	if len(reservations) == 0 {
		s.logger.Debug().Msg("no expired reservations to cancel")
		return nil
	}

	// Each reservation is cancelled in its own transaction
	for _, res := range reservations {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var (
			cancellation *model.Cancellation
			balance      decimal.Decimal
		)
		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			// A retried attempt must not report the aborted one's cancellation
			cancellation = nil

			gamer, err := s.accounts.GetGamerForUpdate(ctx, res.GamerID, tx)
			if err != nil {
				return err
			}
			balance = gamer.TotalCredits

			// Skip reservations another worker or a gamer request is already handling
			locked, err := s.ledgerRepo.LockReservationForCancellation(ctx, res.ID, tx)
			if err != nil {
				return fmt.Errorf("lock reservation for cancellation: %w", err)
			}
			if !locked {
				s.logger.Debug().Int64("reservation_id", res.ID).Msg("reservation already claimed or removed")
				return nil
			}

			cancellation, err = s.ledger.RecordCancellation(ctx, gamer, res, model.ExpiredCancellationReason, tx)
			if err != nil {
				return err
			}
			s.accounts.AppendHistory(gamer, cancellation)
			s.accounts.RemoveReservation(gamer, res)

			if _, err := s.catalog.Restock(ctx, res, tx); err != nil {
				return err
			}
			return s.ledger.DeleteReservation(ctx, res, tx)
		})

		if err != nil {
			s.logger.Error().
				Err(err).
				Int64("reservation_id", res.ID).
				Int64("gamer_id", res.GamerID).
				Msg("failed to cancel expired reservation")
			continue
		}
		if cancellation == nil {
			continue
		}

		cancelledCount++
		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, model.NewLedgerEvent(cancellation, decimal.Zero, balance)); err != nil {
				s.logger.Warn().Err(err).Int64("reservation_id", res.ID).Msg("failed to publish ledger event")
			}
		}

		s.logger.Info().
			Int64("reservation_id", res.ID).
			Int64("gamer_id", res.GamerID).
			Int("quantity", res.Quantity).
			Time("latest_purchase_date", res.LatestPurchaseDate).
			Msg("expired reservation cancelled and restocked")
	}

	if cancelledCount > 0 {
		s.catalog.InvalidateListing(ctx)
	}

	s.logger.Info().
		Int("requested", len(reservations)).
		Int("cancelled", cancelledCount).
		Msg("expired reservations cancellation completed")

	return nil
}
