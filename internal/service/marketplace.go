package service

import (
	"context"
	"fmt"

	"gamevault/internal/model"
	"gamevault/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// MarketplaceServiceImpl runs the gamer pipelines. Rows are always locked in
// the order gamer, reservation, video game.
type MarketplaceServiceImpl struct {
	catalog   CatalogService
	accounts  AccountService
	ledger    LedgerService
	dbManager repository.DBManager
	publisher EventPublisher
	logger    zerolog.Logger
}

func NewMarketplaceService(
	catalog CatalogService,
	accounts AccountService,
	ledger LedgerService,
	dbManager repository.DBManager,
	publisher EventPublisher,
	logger zerolog.Logger,
) MarketplaceService {
	return &MarketplaceServiceImpl{
		catalog:   catalog,
		accounts:  accounts,
		ledger:    ledger,
		dbManager: dbManager,
		publisher: publisher,
		logger:    logger,
	}
}

func validateQuantity(qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1, got %d", model.ErrInvalidQuantity, qty)
	}
	return nil
}

func (s *MarketplaceServiceImpl) Buy(ctx context.Context, gamerID, gameID int64, qty int) (*model.TransactionResponse, error) {
	if err := validateQuantity(qty); err != nil {
		return nil, err
	}

	var (
		gamer    *model.Gamer
		purchase *model.Purchase
		charged  decimal.Decimal
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		gamer, err = s.accounts.GetGamerForUpdate(ctx, gamerID, tx)
		if err != nil {
			return err
		}

		game, err := s.catalog.GetGameForUpdate(ctx, gameID, tx)
		if err != nil {
			return err
		}

		if err := s.catalog.CheckStock(game, qty); err != nil {
			return err
		}

		charged, err = s.accounts.CheckAffordable(gamer, game, qty, model.KindPurchase)
		if err != nil {
			return err
		}

		if err := s.catalog.AdjustStock(ctx, game, qty, model.KindPurchase, tx); err != nil {
			return err
		}

		purchase, err = s.ledger.RecordPurchase(ctx, gamer, game, qty, tx)
		if err != nil {
			return err
		}

		if err := s.accounts.DebitCredits(ctx, gamer, charged, tx); err != nil {
			return err
		}

		s.accounts.AppendHistory(gamer, purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.catalog.InvalidateListing(ctx)
	s.publish(ctx, purchase, charged, gamer.TotalCredits)

	s.logger.Info().
		Int64("gamer_id", gamerID).
		Int64("video_game_id", gameID).
		Int("quantity", qty).
		Str("charged", charged.StringFixed(2)).
		Str("new_balance", gamer.TotalCredits.StringFixed(2)).
		Msg("purchase completed")

	return newTransactionResponse("Successful purchase.", purchase, charged, gamer.TotalCredits), nil
}

// Reserve holds stock for the gamer. Affordability is checked against the full
// price while only the deposit is debited.
func (s *MarketplaceServiceImpl) Reserve(ctx context.Context, gamerID, gameID int64, qty int) (*model.TransactionResponse, error) {
	if err := validateQuantity(qty); err != nil {
		return nil, err
	}

	var (
		gamer       *model.Gamer
		reservation *model.Reservation
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		gamer, err = s.accounts.GetGamerForUpdate(ctx, gamerID, tx)
		if err != nil {
			return err
		}

		game, err := s.catalog.GetGameForUpdate(ctx, gameID, tx)
		if err != nil {
			return err
		}

		if err := s.catalog.CheckStock(game, qty); err != nil {
			return err
		}

		if _, err := s.accounts.CheckAffordable(gamer, game, qty, model.KindReservation); err != nil {
			return err
		}

		if err := s.catalog.AdjustStock(ctx, game, qty, model.KindReservation, tx); err != nil {
			return err
		}

		reservation, err = s.ledger.RecordReservation(ctx, gamer, game, qty, tx)
		if err != nil {
			return err
		}

		if err := s.accounts.DebitCredits(ctx, gamer, reservation.CreditsPaid, tx); err != nil {
			return err
		}

		s.accounts.AppendHistory(gamer, reservation)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.catalog.InvalidateListing(ctx)
	s.publish(ctx, reservation, reservation.CreditsPaid, gamer.TotalCredits)

	s.logger.Info().
		Int64("gamer_id", gamerID).
		Int64("video_game_id", gameID).
		Int64("reservation_id", reservation.ID).
		Int("quantity", qty).
		Str("charged", reservation.CreditsPaid.StringFixed(2)).
		Str("new_balance", gamer.TotalCredits.StringFixed(2)).
		Msg("reservation completed")

	return newTransactionResponse("Successful reservation.", reservation, reservation.CreditsPaid, gamer.TotalCredits), nil
}

// lockOwnedReservation locks the reservation and hides reservations of other gamers
func (s *MarketplaceServiceImpl) lockOwnedReservation(ctx context.Context, gamer *model.Gamer, reservationID int64, tx pgx.Tx) (*model.Reservation, error) {
	res, err := s.ledger.FindReservationForUpdate(ctx, reservationID, tx)
	if err != nil {
		return nil, err
	}
	if res.GamerID != gamer.ID {
		return nil, fmt.Errorf("%w: reservation %d does not belong to gamer %d", model.ErrReservationNotFound, reservationID, gamer.ID)
	}
	return res, nil
}

// CancelReservation cancels manually. The deposit is not refunded.
func (s *MarketplaceServiceImpl) CancelReservation(ctx context.Context, gamerID, reservationID int64) (*model.TransactionResponse, error) {
	var (
		gamer        *model.Gamer
		cancellation *model.Cancellation
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		gamer, err = s.accounts.GetGamerForUpdate(ctx, gamerID, tx)
		if err != nil {
			return err
		}

		res, err := s.lockOwnedReservation(ctx, gamer, reservationID, tx)
		if err != nil {
			return err
		}

		cancellation, err = s.ledger.RecordCancellation(ctx, gamer, res, model.ManualCancellationReason, tx)
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
		return nil, err
	}

	s.catalog.InvalidateListing(ctx)
	s.publish(ctx, cancellation, decimal.Zero, gamer.TotalCredits)

	s.logger.Info().
		Int64("gamer_id", gamerID).
		Int64("reservation_id", reservationID).
		Int("quantity", cancellation.Quantity).
		Msg("reservation cancelled")

	return newTransactionResponse("Successful cancellation.", cancellation, decimal.Zero, gamer.TotalCredits), nil
}

// CompleteReservationPurchase charges the remaining 80% at the current unit
// price and removes the reservation. Stock was already taken by the reservation.
func (s *MarketplaceServiceImpl) CompleteReservationPurchase(ctx context.Context, gamerID, reservationID int64) (*model.TransactionResponse, error) {
	var (
		gamer    *model.Gamer
		purchase *model.Purchase
		charged  decimal.Decimal
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		gamer, err = s.accounts.GetGamerForUpdate(ctx, gamerID, tx)
		if err != nil {
			return err
		}

		res, err := s.lockOwnedReservation(ctx, gamer, reservationID, tx)
		if err != nil {
			return err
		}

		game, err := s.catalog.GetGameByTitleForUpdate(ctx, res.Title, tx)
		if err != nil {
			return err
		}

		charged, err = s.accounts.CheckAffordable(gamer, game, res.Quantity, model.KindCompleteReservationPurchase)
		if err != nil {
			return err
		}

		purchase, err = s.ledger.RecordPurchase(ctx, gamer, game, res.Quantity, tx)
		if err != nil {
			return err
		}

		if err := s.accounts.DebitCredits(ctx, gamer, charged, tx); err != nil {
			return err
		}

		s.accounts.AppendHistory(gamer, purchase)
		s.accounts.RemoveReservation(gamer, res)

		return s.ledger.DeleteReservation(ctx, res, tx)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, purchase, charged, gamer.TotalCredits)

	s.logger.Info().
		Int64("gamer_id", gamerID).
		Int64("reservation_id", reservationID).
		Int64("purchase_id", purchase.ID).
		Str("charged", charged.StringFixed(2)).
		Str("new_balance", gamer.TotalCredits.StringFixed(2)).
		Msg("reservation purchase completed")

	return newTransactionResponse("Successful purchase.", purchase, charged, gamer.TotalCredits), nil
}

// publish runs after commit; a failure never undoes the committed pipeline
func (s *MarketplaceServiceImpl) publish(ctx context.Context, rec model.LedgerRecord, charged, balance decimal.Decimal) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, model.NewLedgerEvent(rec, charged, balance)); err != nil {
		s.logger.Warn().
			Err(err).
			Str("kind", rec.Kind().String()).
			Int64("entry_id", rec.Entry().ID).
			Msg("failed to publish ledger event")
	}
}

func newTransactionResponse(message string, rec model.LedgerRecord, charged, balance decimal.Decimal) *model.TransactionResponse {
	return &model.TransactionResponse{
		Status:  "success",
		Message: message,
		Balance: balance.StringFixed(2),
		Charged: charged.StringFixed(2),
		Entry:   model.NewLedgerEntryResponse(rec),
	}
}
