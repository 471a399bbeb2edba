package service

import (
	"context"
	"errors"
	"fmt"

	"gamevault/internal/auth"
	"gamevault/internal/model"
	"gamevault/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type AccountServiceImpl struct {
	gamerRepo  repository.GamerRepository
	adminRepo  repository.AdministratorRepository
	ledgerRepo repository.LedgerRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewAccountService(
	gamerRepo repository.GamerRepository,
	adminRepo repository.AdministratorRepository,
	ledgerRepo repository.LedgerRepository,
	bcryptCost int,
	logger zerolog.Logger,
) AccountService {
	return &AccountServiceImpl{
		gamerRepo:  gamerRepo,
		adminRepo:  adminRepo,
		ledgerRepo: ledgerRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// validateRegistration checks the fields in a fixed order and reports the first failure
func validateRegistration(req *model.RegistrationRequest) error {
	switch {
	case !validName(req.Name):
		return fmt.Errorf("%w: %q", model.ErrInvalidName, req.Name)
	case !validUsername(req.Username):
		return fmt.Errorf("%w: %q", model.ErrInvalidUsername, req.Username)
	case !validEmail(req.Email):
		return fmt.Errorf("%w: %q", model.ErrInvalidEmail, req.Email)
	case !validPassword(req.Password):
		return model.ErrInvalidPassword
	}
	return nil
}

func (s *AccountServiceImpl) Register(ctx context.Context, req *model.RegistrationRequest) (*model.Gamer, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	taken, err := s.gamerRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", model.ErrUnavailableUsername, req.Username)
	}

	taken, err = s.gamerRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", model.ErrUnavailableEmail, req.Email)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	gamer := model.NewGamer(req.Name, req.Username, req.Email, hash)
	if err := s.gamerRepo.Create(ctx, gamer); err != nil {
		return nil, fmt.Errorf("create gamer: %w", err)
	}

	s.logger.Info().
		Int64("gamer_id", gamer.ID).
		Str("username", gamer.Username).
		Str("total_credits", gamer.TotalCredits.StringFixed(2)).
		Msg("gamer registered")

	return gamer, nil
}

func (s *AccountServiceImpl) RegisterAdministrator(ctx context.Context, req *model.RegistrationRequest) (*model.Administrator, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := model.NewAdministrator(req.Name, req.Username, req.Email, hash)
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create administrator: %w", err)
	}

	s.logger.Info().Int64("administrator_id", admin.ID).Str("username", admin.Username).Msg("administrator registered")
	return admin, nil
}

// AuthenticateGamer returns ErrLoginFailed for an unknown username and for a wrong password alike
func (s *AccountServiceImpl) AuthenticateGamer(ctx context.Context, username, password string) (*model.Principal, error) {
	gamer, err := s.gamerRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrGamerNotFound) {
			auth.VerifyUnknown(password)
			s.logger.Warn().Str("username", username).Msg("login failed")
			return nil, model.ErrLoginFailed
		}
		return nil, fmt.Errorf("get gamer by username: %w", err)
	}

	if !auth.VerifyPassword(gamer.PasswordHash, password) {
		s.logger.Warn().Str("username", username).Msg("login failed")
		return nil, model.ErrLoginFailed
	}

	s.logger.Info().Int64("gamer_id", gamer.ID).Str("username", gamer.Username).Msg("gamer logged in")
	return &model.Principal{ID: gamer.ID, Username: gamer.Username, Role: model.RoleGamer}, nil
}

func (s *AccountServiceImpl) AuthenticateAdministrator(ctx context.Context, username, password string) (*model.Principal, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAdministratorNotFound) {
			auth.VerifyUnknown(password)
			s.logger.Warn().Str("username", username).Msg("administrator login failed")
			return nil, model.ErrLoginFailed
		}
		return nil, fmt.Errorf("get administrator by username: %w", err)
	}

	if !auth.VerifyPassword(admin.PasswordHash, password) {
		s.logger.Warn().Str("username", username).Msg("administrator login failed")
		return nil, model.ErrLoginFailed
	}

	return &model.Principal{ID: admin.ID, Username: admin.Username, Role: model.RoleAdministrator}, nil
}

func (s *AccountServiceImpl) GetGamer(ctx context.Context, gamerID int64) (*model.Gamer, error) {
	gamer, err := s.gamerRepo.GetByID(ctx, gamerID)
	if err != nil {
		return nil, fmt.Errorf("get gamer: %w", err)
	}

	if gamer.PurchaseHistory, err = s.ledgerRepo.ListPurchasesByGamer(ctx, gamerID); err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	if gamer.ReservationHistory, err = s.ledgerRepo.ListReservationsByGamer(ctx, gamerID); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	if gamer.CancellationHistory, err = s.ledgerRepo.ListCancellationsByGamer(ctx, gamerID); err != nil {
		return nil, fmt.Errorf("list cancellations: %w", err)
	}
	return gamer, nil
}

func (s *AccountServiceImpl) GetGamerForUpdate(ctx context.Context, gamerID int64, tx pgx.Tx) (*model.Gamer, error) {
	gamer, err := s.gamerRepo.GetForUpdate(ctx, gamerID, tx)
	if err != nil {
		return nil, fmt.Errorf("get gamer for update: %w", err)
	}
	return gamer, nil
}

func (s *AccountServiceImpl) CheckAffordable(gamer *model.Gamer, game *model.VideoGame, qty int, kind model.TransactionKind) (decimal.Decimal, error) {
	cost, err := model.TransactionCost(game.Credits, qty, kind)
	if err != nil {
		return decimal.Zero, err
	}
	cost = model.RoundCredits(cost)

	if gamer.TotalCredits.LessThan(cost) {
		return decimal.Zero, fmt.Errorf("%w: cost %s, balance %s",
			model.ErrInsufficientCredits, cost.StringFixed(2), gamer.TotalCredits.StringFixed(2))
	}
	return cost, nil
}

// DebitCredits subtracts amount from the balance, rounding half-up to two decimals
func (s *AccountServiceImpl) DebitCredits(ctx context.Context, gamer *model.Gamer, amount decimal.Decimal, tx pgx.Tx) error {
	newCredits := model.RoundCredits(gamer.TotalCredits.Sub(amount))
	if newCredits.IsNegative() {
		return fmt.Errorf("%w: cost %s, balance %s",
			model.ErrInsufficientCredits, amount.StringFixed(2), gamer.TotalCredits.StringFixed(2))
	}

	if err := s.gamerRepo.UpdateCredits(ctx, gamer.ID, newCredits, tx); err != nil {
		return fmt.Errorf("update credits: %w", err)
	}

	s.logger.Debug().
		Int64("gamer_id", gamer.ID).
		Str("amount", amount.StringFixed(2)).
		Str("old_balance", gamer.TotalCredits.StringFixed(2)).
		Str("new_balance", newCredits.StringFixed(2)).
		Msg("credits debited")

	gamer.TotalCredits = newCredits
	gamer.Version++
	return nil
}

func (s *AccountServiceImpl) AppendHistory(gamer *model.Gamer, rec model.LedgerRecord) {
	gamer.AppendHistory(rec)
}

// RemoveReservation drops res from the in-memory view. Inside a pipeline the
// gamer comes from GetGamerForUpdate without histories, so this is a no-op
// there; the deleted reservation row is the persisted history.
func (s *AccountServiceImpl) RemoveReservation(gamer *model.Gamer, res *model.Reservation) {
	gamer.RemoveReservation(res.ID)
}
