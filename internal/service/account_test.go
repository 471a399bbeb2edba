package service

import (
	"context"
	"errors"
	"testing"

	"gamevault/internal/auth"
	"gamevault/internal/model"
	"gamevault/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func samTanRequest() *model.RegistrationRequest {
	return &model.RegistrationRequest{
		Name:     "Sam Tan",
		Username: "samtan95",
		Email:    "samtan@gmail.com",
		Password: "ZZZzzz12",
	}
}

func TestRegister_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockAdminRepo := mocks.NewAdministratorRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	mockGamerRepo.On("ExistsByUsername", ctx, "samtan95").Return(false, nil)
	mockGamerRepo.On("ExistsByEmail", ctx, "samtan@gmail.com").Return(false, nil)
	mockGamerRepo.On("Create", ctx, mock.MatchedBy(func(g *model.Gamer) bool {
		return g.Name == "Sam Tan" &&
			g.Username == "samtan95" &&
			g.Email == "samtan@gmail.com" &&
			g.Role == model.RoleGamer &&
			g.TotalCredits.Equal(decimal.NewFromInt(100)) &&
			auth.VerifyPassword(g.PasswordHash, "ZZZzzz12")
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Gamer).ID = 1
	}).Return(nil)

	service := NewAccountService(mockGamerRepo, mockAdminRepo, mockLedgerRepo, bcrypt.MinCost, logger)

	gamer, err := service.Register(ctx, samTanRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), gamer.ID)
	assert.Equal(t, "100.00", gamer.TotalCredits.StringFixed(2))
	assert.NotEqual(t, "ZZZzzz12", gamer.PasswordHash)
}

func TestRegister_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *model.RegistrationRequest)
		wantErr error
	}{
		{
			name: "invalid name reported before everything else",
			mutate: func(r *model.RegistrationRequest) {
				r.Name = "sam"
				r.Username = "x"
				r.Email = "bad"
				r.Password = "weak"
			},
			wantErr: model.ErrInvalidName,
		},
		{
			name: "single word name",
			mutate: func(r *model.RegistrationRequest) {
				r.Name = "Sam"
			},
			wantErr: model.ErrInvalidName,
		},
		{
			name: "short username reported before email",
			mutate: func(r *model.RegistrationRequest) {
				r.Username = "samtan"
				r.Email = "bad"
			},
			wantErr: model.ErrInvalidUsername,
		},
		{
			name: "username starting with a digit",
			mutate: func(r *model.RegistrationRequest) {
				r.Username = "9samtan95"
			},
			wantErr: model.ErrInvalidUsername,
		},
		{
			name: "email without .com domain",
			mutate: func(r *model.RegistrationRequest) {
				r.Email = "samtan@gmail.org"
				r.Password = "weak"
			},
			wantErr: model.ErrInvalidEmail,
		},
		{
			name: "password with too few uppercase letters",
			mutate: func(r *model.RegistrationRequest) {
				r.Password = "ZZzzzz12"
			},
			wantErr: model.ErrInvalidPassword,
		},
		{
			name: "password with one digit",
			mutate: func(r *model.RegistrationRequest) {
				r.Password = "ZZZzzzz1"
			},
			wantErr: model.ErrInvalidPassword,
		},
		{
			name: "password with a space",
			mutate: func(r *model.RegistrationRequest) {
				r.Password = "ZZZ zzz12"
			},
			wantErr: model.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockGamerRepo := mocks.NewGamerRepository(t)
			service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

			req := samTanRequest()
			tt.mutate(req)

			_, err := service.Register(ctx, req)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			mockGamerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_UnavailableUsername(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockGamerRepo.On("ExistsByUsername", ctx, "samtan95").Return(true, nil)

	service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	_, err := service.Register(ctx, samTanRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnavailableUsername))
	mockGamerRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestRegister_UnavailableEmail(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockGamerRepo.On("ExistsByUsername", ctx, "samtan95").Return(false, nil)
	mockGamerRepo.On("ExistsByEmail", ctx, "samtan@gmail.com").Return(true, nil)

	service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	_, err := service.Register(ctx, samTanRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnavailableEmail))
}

func TestRegister_CreateConflictIsPropagated(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockGamerRepo.On("ExistsByUsername", ctx, "samtan95").Return(false, nil)
	mockGamerRepo.On("ExistsByEmail", ctx, "samtan@gmail.com").Return(false, nil)
	mockGamerRepo.On("Create", ctx, mock.Anything).Return(model.ErrUnavailableUsername)

	service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	_, err := service.Register(ctx, samTanRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnavailableUsername))
}

func TestAuthenticateGamer(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("ZZZzzz12", bcrypt.MinCost)
	require.NoError(t, err)

	stored := model.NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", hash)
	stored.ID = 1

	t.Run("valid credentials", func(t *testing.T) {
		mockGamerRepo := mocks.NewGamerRepository(t)
		mockGamerRepo.On("GetByUsername", ctx, "samtan95").Return(stored, nil)
		service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

		principal, err := service.AuthenticateGamer(ctx, "samtan95", "ZZZzzz12")

		require.NoError(t, err)
		assert.Equal(t, int64(1), principal.ID)
		assert.Equal(t, model.RoleGamer, principal.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockGamerRepo := mocks.NewGamerRepository(t)
		mockGamerRepo.On("GetByUsername", ctx, "samtan95").Return(stored, nil)
		service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

		_, err := service.AuthenticateGamer(ctx, "samtan95", "ZZZzzz13")

		assert.ErrorIs(t, err, model.ErrLoginFailed)
	})

	t.Run("unknown username", func(t *testing.T) {
		mockGamerRepo := mocks.NewGamerRepository(t)
		mockGamerRepo.On("GetByUsername", ctx, "nobody123").Return(nil, model.ErrGamerNotFound)
		service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

		_, err := service.AuthenticateGamer(ctx, "nobody123", "ZZZzzz12")

		assert.ErrorIs(t, err, model.ErrLoginFailed)
	})

	t.Run("repository failure is not a login failure", func(t *testing.T) {
		mockGamerRepo := mocks.NewGamerRepository(t)
		mockGamerRepo.On("GetByUsername", ctx, "samtan95").Return(nil, errors.New("connection reset"))
		service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

		_, err := service.AuthenticateGamer(ctx, "samtan95", "ZZZzzz12")

		require.Error(t, err)
		assert.False(t, errors.Is(err, model.ErrLoginFailed))
	})
}

func TestAuthenticateAdministrator(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("AAAaaa11", bcrypt.MinCost)
	require.NoError(t, err)

	admin := model.NewAdministrator("Admin User", "administrator", "admin@gamevault.com", hash)
	admin.ID = 3

	mockAdminRepo := mocks.NewAdministratorRepository(t)
	mockAdminRepo.On("GetByUsername", ctx, "administrator").Return(admin, nil)
	mockAdminRepo.On("GetByUsername", ctx, "samtan95").Return(nil, model.ErrAdministratorNotFound)

	service := NewAccountService(mocks.NewGamerRepository(t), mockAdminRepo, mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	principal, err := service.AuthenticateAdministrator(ctx, "administrator", "AAAaaa11")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdministrator, principal.Role)

	_, err = service.AuthenticateAdministrator(ctx, "samtan95", "ZZZzzz12")
	assert.ErrorIs(t, err, model.ErrLoginFailed)
}

func TestRegisterAdministrator(t *testing.T) {
	ctx := context.Background()
	req := &model.RegistrationRequest{Name: "Site Admin", Username: "administrator", Email: "admin@gamevault.com", Password: "AAAaaa11"}

	mockAdminRepo := mocks.NewAdministratorRepository(t)
	mockAdminRepo.On("Create", ctx, mock.MatchedBy(func(a *model.Administrator) bool {
		return a.Username == "administrator" &&
			a.Role == model.RoleAdministrator &&
			auth.VerifyPassword(a.PasswordHash, "AAAaaa11")
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Administrator).ID = 2
	}).Return(nil).Once()

	service := NewAccountService(mocks.NewGamerRepository(t), mockAdminRepo, mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	admin, err := service.RegisterAdministrator(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), admin.ID)

	t.Run("Invalid password never reaches the repository", func(t *testing.T) {
		bad := *req
		bad.Password = "weak"
		_, err := service.RegisterAdministrator(ctx, &bad)
		assert.ErrorIs(t, err, model.ErrInvalidPassword)
	})

	t.Run("Taken username", func(t *testing.T) {
		mockAdminRepo.On("Create", ctx, mock.Anything).Return(model.ErrUnavailableUsername).Once()
		_, err := service.RegisterAdministrator(ctx, req)
		assert.ErrorIs(t, err, model.ErrUnavailableUsername)
	})
}

func TestGetGamer_LoadsHistories(t *testing.T) {
	ctx := context.Background()

	gamer := model.NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", "hash")
	gamer.ID = 1
	purchases := []*model.Purchase{{LedgerEntry: model.LedgerEntry{ID: 2, GamerID: 1}}}
	reservations := []*model.Reservation{{LedgerEntry: model.LedgerEntry{ID: 4, GamerID: 1}}}

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockGamerRepo.On("GetByID", ctx, int64(1)).Return(gamer, nil)
	mockLedgerRepo.On("ListPurchasesByGamer", ctx, int64(1)).Return(purchases, nil)
	mockLedgerRepo.On("ListReservationsByGamer", ctx, int64(1)).Return(reservations, nil)
	mockLedgerRepo.On("ListCancellationsByGamer", ctx, int64(1)).Return([]*model.Cancellation{}, nil)

	service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mockLedgerRepo, bcrypt.MinCost, zerolog.Nop())

	got, err := service.GetGamer(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, got.PurchaseHistory, 1)
	assert.Len(t, got.ReservationHistory, 1)
	assert.Empty(t, got.CancellationHistory)
}

func TestGetGamer_NotFound(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockGamerRepo.On("GetByID", ctx, int64(42)).Return(nil, model.ErrGamerNotFound)

	service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	_, err := service.GetGamer(ctx, 42)

	assert.ErrorIs(t, err, model.ErrGamerNotFound)
}

func TestCheckAffordable(t *testing.T) {
	service := NewAccountService(mocks.NewGamerRepository(t), mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	gamer := model.NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", "hash")
	game := &model.VideoGame{ID: 1, Title: "FIFA 20", Quantity: 15, Credits: decimal.NewFromInt(20)}

	cost, err := service.CheckAffordable(gamer, game, 5, model.KindPurchase)
	require.NoError(t, err)
	assert.Equal(t, "100.00", cost.StringFixed(2))

	_, err = service.CheckAffordable(gamer, game, 6, model.KindPurchase)
	assert.ErrorIs(t, err, model.ErrInsufficientCredits)

	// The remaining 80% of 6 units is within the balance.
	cost, err = service.CheckAffordable(gamer, game, 6, model.KindCompleteReservationPurchase)
	require.NoError(t, err)
	assert.Equal(t, "96.00", cost.StringFixed(2))

	_, err = service.CheckAffordable(gamer, game, 1, model.KindCancellation)
	assert.ErrorIs(t, err, model.ErrInvalidTransactionKind)
}

func TestDebitCredits(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockGamerRepo.On("UpdateCredits", ctx, int64(1), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("59.99"))
	}), mock.Anything).Return(nil)

	service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	gamer := model.NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", "hash")
	gamer.ID = 1

	err := service.DebitCredits(ctx, gamer, decimal.RequireFromString("40.006"), nil)

	require.NoError(t, err)
	assert.Equal(t, "59.99", gamer.TotalCredits.StringFixed(2))
	assert.Equal(t, 1, gamer.Version)
}

func TestDebitCredits_RefusesNegativeBalance(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	service := NewAccountService(mockGamerRepo, mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	gamer := model.NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", "hash")
	gamer.ID = 1

	err := service.DebitCredits(ctx, gamer, decimal.RequireFromString("100.01"), nil)

	assert.ErrorIs(t, err, model.ErrInsufficientCredits)
	assert.Equal(t, "100.00", gamer.TotalCredits.StringFixed(2))
	mockGamerRepo.AssertNotCalled(t, "UpdateCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveReservation_GamerLoadedWithoutHistories(t *testing.T) {
	service := NewAccountService(mocks.NewGamerRepository(t), mocks.NewAdministratorRepository(t), mocks.NewLedgerRepository(t), bcrypt.MinCost, zerolog.Nop())

	locked := gamerWithCredits("92")
	res := reservationOf(fifa20(15), 2)

	service.RemoveReservation(locked, res)
	assert.Empty(t, locked.ReservationHistory)

	loaded := gamerWithCredits("92")
	loaded.AppendHistory(res)
	service.RemoveReservation(loaded, res)
	assert.Empty(t, loaded.ReservationHistory)
}
