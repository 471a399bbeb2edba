package seed

import (
	"context"
	"testing"

	"gamevault/internal/auth"
	"gamevault/internal/config"
	"gamevault/internal/model"
	"gamevault/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun_SeedsEmptyTables(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockAdminRepo := mocks.NewAdministratorRepository(t)

	var gamers []*model.Gamer
	var games []*model.VideoGame

	mockGamerRepo.On("Count", ctx).Return(int64(0), nil)
	mockGamerRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		gamers = append(gamers, args.Get(1).(*model.Gamer))
	}).Return(nil).Times(2)
	mockGameRepo.On("Count", ctx).Return(int64(0), nil)
	mockGameRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		games = append(games, args.Get(1).(*model.VideoGame))
	}).Return(nil).Times(4)

	seeder := NewSeeder(mockGamerRepo, mockGameRepo, mockAdminRepo, bcrypt.MinCost, zerolog.Nop())

	require.NoError(t, seeder.Run(ctx, config.SeedConfig{}))

	require.Len(t, gamers, 2)
	assert.Equal(t, "samtan95", gamers[0].Username)
	assert.Equal(t, "alihassan1", gamers[1].Username)
	assert.Equal(t, "100.00", gamers[0].TotalCredits.StringFixed(2))
	assert.True(t, auth.VerifyPassword(gamers[1].PasswordHash, "ZZZzzz12"))

	require.Len(t, games, 4)
	assert.Equal(t, "FIFA 20", games[0].Title)
	assert.Equal(t, 15, games[0].Quantity)
	assert.Equal(t, "20.00", games[0].Credits.StringFixed(2))
	assert.Equal(t, "WWE 2K23", games[3].Title)
	assert.Equal(t, 1, games[3].Quantity)

	mockAdminRepo.AssertNotCalled(t, "Count", mock.Anything)
}

func TestRun_SkipsPopulatedTables(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockAdminRepo := mocks.NewAdministratorRepository(t)

	mockGamerRepo.On("Count", ctx).Return(int64(2), nil)
	mockGameRepo.On("Count", ctx).Return(int64(4), nil)
	mockAdminRepo.On("Count", ctx).Return(int64(1), nil)

	seeder := NewSeeder(mockGamerRepo, mockGameRepo, mockAdminRepo, bcrypt.MinCost, zerolog.Nop())

	err := seeder.Run(ctx, config.SeedConfig{AdminName: "Site Admin", AdminUsername: "administrator", AdminPassword: "AAAaaa11"})

	require.NoError(t, err)
	mockGamerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockGameRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockAdminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRun_SeedsConfiguredAdministrator(t *testing.T) {
	ctx := context.Background()

	mockGamerRepo := mocks.NewGamerRepository(t)
	mockGameRepo := mocks.NewVideoGameRepository(t)
	mockAdminRepo := mocks.NewAdministratorRepository(t)

	mockGamerRepo.On("Count", ctx).Return(int64(2), nil)
	mockGameRepo.On("Count", ctx).Return(int64(4), nil)
	mockAdminRepo.On("Count", ctx).Return(int64(0), nil)
	mockAdminRepo.On("Create", ctx, mock.MatchedBy(func(a *model.Administrator) bool {
		return a.Username == "administrator" &&
			a.Role == model.RoleAdministrator &&
			auth.VerifyPassword(a.PasswordHash, "AAAaaa11")
	})).Return(nil)

	seeder := NewSeeder(mockGamerRepo, mockGameRepo, mockAdminRepo, bcrypt.MinCost, zerolog.Nop())

	err := seeder.Run(ctx, config.SeedConfig{
		AdminName:     "Site Admin",
		AdminUsername: "administrator",
		AdminEmail:    "admin@gamevault.com",
		AdminPassword: "AAAaaa11",
	})

	require.NoError(t, err)
}
