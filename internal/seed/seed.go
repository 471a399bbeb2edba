package seed

import (
	"context"
	"fmt"

	"gamevault/internal/auth"
	"gamevault/internal/config"
	"gamevault/internal/model"
	"gamevault/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultGamerPassword = "ZZZzzz12"

var defaultGamers = []struct {
	name, username, email string
}{
	{"Sam Tan", "samtan95", "samtan@gmail.com"},
	{"Ali Hassan", "alihassan1", "alihassan@gmail.com"},
}

var defaultCatalog = []model.VideoGame{
	{Title: "FIFA 20", Creator: "EA Sports", YearOfPublication: 2019, Quantity: 15, Credits: decimal.NewFromInt(20)},
	{Title: "Pro Evolution Soccer 2019", Creator: "Konami", YearOfPublication: 2018, Quantity: 12, Credits: decimal.NewFromInt(10)},
	{Title: "Spider-man 2", Creator: "Treyarch", YearOfPublication: 2004, Quantity: 14, Credits: decimal.NewFromInt(4)},
	{Title: "WWE 2K23", Creator: "Visual Concepts", YearOfPublication: 2023, Quantity: 1, Credits: decimal.NewFromInt(10)},
}

type Seeder struct {
	gamerRepo  repository.GamerRepository
	gameRepo   repository.VideoGameRepository
	adminRepo  repository.AdministratorRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewSeeder(
	gamerRepo repository.GamerRepository,
	gameRepo repository.VideoGameRepository,
	adminRepo repository.AdministratorRepository,
	bcryptCost int,
	logger zerolog.Logger,
) *Seeder {
	return &Seeder{
		gamerRepo:  gamerRepo,
		gameRepo:   gameRepo,
		adminRepo:  adminRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Run fills empty tables with the sample gamers and catalog. Tables that
// already hold rows are left untouched.
func (s *Seeder) Run(ctx context.Context, cfg config.SeedConfig) error {
	if err := s.seedGamers(ctx); err != nil {
		return err
	}
	if err := s.seedCatalog(ctx); err != nil {
		return err
	}
	return s.seedAdministrator(ctx, cfg)
}

func (s *Seeder) seedGamers(ctx context.Context) error {
	count, err := s.gamerRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count gamers: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int64("gamers", count).Msg("gamers already present, skipping seed")
		return nil
	}

	hash, err := auth.HashPassword(defaultGamerPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	for _, g := range defaultGamers {
		gamer := model.NewGamer(g.name, g.username, g.email, hash)
		if err := s.gamerRepo.Create(ctx, gamer); err != nil {
			return fmt.Errorf("seed gamer %s: %w", g.username, err)
		}
	}
	s.logger.Info().Int("gamers", len(defaultGamers)).Msg("gamers seeded")
	return nil
}

func (s *Seeder) seedCatalog(ctx context.Context) error {
	count, err := s.gameRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count video games: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int64("video_games", count).Msg("catalog already present, skipping seed")
		return nil
	}

	for i := range defaultCatalog {
		game := defaultCatalog[i]
		if err := s.gameRepo.Create(ctx, &game); err != nil {
			return fmt.Errorf("seed video game %q: %w", game.Title, err)
		}
	}
	s.logger.Info().Int("video_games", len(defaultCatalog)).Msg("catalog seeded")
	return nil
}

func (s *Seeder) seedAdministrator(ctx context.Context, cfg config.SeedConfig) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count administrators: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := model.NewAdministrator(cfg.AdminName, cfg.AdminUsername, cfg.AdminEmail, hash)
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed administrator: %w", err)
	}
	s.logger.Info().Str("username", admin.Username).Msg("administrator seeded")
	return nil
}
