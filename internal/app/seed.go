package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
)

// defaultBosses is the stock world-boss list seeded on first run.
var defaultBosses = []domain.BossInput{
	{Name: "QUIMERA", Level: 38, Location: "MAPA 6", RespawnTimeHours: 2},
	{Name: "THRANDIR", Level: 43, Location: "MAPA 12", RespawnTimeHours: 2},
	{Name: "CIGANTUS", Level: 48, Location: "MAPA 2", RespawnTimeHours: 3},
	{Name: "FLONEBLE", Level: 53, Location: "MAPA 5", RespawnTimeHours: 3},
	{Name: "CORVO DA MOR", Level: 63, Location: "MAPA 3", RespawnTimeHours: 4},
	{Name: "GYES", Level: 68, Location: "MAPA 10", RespawnTimeHours: 4},
	{Name: "LINDWURM", Level: 73, Location: "MAPA 8", RespawnTimeHours: 4},
	{Name: "BRIARE", Level: 78, Location: "MAPA 17", RespawnTimeHours: 3},
	{Name: "LEO", Level: 83, Location: "MAPA 19", RespawnTimeHours: 3},
	{Name: "RUGINOAMAN", Level: 88, Location: "MAPA 14", RespawnTimeHours: 2.5},
	{Name: "LYTHEA", Level: 93, Location: "MAPA 18", RespawnTimeHours: 2},
	{Name: "OSTIAR", Level: 98, Location: "MAPA 22", RespawnTimeHours: 1},
}

// SeedDefaultBosses inserts the stock boss list when the store is empty.
// Seeding writes directly to the store: first-run setup is not part of the
// activity history.
func SeedDefaultBosses(ctx context.Context, bosses repository.BossStore, logger *slog.Logger) error {
	existing, err := bosses.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing bosses: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, in := range defaultBosses {
		boss := &domain.Boss{
			ID:               uuid.New(),
			Name:             in.Name,
			Level:            in.Level,
			Location:         in.Location,
			RespawnTimeHours: in.RespawnTimeHours,
			IsAlive:          true,
			IconType:         domain.DefaultIconType,
			IconColor:        domain.DefaultIconColor,
		}
		if err := bosses.Create(ctx, boss); err != nil {
			return fmt.Errorf("seed boss %s: %w", boss.Name, err)
		}
	}

	logger.Info("seeded default bosses", "count", len(defaultBosses))
	return nil
}
