// Package migration owns the versioned, forward-only schema history of the store.
package migration

import (
	"context"
	"log/slog"

	"dealzpark/config"
	"dealzpark/internal/errors"

	"github.com/go-gormigrate/gormigrate/v2"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// TableName records which migrations have been applied.
const TableName = "schema_migrations"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// Register schedules pending migrations to run when the application starts.
// A failed migration is logged and start-up continues.
func Register(params Params) {
	if params.Config.Migration != nil && !params.Config.Migration.Enabled {
		params.Logger.Info("Schema migrations disabled")

		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := Migrate(params.DB.WithContext(ctx)); err != nil {
				params.Logger.Error("An error occurred while migrating the database", slog.Any("error", err))

				return nil
			}

			params.Logger.Info("Schema migrations applied", slog.Int("known", len(migrations())))

			return nil
		},
	})
}

// Migrate applies every migration that has not been applied yet, in ID order.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:    TableName,
		IDColumnName: "id",
		IDColumnSize: 255,
	}, migrations())

	if err := m.Migrate(); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		initialCreate(),
		addCategoryTableAndMakeOfferCategoryString(),
	}
}
