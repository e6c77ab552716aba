package migration

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"dealzpark/config"
	"dealzpark/internal/infra/persistence/model"
	"dealzpark/internal/infra/persistence/sqlitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestMigrate_SeedsCategories(t *testing.T) {
	db := sqlitetest.Open(t)

	require.NoError(t, Migrate(db))

	var categories []model.CategoryModel
	require.NoError(t, db.Order("id").Find(&categories).Error)
	require.Len(t, categories, 4)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
		assert.False(t, c.CreatedAt.IsZero())
	}
	assert.Equal(t, []string{"Fashion", "Electronics", "Food", "Sports"}, names)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := sqlitetest.Open(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var categoryCount int64
	require.NoError(t, db.Model(&model.CategoryModel{}).Count(&categoryCount).Error)
	assert.Equal(t, int64(4), categoryCount)

	var applied int64
	require.NoError(t, db.Table(TableName).Count(&applied).Error)
	assert.Equal(t, int64(len(migrations())), applied)
}

func TestMigrate_OffersCascadeWithShop(t *testing.T) {
	db := sqlitetest.Open(t)
	require.NoError(t, Migrate(db))

	shop := model.ShopModel{ShopName: "Bata", NID: "1", TradeLicense: "TL", Address: "Dhaka", ShopType: "Retail"}
	require.NoError(t, db.Create(&shop).Error)

	now := time.Now().UTC()
	offer := model.OfferModel{
		PromotionalTitle: "Shoes", DiscountPercentage: 10,
		ValidFrom: now, ValidTo: now.Add(time.Hour), CreatedAt: now,
		Category: "Fashion", ShopID: shop.ID,
	}
	require.NoError(t, db.Omit("Shop").Create(&offer).Error)

	require.NoError(t, db.Delete(&model.ShopModel{}, shop.ID).Error)

	var remaining int64
	require.NoError(t, db.Model(&model.OfferModel{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestRegister_FailureDoesNotStopStartup(t *testing.T) {
	db := sqlitetest.Open(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	var logs bytes.Buffer
	lc := fxtest.NewLifecycle(t)
	Register(Params{
		Lifecycle: lc,
		Config:    &config.Config{Migration: &config.MigrationConfig{Enabled: true}},
		Logger:    slog.New(slog.NewJSONHandler(&logs, nil)),
		DB:        db,
	})

	require.NoError(t, lc.Start(context.Background()))
	assert.Contains(t, logs.String(), "An error occurred while migrating the database")
	require.NoError(t, lc.Stop(context.Background()))
}

func TestRegister_Disabled(t *testing.T) {
	var logs bytes.Buffer
	lc := fxtest.NewLifecycle(t)
	Register(Params{
		Lifecycle: lc,
		Config:    &config.Config{Migration: &config.MigrationConfig{Enabled: false}},
		Logger:    slog.New(slog.NewJSONHandler(&logs, nil)),
	})

	require.NoError(t, lc.Start(context.Background()))
	assert.Contains(t, logs.String(), "Schema migrations disabled")
	require.NoError(t, lc.Stop(context.Background()))
}
