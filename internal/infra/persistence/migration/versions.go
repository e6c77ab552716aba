package migration

import (
	"time"

	"dealzpark/internal/domain/entity"
	"dealzpark/internal/errors"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Each migration declares the table shapes as they were at that version, so later
// changes to the model package never rewrite history.

type shopV1 struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	ShopName       string `gorm:"type:varchar(100);not null"`
	NID            string `gorm:"column:nid;type:varchar(50);not null"`
	TradeLicense   string `gorm:"type:varchar(100);not null"`
	ProductDetails string `gorm:"type:varchar(500);not null"`
	Location       string `gorm:"type:varchar(100);not null"`
	Address        string `gorm:"type:varchar(200);not null"`
	ShopType       string `gorm:"type:varchar(50);not null"`
}

func (shopV1) TableName() string { return "shops" }

type offerV1 struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	PromotionalTitle    string    `gorm:"type:varchar(200);not null"`
	PromotionalImageURL *string   `gorm:"column:promotional_image_url;type:text"`
	DiscountPercentage  int       `gorm:"not null"`
	ProductImageURL     *string   `gorm:"column:product_image_url;type:text"`
	ValidFrom           time.Time `gorm:"not null"`
	ValidTo             time.Time `gorm:"not null"`
	CreatedAt           time.Time `gorm:"not null;index"`
	Category            string    `gorm:"type:text;not null"`
	ShopID              int64     `gorm:"not null;index"`
	Shop                *shopV1   `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

func (offerV1) TableName() string { return "offers" }

func initialCreate() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "20250520075116_initial_create",
		Migrate: func(tx *gorm.DB) error {
			return errors.Wrap(tx.AutoMigrate(&shopV1{}, &offerV1{}), "create shops and offers")
		},
	}
}

type offerV2 struct {
	Category string `gorm:"type:varchar(100);not null;index"`
}

func (offerV2) TableName() string { return "offers" }

type categoryV2 struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (categoryV2) TableName() string { return "categories" }

func addCategoryTableAndMakeOfferCategoryString() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "20250528114401_add_category_table_and_make_offer_category_string",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.Migrator().AlterColumn(&offerV2{}, "Category"); err != nil {
				return errors.Wrap(err, "bound offers.category")
			}

			if !tx.Migrator().HasIndex(&offerV2{}, "Category") {
				if err := tx.Migrator().CreateIndex(&offerV2{}, "Category"); err != nil {
					return errors.Wrap(err, "index offers.category")
				}
			}

			if err := tx.AutoMigrate(&categoryV2{}); err != nil {
				return errors.Wrap(err, "create categories")
			}

			return seedCategories(tx)
		},
	}
}

// seedCategories inserts the bootstrap categories that are not present yet, compared ignoring case.
func seedCategories(tx *gorm.DB) error {
	seededAt := time.Now().UTC()

	for _, name := range entity.SeedCategoryNames {
		category := categoryV2{Name: name, CreatedAt: seededAt}
		if err := tx.Where("LOWER(name) = LOWER(?)", name).FirstOrCreate(&category).Error; err != nil {
			return errors.Wrapf(err, "seed category %s", name)
		}
	}

	return nil
}
