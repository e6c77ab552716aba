package model

import "time"

// OfferModel is the GORM-specific struct for the 'offers' table.
// Category holds a category name, not a foreign key to 'categories'.
type OfferModel struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement"`
	PromotionalTitle    string     `gorm:"type:varchar(200);not null"`
	PromotionalImageURL *string    `gorm:"column:promotional_image_url;type:text"`
	DiscountPercentage  int        `gorm:"not null"`
	ProductImageURL     *string    `gorm:"column:product_image_url;type:text"`
	ValidFrom           time.Time  `gorm:"not null"`
	ValidTo             time.Time  `gorm:"not null"`
	CreatedAt           time.Time  `gorm:"not null;index"`
	Category            string     `gorm:"type:varchar(100);not null;index"`
	ShopID              int64      `gorm:"not null;index"`
	Shop                *ShopModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
