// Package model contains the GORM-specific structs mapped to database tables.
package model

// ShopModel is the GORM-specific struct for the 'shops' table.
type ShopModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	ShopName       string `gorm:"type:varchar(100);not null"`
	NID            string `gorm:"column:nid;type:varchar(50);not null"`
	TradeLicense   string `gorm:"type:varchar(100);not null"`
	ProductDetails string `gorm:"type:varchar(500);not null"`
	Location       string `gorm:"type:varchar(100);not null"`
	Address        string `gorm:"type:varchar(200);not null"`
	ShopType       string `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
