package model

import "time"

// CategoryModel is the GORM-specific struct for the 'categories' table.
// Name uniqueness is checked by the application, case-insensitively.
type CategoryModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
