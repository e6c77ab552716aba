// Command gen generates type-safe GORM query code for the persistence models.
package main

import (
	"dealzpark/internal/infra/persistence/model"

	"gorm.io/gen"
)

// OfferQuerier declares the offer queries generated next to the basic DAO.
type OfferQuerier interface {
	// SELECT * FROM @@table WHERE LOWER(category) = LOWER(@category) ORDER BY created_at DESC, discount_percentage DESC
	FilterByCategory(category string) ([]*gen.T, error)
}

// CategoryQuerier declares the category queries generated next to the basic DAO.
type CategoryQuerier interface {
	// SELECT * FROM @@table WHERE LOWER(name) = LOWER(@name) ORDER BY id LIMIT 1
	FindByNameIgnoreCase(name string) (*gen.T, error)
}

func main() {
	models := []any{
		model.ShopModel{},
		model.CategoryModel{},
		model.OfferModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)
	g.ApplyInterface(func(OfferQuerier) {}, model.OfferModel{})
	g.ApplyInterface(func(CategoryQuerier) {}, model.CategoryModel{})

	g.Execute()
}
