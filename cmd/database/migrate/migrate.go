package migration

import (
	"fitcoach-backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	models := []struct {
		name  string
		model any
	}{
		{"admin", &entities.Admin{}},
		{"customer", &entities.Customer{}},
		{"ingredient", &entities.Ingredient{}},
		{"recipe", &entities.Recipe{}},
		{"recipe ingredient", &entities.RecipeIngredient{}},
		{"exercise", &entities.Exercise{}},
		{"nutrition plan", &entities.NutritionPlan{}},
		{"nutrition calculation", &entities.NutritionCalculation{}},
		{"pricing package", &entities.PricingPackage{}},
		{"pricing calculation", &entities.PricingCalculation{}},
		{"invoice", &entities.Invoice{}},
		{"invoice item", &entities.InvoiceItem{}},
		{"payment", &entities.Payment{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Errorf("Error migrating %s table: %v", m.name, err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}
