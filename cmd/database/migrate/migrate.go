package migration

import (
	"Recipe-Book-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeStep{}); err != nil {
		log.Fatalf("Error migrating recipe step database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FavoriteRecipe{}); err != nil {
		log.Fatalf("Error migrating favorite recipe database: %v", err)
		return err
	}

	// Titles are unique per owner among ACTIVE, non-deleted recipes only,
	// case-insensitively. AutoMigrate cannot express a partial index.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_recipes_owner_title_active
		ON recipes (created_by, LOWER(title))
		WHERE status = 'ACTIVE' AND deleted_at IS NULL;`)

	fmt.Println("Database migration complete")
	return nil
}
