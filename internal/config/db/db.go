package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/config"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/activity"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/image"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/star"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/template"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate runs AutoMigrate for every catalogue table.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&user.EmailToken{},
		&collection.Collection{},
		&field.Definition{},
		&item.Item{},
		&image.ItemImage{},
		&star.CollectionStar{},
		&star.ItemStar{},
		&template.SchemaTemplate{},
		&template.SchemaTemplateField{},
		&activity.Log{},
	)
}

// InitWithGormDB injects an existing connection, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
