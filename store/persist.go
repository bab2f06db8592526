package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"digimarket/config"
	"digimarket/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys, one per tracked collection. Cart and wishlist are
// session-only and have no key.
const (
	KeyInventory = "digimarket_inventory"
	KeyReviews   = "digimarket_reviews"
	KeyPurchases = "digimarket_purchases"
	KeyProgress  = "digimarket_progress"
	KeyAuth      = "digimarket_auth"
)

// Snapshots is the persistence port. Load reports whether a value was
// stored under key; a stored-but-unreadable value returns (true, err)
// so the caller can fall back to seed data for that key alone.
type Snapshots interface {
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
}

type dbSnapshots struct {
	db *gorm.DB
}

// ConnectSnapshots opens the snapshot database selected by
// STORE_DRIVER and runs migrations. SQLite is the default, matching the
// single-instance local model; Postgres and MySQL are selectable for
// hosted deployments.
func ConnectSnapshots() (Snapshots, error) {
	cfg := config.AppConfig

	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.DBName)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect snapshot store: %w", err)
	}

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Snapshot{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &dbSnapshots{db: db}, nil
}

func (s *dbSnapshots) Load(key string, v any) (bool, error) {
	var snap models.Snapshot
	if err := s.db.Where("key = ?", key).First(&snap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(snap.Value, v); err != nil {
		return true, fmt.Errorf("corrupt snapshot %q: %w", key, err)
	}
	return true, nil
}

func (s *dbSnapshots) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	snap := models.Snapshot{Key: key, Value: datatypes.JSON(raw)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap).Error
}
