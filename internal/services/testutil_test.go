package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SebastianConosciuto/Poke-API/internal/models"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DB keeps all pooled connections on the same
	// in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.Trainer{}, &models.Pokemon{}, &models.CapturedPokemon{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedTrainer(t *testing.T, db *gorm.DB, trainerID string, level, experience int) {
	t.Helper()
	trainer := models.Trainer{
		TrainerID:    trainerID,
		PasswordHash: "x",
		Level:        level,
		Experience:   experience,
	}
	if err := db.Create(&trainer).Error; err != nil {
		t.Fatalf("failed to seed trainer: %v", err)
	}
}

func seedPokemon(t *testing.T, db *gorm.DB, id, statsTotal int, region, habitat string) {
	t.Helper()
	p := models.Pokemon{
		ID:         id,
		Name:       fmt.Sprintf("poke%03d", id),
		Types:      datatypes.NewJSONSlice([]string{"normal"}),
		Height:     7,
		Weight:     69,
		StatsHP:    statsTotal,
		StatsTotal: statsTotal,
	}
	if region != "" {
		p.Region = &region
	}
	if habitat != "" {
		p.Habitat = &habitat
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed pokemon %d: %v", id, err)
	}
}
