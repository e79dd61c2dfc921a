package services

import (
	"fmt"
	"math"

	"github.com/SebastianConosciuto/Poke-API/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// XP rewards for catch attempts. A failed catch still pays out consolation XP.
const (
	XPCatchSuccess = 30
	XPCatchFail    = 15
)

const (
	baseXP     = 100
	xpPerLevel = 20

	// Safety bound for the leveling loop; total XP would need to reach
	// levels far beyond game design to hit it.
	maxLevel = 1000
)

// XPForLevel returns the XP required to complete the given level.
func XPForLevel(level int) int {
	return baseXP + xpPerLevel*level
}

// LevelFromXP computes the level and leftover XP within that level for a
// cumulative XP total, by repeated subtraction starting at level 1.
func LevelFromXP(totalXP int) (level, xpInLevel int) {
	level = 1
	remaining := totalXP
	for remaining >= XPForLevel(level) {
		remaining -= XPForLevel(level)
		level++
		if level > maxLevel {
			break
		}
	}
	return level, remaining
}

type ExperienceService struct {
	db *gorm.DB
}

func NewExperienceService(db *gorm.DB) *ExperienceService {
	return &ExperienceService{db: db}
}

// AwardExperience adds XP to a trainer, recomputes their level and persists
// both. The trainer row is fetched with a row lock so concurrent awards for
// the same trainer serialize instead of losing updates.
func (s *ExperienceService) AwardExperience(trainerID string, amount int) (*models.ExperienceAward, error) {
	var award *models.ExperienceAward

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var trainer models.Trainer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("trainer_id = ?", trainerID).First(&trainer).Error; err != nil {
			return ErrTrainerNotFound
		}

		oldLevel := trainer.Level
		newTotal := trainer.Experience + amount
		newLevel, xpInLevel := LevelFromXP(newTotal)

		trainer.Level = newLevel
		trainer.Experience = newTotal
		if err := tx.Save(&trainer).Error; err != nil {
			return err
		}

		var messages []string
		for lvl := oldLevel + 1; lvl <= newLevel; lvl++ {
			messages = append(messages, fmt.Sprintf("Level Up! You reached level %d!", lvl))
		}

		award = &models.ExperienceAward{
			XPAwarded:             amount,
			TotalExperience:       newTotal,
			OldLevel:              oldLevel,
			NewLevel:              newLevel,
			LeveledUp:             newLevel > oldLevel,
			LevelsGained:          newLevel - oldLevel,
			ExperienceInLevel:     xpInLevel,
			ExperienceToNextLevel: XPForLevel(newLevel) - xpInLevel,
			LevelUpMessages:       messages,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return award, nil
}

// TrainerStats aggregates level, XP progress and pokedex completion.
func (s *ExperienceService) TrainerStats(trainerID string) (*models.TrainerStats, error) {
	var trainer models.Trainer
	if err := s.db.Where("trainer_id = ?", trainerID).First(&trainer).Error; err != nil {
		return nil, ErrTrainerNotFound
	}

	_, xpInLevel := LevelFromXP(trainer.Experience)

	var captured int64
	if err := s.db.Model(&models.CapturedPokemon{}).
		Where("trainer_id = ?", trainerID).
		Count(&captured).Error; err != nil {
		return nil, err
	}

	var totalPokemon int64
	if err := s.db.Model(&models.Pokemon{}).Count(&totalPokemon).Error; err != nil {
		return nil, err
	}
	if totalPokemon == 0 {
		totalPokemon = 1025
	}

	completion := float64(captured) / float64(totalPokemon) * 100
	completion = math.Round(completion*100) / 100

	return &models.TrainerStats{
		TrainerID:             trainer.TrainerID,
		Level:                 trainer.Level,
		Experience:            trainer.Experience,
		ExperienceInLevel:     xpInLevel,
		ExperienceToNextLevel: XPForLevel(trainer.Level) - xpInLevel,
		PokemonCaptured:       captured,
		PokedexCompletion:     completion,
		TotalPokemon:          totalPokemon,
	}, nil
}
