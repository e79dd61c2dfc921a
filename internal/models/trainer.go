package models

import "time"

type Trainer struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	TrainerID    string    `gorm:"size:50;uniqueIndex;not null" json:"trainer_id"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Level        int       `gorm:"not null;default:1" json:"level"`
	Experience   int       `gorm:"not null;default:0" json:"experience"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExperienceAward describes the outcome of a single XP grant.
type ExperienceAward struct {
	XPAwarded             int      `json:"xp_awarded"`
	TotalExperience       int      `json:"total_experience"`
	OldLevel              int      `json:"old_level"`
	NewLevel              int      `json:"new_level"`
	LeveledUp             bool     `json:"leveled_up"`
	LevelsGained          int      `json:"levels_gained"`
	ExperienceInLevel     int      `json:"experience_in_level"`
	ExperienceToNextLevel int      `json:"experience_to_next_level"`
	LevelUpMessages       []string `json:"level_up_messages"`
}

// TrainerStats is the aggregate view served by GET /auth/stats.
type TrainerStats struct {
	TrainerID             string  `json:"trainer_id"`
	Level                 int     `json:"level"`
	Experience            int     `json:"experience"`
	ExperienceInLevel     int     `json:"experience_in_level"`
	ExperienceToNextLevel int     `json:"experience_to_next_level"`
	PokemonCaptured       int64   `json:"pokemon_captured"`
	PokedexCompletion     float64 `json:"pokedex_completion"`
	TotalPokemon          int64   `json:"total_pokemon"`
}
