package models

import "time"

// CapturedPokemon links a trainer to a pokemon they own. The composite
// unique index guarantees at most one row per (trainer, pokemon) pair even
// under concurrent catch submissions.
type CapturedPokemon struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TrainerID string    `gorm:"size:50;not null;uniqueIndex:idx_trainer_pokemon" json:"trainer_id"`
	PokemonID int       `gorm:"not null;uniqueIndex:idx_trainer_pokemon" json:"pokemon_id"`
	Nickname  *string   `gorm:"size:100" json:"nickname,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (CapturedPokemon) TableName() string {
	return "captured_pokemon"
}
