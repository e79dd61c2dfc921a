package models

import "gorm.io/datatypes"

// Pokemon is read-only reference data populated by cmd/populate from PokeAPI.
type Pokemon struct {
	ID                  int                         `gorm:"primaryKey" json:"id"`
	Name                string                      `gorm:"size:100;index;not null" json:"name"`
	Types               datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"types"`
	Height              int                         `json:"height"`
	Weight              int                         `json:"weight"`
	StatsHP             int                         `gorm:"column:stats_hp" json:"stats_hp"`
	StatsAttack         int                         `gorm:"column:stats_attack" json:"stats_attack"`
	StatsDefense        int                         `gorm:"column:stats_defense" json:"stats_defense"`
	StatsSpecialAttack  int                         `gorm:"column:stats_special_attack" json:"stats_special_attack"`
	StatsSpecialDefense int                         `gorm:"column:stats_special_defense" json:"stats_special_defense"`
	StatsSpeed          int                         `gorm:"column:stats_speed" json:"stats_speed"`
	StatsTotal          int                         `gorm:"index" json:"stats_total"`
	SpriteDefault       string                      `gorm:"size:255" json:"sprite_default"`
	SpriteOfficial      string                      `gorm:"size:255" json:"sprite_official"`
	Description         *string                     `gorm:"type:text" json:"description,omitempty"`
	Region              *string                     `gorm:"size:50;index" json:"region,omitempty"`
	Habitat             *string                     `gorm:"size:50;index" json:"habitat,omitempty"`
	BaseExperience      *int                        `json:"base_experience,omitempty"`
}

func (Pokemon) TableName() string {
	return "pokemon"
}

// Sprite prefers the official artwork, falling back to the default sprite.
func (p *Pokemon) Sprite() string {
	if p.SpriteOfficial != "" {
		return p.SpriteOfficial
	}
	return p.SpriteDefault
}

type PokemonStat struct {
	Name     string `json:"name"`
	BaseStat int    `json:"base_stat"`
}

// PokemonBasic is the compact shape used in list views.
type PokemonBasic struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	Sprite     string   `json:"sprite"`
	Height     int      `json:"height"`
	Weight     int      `json:"weight"`
	StatsTotal int      `json:"stats_total"`
	IsCaptured bool     `json:"is_captured"`
}

type PokemonDetail struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Types          []string          `json:"types"`
	Sprites        map[string]string `json:"sprites"`
	Height         int               `json:"height"`
	Weight         int               `json:"weight"`
	Stats          []PokemonStat     `json:"stats"`
	StatsTotal     int               `json:"stats_total"`
	BaseExperience *int              `json:"base_experience,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Region         *string           `json:"region,omitempty"`
	Habitat        *string           `json:"habitat,omitempty"`
	IsCaptured     bool              `json:"is_captured"`
	Nickname       *string           `json:"nickname,omitempty"`
}

type PokemonListResponse struct {
	Pokemon    []PokemonBasic `json:"pokemon"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	HasMore    bool           `json:"has_more"`
	TotalPages int            `json:"total_pages"`
}
