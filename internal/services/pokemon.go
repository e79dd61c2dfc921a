package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/SebastianConosciuto/Poke-API/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPokemonNotFound = errors.New("Pokemon not found")
	ErrAlreadyCaptured = errors.New("Pokemon already captured")
	ErrNotCaptured     = errors.New("Pokemon not captured by this trainer")
)

const MaxPageSize = 50

var validSortFields = map[string]bool{
	"id":          true,
	"name":        true,
	"height":      true,
	"weight":      true,
	"stats_total": true,
}

// ValidSortField reports whether the field may be used in ORDER BY.
func ValidSortField(field string) bool {
	return validSortFields[field]
}

type PokemonService struct {
	db *gorm.DB
}

func NewPokemonService(db *gorm.DB) *PokemonService {
	return &PokemonService{db: db}
}

type ListParams struct {
	Page         int
	PageSize     int
	Types        []string
	SortBy       string
	SortOrder    string
	CapturedOnly bool
}

// ListPokemon returns one catalog page. Type filtering uses AND semantics:
// a pokemon must carry every requested type tag.
func (s *PokemonService) ListPokemon(trainerID string, p ListParams) (*models.PokemonListResponse, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = "id"
	}
	if !ValidSortField(p.SortBy) {
		return nil, fmt.Errorf("invalid sort field '%s'", p.SortBy)
	}
	order := "ASC"
	if p.SortOrder == "desc" {
		order = "DESC"
	}
	offset := (p.Page - 1) * p.PageSize

	capturedIDs, err := s.capturedIDs(trainerID)
	if err != nil {
		return nil, err
	}

	if p.CapturedOnly && len(capturedIDs) == 0 {
		return &models.PokemonListResponse{
			Pokemon:  []models.PokemonBasic{},
			Page:     p.Page,
			PageSize: p.PageSize,
		}, nil
	}

	query := s.db.Model(&models.Pokemon{})
	if p.CapturedOnly {
		query = query.Where("id IN ?", capturedIDs)
	}
	if len(p.Types) > 0 {
		// jsonb containment: types must be a superset of the requested tags.
		wanted, err := json.Marshal(p.Types)
		if err != nil {
			return nil, err
		}
		query = query.Where("types @> ?", datatypes.JSON(wanted))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []models.Pokemon
	if err := query.
		Order(fmt.Sprintf("%s %s", p.SortBy, order)).
		Limit(p.PageSize).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	capturedSet := make(map[int]bool, len(capturedIDs))
	for _, id := range capturedIDs {
		capturedSet[id] = true
	}

	list := make([]models.PokemonBasic, 0, len(rows))
	for i := range rows {
		list = append(list, models.PokemonBasic{
			ID:         rows[i].ID,
			Name:       rows[i].Name,
			Types:      rows[i].Types,
			Sprite:     rows[i].Sprite(),
			Height:     rows[i].Height,
			Weight:     rows[i].Weight,
			StatsTotal: rows[i].StatsTotal,
			IsCaptured: capturedSet[rows[i].ID],
		})
	}

	totalPages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))

	return &models.PokemonListResponse{
		Pokemon:    list,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		HasMore:    p.Page < totalPages,
		TotalPages: totalPages,
	}, nil
}

// GetPokemonDetail returns the full view of one pokemon including the
// calling trainer's capture status and nickname.
func (s *PokemonService) GetPokemonDetail(trainerID string, pokemonID int) (*models.PokemonDetail, error) {
	var p models.Pokemon
	if err := s.db.First(&p, pokemonID).Error; err != nil {
		return nil, fmt.Errorf("%w with ID %d", ErrPokemonNotFound, pokemonID)
	}

	detail := &models.PokemonDetail{
		ID:    p.ID,
		Name:  p.Name,
		Types: p.Types,
		Sprites: map[string]string{
			"default":  p.SpriteDefault,
			"official": p.SpriteOfficial,
		},
		Height: p.Height,
		Weight: p.Weight,
		Stats: []models.PokemonStat{
			{Name: "hp", BaseStat: p.StatsHP},
			{Name: "attack", BaseStat: p.StatsAttack},
			{Name: "defense", BaseStat: p.StatsDefense},
			{Name: "special-attack", BaseStat: p.StatsSpecialAttack},
			{Name: "special-defense", BaseStat: p.StatsSpecialDefense},
			{Name: "speed", BaseStat: p.StatsSpeed},
		},
		StatsTotal:     p.StatsTotal,
		BaseExperience: p.BaseExperience,
		Description:    p.Description,
		Region:         p.Region,
		Habitat:        p.Habitat,
	}

	var capture models.CapturedPokemon
	err := s.db.Where("trainer_id = ? AND pokemon_id = ?", trainerID, pokemonID).
		First(&capture).Error
	if err == nil {
		detail.IsCaptured = true
		detail.Nickname = capture.Nickname
	}

	return detail, nil
}

// CapturePokemon records a direct capture (outside the minigame flow).
func (s *PokemonService) CapturePokemon(trainerID string, pokemonID int) error {
	var p models.Pokemon
	if err := s.db.Select("id").First(&p, pokemonID).Error; err != nil {
		return fmt.Errorf("%w with ID %d", ErrPokemonNotFound, pokemonID)
	}

	var existing models.CapturedPokemon
	err := s.db.Where("trainer_id = ? AND pokemon_id = ?", trainerID, pokemonID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadyCaptured
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	capture := models.CapturedPokemon{
		TrainerID: trainerID,
		PokemonID: pokemonID,
	}
	return s.db.Create(&capture).Error
}

// ReleasePokemon removes a capture row.
func (s *PokemonService) ReleasePokemon(trainerID string, pokemonID int) error {
	result := s.db.Where("trainer_id = ? AND pokemon_id = ?", trainerID, pokemonID).
		Delete(&models.CapturedPokemon{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotCaptured
	}
	return nil
}

// SetNickname renames a captured pokemon.
func (s *PokemonService) SetNickname(trainerID string, pokemonID int, nickname string) error {
	result := s.db.Model(&models.CapturedPokemon{}).
		Where("trainer_id = ? AND pokemon_id = ?", trainerID, pokemonID).
		Update("nickname", nickname)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotCaptured
	}
	return nil
}

// AvailableTypes lists the distinct type tags present in the catalog,
// falling back to the standard eighteen when the query fails. An empty
// catalog yields an empty list, not the fallback.
func (s *PokemonService) AvailableTypes() []string {
	var rows []datatypes.JSONSlice[string]
	err := s.db.Model(&models.Pokemon{}).Pluck("types", &rows).Error
	if err != nil {
		return []string{
			"normal", "fire", "water", "electric", "grass", "ice",
			"fighting", "poison", "ground", "flying", "psychic",
			"bug", "rock", "ghost", "dragon", "dark", "steel", "fairy",
		}
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		for _, t := range row {
			seen[t] = true
		}
	}

	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func (s *PokemonService) capturedIDs(trainerID string) ([]int, error) {
	var ids []int
	err := s.db.Model(&models.CapturedPokemon{}).
		Where("trainer_id = ?", trainerID).
		Pluck("pokemon_id", &ids).Error
	return ids, err
}
