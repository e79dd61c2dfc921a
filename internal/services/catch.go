package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/SebastianConosciuto/Poke-API/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoPokemonFound = errors.New("no pokemon found for the requested filters")

var arrowKeys = []string{"up", "down", "left", "right"}

// difficultyTier maps a contiguous stats_total range to QTE parameters.
// Ranges are ordered and non-overlapping; the last tier is open-ended.
type difficultyTier struct {
	tag           models.Difficulty
	minStats      int
	maxStats      int // inclusive; 0 means unbounded
	buttons       int
	timePerButton float64
}

var difficultyTiers = []difficultyTier{
	{models.DifficultyWeak, 0, 300, 3, 1.5},
	{models.DifficultyEasy, 301, 400, 4, 1.2},
	{models.DifficultyMedium, 401, 500, 5, 1.0},
	{models.DifficultyHard, 501, 600, 6, 0.8},
	{models.DifficultyLegendary, 601, 720, 7, 0.6},
	{models.DifficultyMythical, 721, 0, 8, 0.5},
}

func tierForStats(statsTotal int) difficultyTier {
	for _, tier := range difficultyTiers {
		if tier.maxStats == 0 || statsTotal <= tier.maxStats {
			return tier
		}
	}
	return difficultyTiers[len(difficultyTiers)-1]
}

func tierForDifficulty(difficulty models.Difficulty) (difficultyTier, bool) {
	for _, tier := range difficultyTiers {
		if tier.tag == difficulty {
			return tier, true
		}
	}
	return difficultyTier{}, false
}

// DifficultyForStats returns the difficulty tag for a stats total.
func DifficultyForStats(statsTotal int) models.Difficulty {
	return tierForStats(statsTotal).tag
}

// BuildSequence generates a QTE button sequence for a pokemon with the
// given stats total. Buttons are independent uniform draws, repeats allowed.
func BuildSequence(statsTotal int) models.ButtonSequence {
	tier := tierForStats(statsTotal)

	buttons := make([]string, tier.buttons)
	for i := range buttons {
		buttons[i] = arrowKeys[rand.Intn(len(arrowKeys))]
	}

	return models.ButtonSequence{
		Buttons:       buttons,
		TimePerButton: tier.timePerButton,
		TotalButtons:  tier.buttons,
	}
}

type CatchService struct {
	db         *gorm.DB
	experience *ExperienceService
}

func NewCatchService(db *gorm.DB, experience *ExperienceService) *CatchService {
	return &CatchService{db: db, experience: experience}
}

// StartCatch picks a random pokemon from the requested region/habitat/
// difficulty pool and builds a QTE challenge from its actual stats.
// Region and habitat accept "any" (or empty) to skip that filter.
func (s *CatchService) StartCatch(region, habitat string, difficulty models.Difficulty) (*models.CatchChallenge, error) {
	tier, ok := tierForDifficulty(difficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty '%s'", difficulty)
	}

	query := s.db.Model(&models.Pokemon{})
	if region = strings.ToLower(strings.TrimSpace(region)); region != "" && region != "any" {
		query = query.Where("region = ?", region)
	}
	if habitat = strings.ToLower(strings.TrimSpace(habitat)); habitat != "" && habitat != "any" {
		query = query.Where("habitat = ?", habitat)
	}
	query = query.Where("stats_total >= ?", tier.minStats)
	if tier.maxStats > 0 {
		query = query.Where("stats_total <= ?", tier.maxStats)
	}

	var pool []models.Pokemon
	if err := query.Find(&pool).Error; err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: region '%s', habitat '%s', difficulty '%s'",
			ErrNoPokemonFound, region, habitat, difficulty)
	}

	pokemon := pool[rand.Intn(len(pool))]

	return &models.CatchChallenge{
		ChallengeID:   uuid.NewString(),
		PokemonID:     pokemon.ID,
		PokemonName:   pokemon.Name,
		PokemonSprite: pokemon.Sprite(),
		StatsTotal:    pokemon.StatsTotal,
		Sequence:      BuildSequence(pokemon.StatsTotal),
		Difficulty:    difficulty,
	}, nil
}

// CompleteCatch records a client-reported QTE outcome. A successful catch of
// an already-owned pokemon keeps the existing capture row; XP is awarded on
// every attempt, success or not.
func (s *CatchService) CompleteCatch(trainerID string, attempt models.CatchAttempt) (*models.CatchResult, error) {
	accuracy := float64(attempt.ButtonsCorrect) / float64(attempt.TotalButtons) * 100

	var pokemon models.Pokemon
	if err := s.db.First(&pokemon, attempt.PokemonID).Error; err != nil {
		return nil, fmt.Errorf("%w with ID %d", ErrPokemonNotFound, attempt.PokemonID)
	}
	name := capitalize(pokemon.Name)

	var message, flair string
	if attempt.Success {
		var existing models.CapturedPokemon
		err := s.db.Where("trainer_id = ? AND pokemon_id = ?", trainerID, attempt.PokemonID).
			First(&existing).Error
		switch {
		case err == nil:
			message = fmt.Sprintf("You already caught %s! But nice catch anyway!", name)
		case errors.Is(err, gorm.ErrRecordNotFound):
			capture := models.CapturedPokemon{
				TrainerID: trainerID,
				PokemonID: attempt.PokemonID,
			}
			if err := s.db.Create(&capture).Error; err != nil {
				return nil, err
			}
			message = fmt.Sprintf("Congratulations! You caught %s!", name)
			if attempt.Perfect {
				flair = "✨ PERFECT CATCH! All buttons hit with excellent timing!"
			}
		default:
			return nil, err
		}
	} else {
		message = fmt.Sprintf("%s broke free! Try again!", name)
	}

	xp := XPCatchFail
	if attempt.Success {
		xp = XPCatchSuccess
	}
	award, err := s.experience.AwardExperience(trainerID, xp)
	if err != nil {
		return nil, err
	}

	rewardParts := make([]string, 0, 1+len(award.LevelUpMessages))
	if flair != "" {
		rewardParts = append(rewardParts, flair)
	}
	rewardParts = append(rewardParts, award.LevelUpMessages...)

	return &models.CatchResult{
		Success:       attempt.Success,
		Message:       message,
		PokemonName:   name,
		Accuracy:      accuracy,
		Perfect:       attempt.Success && attempt.Perfect,
		RewardMessage: strings.Join(rewardParts, " "),
		XPAwarded:     award.XPAwarded,
		NewLevel:      award.NewLevel,
		LeveledUp:     award.LeveledUp,
	}, nil
}

// AvailableRegions lists the regions the game knows about.
func (s *CatchService) AvailableRegions() []string {
	return []string{
		"kanto", "johto", "hoenn", "sinnoh", "unova",
		"kalos", "alola", "galar", "paldea",
	}
}

// AvailableHabitats lists distinct habitats, optionally narrowed to a
// region. Falls back to a static list when the query fails so the catch
// screen stays usable; an empty catalog yields an empty list.
func (s *CatchService) AvailableHabitats(region string) []string {
	query := s.db.Model(&models.Pokemon{}).Where("habitat IS NOT NULL")
	if region = strings.ToLower(strings.TrimSpace(region)); region != "" && region != "any" {
		query = query.Where("region = ?", region)
	}

	habitats := make([]string, 0, 8)
	err := query.Distinct("habitat").Order("habitat ASC").Pluck("habitat", &habitats).Error
	if err != nil {
		return []string{
			"grassland", "forest", "waters-edge", "sea", "cave",
			"mountain", "rough-terrain", "urban", "rare",
		}
	}
	return habitats
}

// AvailableDifficulties lists the difficulty tiers that have at least one
// pokemon matching the optional region/habitat filters.
func (s *CatchService) AvailableDifficulties(region, habitat string) []models.Difficulty {
	region = strings.ToLower(strings.TrimSpace(region))
	habitat = strings.ToLower(strings.TrimSpace(habitat))

	available := make([]models.Difficulty, 0, len(difficultyTiers))
	for _, tier := range difficultyTiers {
		query := s.db.Model(&models.Pokemon{}).Where("stats_total >= ?", tier.minStats)
		if tier.maxStats > 0 {
			query = query.Where("stats_total <= ?", tier.maxStats)
		}
		if region != "" && region != "any" {
			query = query.Where("region = ?", region)
		}
		if habitat != "" && habitat != "any" {
			query = query.Where("habitat = ?", habitat)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			// Can't tell what is catchable; offer everything.
			return []models.Difficulty{
				models.DifficultyWeak, models.DifficultyEasy, models.DifficultyMedium,
				models.DifficultyHard, models.DifficultyLegendary, models.DifficultyMythical,
			}
		}
		if count > 0 {
			available = append(available, tier.tag)
		}
	}
	return available
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
