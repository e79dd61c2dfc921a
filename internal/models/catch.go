package models

// Difficulty tags derive from a pokemon's total base stats.
type Difficulty string

const (
	DifficultyWeak      Difficulty = "weak"
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
	DifficultyMythical  Difficulty = "mythical"
)

// ButtonSequence is the QTE the client has to play through.
type ButtonSequence struct {
	Buttons       []string `json:"buttons"`
	TimePerButton float64  `json:"time_per_button"`
	TotalButtons  int      `json:"total_buttons"`
}

// CatchChallenge is ephemeral: it exists only for the duration of one
// catch attempt and is never persisted.
type CatchChallenge struct {
	ChallengeID   string         `json:"challenge_id"`
	PokemonID     int            `json:"pokemon_id"`
	PokemonName   string         `json:"pokemon_name"`
	PokemonSprite string         `json:"pokemon_sprite"`
	StatsTotal    int            `json:"stats_total"`
	Sequence      ButtonSequence `json:"sequence"`
	Difficulty    Difficulty     `json:"difficulty"`
}

// CatchAttempt is the client-reported outcome of a QTE. The server trusts
// these values; there is no server-side timer enforcement.
type CatchAttempt struct {
	PokemonID      int     `json:"pokemon_id" binding:"required"`
	Success        bool    `json:"success"`
	ButtonsCorrect int     `json:"buttons_correct" binding:"min=0"`
	TotalButtons   int     `json:"total_buttons" binding:"required,min=1"`
	TimeTaken      float64 `json:"time_taken"`
	Perfect        bool    `json:"perfect"`
}

type CatchResult struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	PokemonName   string  `json:"pokemon_name"`
	Accuracy      float64 `json:"accuracy"`
	Perfect       bool    `json:"perfect"`
	RewardMessage string  `json:"reward_message"`
	XPAwarded     int     `json:"xp_awarded"`
	NewLevel      int     `json:"new_level"`
	LeveledUp     bool    `json:"leveled_up"`
}
