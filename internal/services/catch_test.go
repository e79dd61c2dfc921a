package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/SebastianConosciuto/Poke-API/internal/models"
)

func TestBuildSequenceBoundaries(t *testing.T) {
	cases := []struct {
		statsTotal  int
		wantButtons int
		wantTime    float64
		wantTag     models.Difficulty
	}{
		{0, 3, 1.5, models.DifficultyWeak},
		{180, 3, 1.5, models.DifficultyWeak},
		{300, 3, 1.5, models.DifficultyWeak},
		{301, 4, 1.2, models.DifficultyEasy},
		{400, 4, 1.2, models.DifficultyEasy},
		{401, 5, 1.0, models.DifficultyMedium},
		{500, 5, 1.0, models.DifficultyMedium},
		{501, 6, 0.8, models.DifficultyHard},
		{600, 6, 0.8, models.DifficultyHard},
		{601, 7, 0.6, models.DifficultyLegendary},
		{720, 7, 0.6, models.DifficultyLegendary},
		{721, 8, 0.5, models.DifficultyMythical},
		{1125, 8, 0.5, models.DifficultyMythical},
	}

	for _, tc := range cases {
		seq := BuildSequence(tc.statsTotal)
		if seq.TotalButtons != tc.wantButtons || len(seq.Buttons) != tc.wantButtons {
			t.Errorf("stats %d: got %d buttons (len %d), want %d",
				tc.statsTotal, seq.TotalButtons, len(seq.Buttons), tc.wantButtons)
		}
		if seq.TimePerButton != tc.wantTime {
			t.Errorf("stats %d: got %.2fs per button, want %.2f", tc.statsTotal, seq.TimePerButton, tc.wantTime)
		}
		if tag := DifficultyForStats(tc.statsTotal); tag != tc.wantTag {
			t.Errorf("stats %d: got tag %s, want %s", tc.statsTotal, tag, tc.wantTag)
		}
	}
}

func TestBuildSequenceSymbols(t *testing.T) {
	valid := map[string]bool{"up": true, "down": true, "left": true, "right": true}
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		seq := BuildSequence(450)
		for _, b := range seq.Buttons {
			if !valid[b] {
				t.Fatalf("invalid button symbol %q", b)
			}
			seen[b] = true
		}
	}

	// With 1000 uniform draws, a generator stuck on one symbol is broken.
	if len(seen) < 2 {
		t.Fatalf("expected multiple distinct symbols over many draws, saw %v", seen)
	}
}

func TestStartCatchEmptyPool(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatchService(db, NewExperienceService(db))

	_, err := svc.StartCatch("kanto", "forest", models.DifficultyMedium)
	if !errors.Is(err, ErrNoPokemonFound) {
		t.Fatalf("expected ErrNoPokemonFound, got %v", err)
	}
}

func TestStartCatchFiltersPool(t *testing.T) {
	db := newTestDB(t)
	seedPokemon(t, db, 1, 450, "kanto", "forest")
	seedPokemon(t, db, 2, 450, "johto", "forest")
	seedPokemon(t, db, 3, 700, "kanto", "forest")
	svc := NewCatchService(db, NewExperienceService(db))

	challenge, err := svc.StartCatch("kanto", "forest", models.DifficultyMedium)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if challenge.PokemonID != 1 {
		t.Fatalf("expected pokemon 1 from the kanto/forest/medium pool, got %d", challenge.PokemonID)
	}
	if challenge.Sequence.TotalButtons != 5 || challenge.Sequence.TimePerButton != 1.0 {
		t.Fatalf("QTE should match stats 450: %+v", challenge.Sequence)
	}
	if challenge.ChallengeID == "" {
		t.Fatal("expected a challenge id")
	}

	// "any" skips the region filter.
	if _, err := svc.StartCatch("any", "forest", models.DifficultyLegendary); err != nil {
		t.Fatalf("legendary with any region should find pokemon 3: %v", err)
	}
}

func TestCompleteCatchIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedTrainer(t, db, "ash", 1, 0)
	seedPokemon(t, db, 25, 320, "kanto", "forest")
	svc := NewCatchService(db, NewExperienceService(db))

	attempt := models.CatchAttempt{
		PokemonID:      25,
		Success:        true,
		ButtonsCorrect: 4,
		TotalButtons:   4,
	}

	first, err := svc.CompleteCatch("ash", attempt)
	if err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	if !strings.HasPrefix(first.Message, "Congratulations!") {
		t.Fatalf("first catch message = %q", first.Message)
	}
	if first.XPAwarded != XPCatchSuccess || first.Accuracy != 100 {
		t.Fatalf("unexpected first result: %+v", first)
	}

	second, err := svc.CompleteCatch("ash", attempt)
	if err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if !strings.Contains(second.Message, "already caught") {
		t.Fatalf("second catch message = %q", second.Message)
	}
	if second.XPAwarded != XPCatchSuccess {
		t.Fatalf("repeat catch should still award XP, got %d", second.XPAwarded)
	}

	var captures int64
	db.Model(&models.CapturedPokemon{}).Where("trainer_id = ?", "ash").Count(&captures)
	if captures != 1 {
		t.Fatalf("expected exactly one capture row, got %d", captures)
	}

	var trainer models.Trainer
	db.Where("trainer_id = ?", "ash").First(&trainer)
	if trainer.Experience != 2*XPCatchSuccess {
		t.Fatalf("expected two XP awards (total %d), got %d", 2*XPCatchSuccess, trainer.Experience)
	}
}

func TestCompleteCatchFailure(t *testing.T) {
	db := newTestDB(t)
	seedTrainer(t, db, "ash", 1, 0)
	seedPokemon(t, db, 25, 320, "kanto", "forest")
	svc := NewCatchService(db, NewExperienceService(db))

	result, err := svc.CompleteCatch("ash", models.CatchAttempt{
		PokemonID:      25,
		Success:        false,
		ButtonsCorrect: 1,
		TotalButtons:   4,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(result.Message, "broke free") {
		t.Fatalf("failure message = %q", result.Message)
	}
	if result.XPAwarded != XPCatchFail {
		t.Fatalf("expected consolation XP %d, got %d", XPCatchFail, result.XPAwarded)
	}
	if result.Accuracy != 25 {
		t.Fatalf("expected 25%% accuracy, got %v", result.Accuracy)
	}

	var captures int64
	db.Model(&models.CapturedPokemon{}).Count(&captures)
	if captures != 0 {
		t.Fatalf("failed catch must not create captures, got %d", captures)
	}
}

func TestCompleteCatchLevelUpFoldsMessages(t *testing.T) {
	db := newTestDB(t)
	seedTrainer(t, db, "ash", 1, 115)
	seedPokemon(t, db, 25, 320, "kanto", "forest")
	svc := NewCatchService(db, NewExperienceService(db))

	result, err := svc.CompleteCatch("ash", models.CatchAttempt{
		PokemonID:      25,
		Success:        true,
		ButtonsCorrect: 4,
		TotalButtons:   4,
		Perfect:        true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.LeveledUp || result.NewLevel != 2 {
		t.Fatalf("expected level-up to 2, got %+v", result)
	}
	if !strings.Contains(result.RewardMessage, "PERFECT CATCH") {
		t.Fatalf("expected perfect flair in %q", result.RewardMessage)
	}
	if !strings.Contains(result.RewardMessage, "Level Up! You reached level 2!") {
		t.Fatalf("expected level-up message in %q", result.RewardMessage)
	}
	if result.PokemonName != "Poke025" {
		t.Fatalf("expected capitalized name, got %q", result.PokemonName)
	}
}

func TestCompleteCatchUnknownPokemon(t *testing.T) {
	db := newTestDB(t)
	seedTrainer(t, db, "ash", 1, 0)
	svc := NewCatchService(db, NewExperienceService(db))

	_, err := svc.CompleteCatch("ash", models.CatchAttempt{
		PokemonID:      999,
		Success:        true,
		ButtonsCorrect: 3,
		TotalButtons:   3,
	})
	if !errors.Is(err, ErrPokemonNotFound) {
		t.Fatalf("expected ErrPokemonNotFound, got %v", err)
	}
}

func TestCompleteCatchStoreErrorSurfaces(t *testing.T) {
	db := newTestDB(t)
	seedTrainer(t, db, "ash", 1, 0)
	seedPokemon(t, db, 25, 320, "kanto", "forest")
	svc := NewCatchService(db, NewExperienceService(db))

	if err := db.Migrator().DropTable(&models.CapturedPokemon{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := svc.CompleteCatch("ash", models.CatchAttempt{
		PokemonID:      25,
		Success:        true,
		ButtonsCorrect: 4,
		TotalButtons:   4,
	})
	if err == nil {
		t.Fatal("expected the capture lookup error to surface")
	}
	if errors.Is(err, ErrPokemonNotFound) {
		t.Fatalf("store error misreported as missing pokemon: %v", err)
	}

	// The attempt was never recorded, so no XP either.
	var trainer models.Trainer
	db.Where("trainer_id = ?", "ash").First(&trainer)
	if trainer.Experience != 0 {
		t.Fatalf("XP awarded despite failed capture lookup: %d", trainer.Experience)
	}
}

func TestAvailableHabitatsEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatchService(db, NewExperienceService(db))

	// An empty catalog reports no habitats rather than the static fallback.
	if got := svc.AvailableHabitats(""); len(got) != 0 {
		t.Fatalf("empty catalog should yield no habitats, got %v", got)
	}

	seedPokemon(t, db, 1, 300, "kanto", "cave")
	seedPokemon(t, db, 2, 310, "kanto", "forest")

	got := svc.AvailableHabitats("kanto")
	if len(got) != 2 || got[0] != "cave" || got[1] != "forest" {
		t.Fatalf("expected [cave forest], got %v", got)
	}
}

func TestAvailableDifficultiesNarrowed(t *testing.T) {
	db := newTestDB(t)
	seedPokemon(t, db, 1, 250, "kanto", "forest")
	seedPokemon(t, db, 2, 450, "kanto", "cave")
	seedPokemon(t, db, 3, 750, "johto", "rare")
	svc := NewCatchService(db, NewExperienceService(db))

	got := svc.AvailableDifficulties("kanto", "")
	want := []models.Difficulty{models.DifficultyWeak, models.DifficultyMedium}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("AvailableDifficulties(kanto) = %v, want %v", got, want)
	}

	all := svc.AvailableDifficulties("", "")
	if len(all) != 3 {
		t.Fatalf("expected 3 available tiers overall, got %v", all)
	}
}
