package main

import (
	"flag"
	"log"

	"github.com/SebastianConosciuto/Poke-API/internal/config"
	"github.com/SebastianConosciuto/Poke-API/internal/database"
	"github.com/SebastianConosciuto/Poke-API/internal/models"
	"github.com/SebastianConosciuto/Poke-API/internal/pokeapi"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// Seeds the pokemon reference table from PokeAPI. Safe to re-run: rows are
// upserted by pokedex number.
func main() {
	from := flag.Int("from", 1, "first pokedex number to fetch")
	to := flag.Int("to", 151, "last pokedex number to fetch")
	flag.Parse()

	cfg := config.Load()
	db := database.Connect(cfg)
	database.AutoMigrate(db)

	client := pokeapi.NewClient(cfg.PokeAPIBaseURL)

	ok, failed := 0, 0
	for id := *from; id <= *to; id++ {
		data, err := client.GetPokemon(id)
		if err != nil {
			log.Printf("pokemon %d: %v", id, err)
			failed++
			continue
		}

		row := models.Pokemon{
			ID:             data.ID,
			Name:           data.Name,
			Height:         data.Height,
			Weight:         data.Weight,
			SpriteDefault:  data.Sprites.FrontDefault,
			SpriteOfficial: data.Sprites.Other.OfficialArtwork.FrontDefault,
		}
		if data.BaseExperience > 0 {
			base := data.BaseExperience
			row.BaseExperience = &base
		}

		types := make([]string, 0, len(data.Types))
		for _, t := range data.Types {
			types = append(types, t.Type.Name)
		}
		row.Types = datatypes.NewJSONSlice(types)

		for _, s := range data.Stats {
			switch s.Stat.Name {
			case "hp":
				row.StatsHP = s.BaseStat
			case "attack":
				row.StatsAttack = s.BaseStat
			case "defense":
				row.StatsDefense = s.BaseStat
			case "special-attack":
				row.StatsSpecialAttack = s.BaseStat
			case "special-defense":
				row.StatsSpecialDefense = s.BaseStat
			case "speed":
				row.StatsSpeed = s.BaseStat
			}
		}
		row.StatsTotal = row.StatsHP + row.StatsAttack + row.StatsDefense +
			row.StatsSpecialAttack + row.StatsSpecialDefense + row.StatsSpeed

		species, err := client.GetSpecies(id)
		if err != nil {
			log.Printf("species %d: %v (continuing without species data)", id, err)
		} else {
			if species.Habitat != nil {
				habitat := species.Habitat.Name
				row.Habitat = &habitat
			}
			if region, found := pokeapi.RegionForGeneration(species.Generation.Name); found {
				row.Region = &region
			}
			if flavor := species.EnglishFlavorText(); flavor != "" {
				row.Description = &flavor
			}
		}

		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			log.Printf("pokemon %d: insert failed: %v", id, err)
			failed++
			continue
		}

		ok++
		if ok%25 == 0 {
			log.Printf("populated %d pokemon (last: %s)", ok, data.Name)
		}
	}

	log.Printf("done: %d populated, %d failed", ok, failed)
}
