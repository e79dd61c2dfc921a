package handlers

import "github.com/SebastianConosciuto/Poke-API/internal/models"

type ErrorResponse struct {
	Detail string `json:"detail" example:"something went wrong"`
}

// Type aliases so swag can resolve models in annotations.
type Trainer = models.Trainer
type TrainerStats = models.TrainerStats
type PokemonDetail = models.PokemonDetail
type PokemonListResponse = models.PokemonListResponse
type CatchChallenge = models.CatchChallenge
type CatchResult = models.CatchResult
