package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/SebastianConosciuto/Poke-API/internal/services"

	"github.com/gin-gonic/gin"
)

type PokemonHandler struct {
	pokemonService *services.PokemonService
}

func NewPokemonHandler(pokemonService *services.PokemonService) *PokemonHandler {
	return &PokemonHandler{pokemonService: pokemonService}
}

type NicknameRequest struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=100" example:"Sparky"`
}

type CaptureResponse struct {
	Message   string `json:"message" example:"Pokemon captured successfully"`
	PokemonID int    `json:"pokemon_id" example:"25"`
	Captured  bool   `json:"captured" example:"true"`
}

// ListPokemon godoc
// @Summary      List pokemon
// @Description  Paginated pokemon catalog with filtering and sorting
// @Tags         pokemon
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-indexed)" default(1)
// @Param        page_size query int false "Pokemon per page (max 50)" default(20)
// @Param        types query string false "Comma-separated type names (max 2)"
// @Param        sort_by query string false "Sort field: id, name, height, weight, stats_total"
// @Param        sort_order query string false "asc or desc" default(asc)
// @Param        captured_only query bool false "Show only captured pokemon"
// @Success      200 {object} PokemonListResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /pokemon/ [get]
func (h *PokemonHandler) ListPokemon(c *gin.Context) {
	trainerID := c.GetString("trainer_id")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "page must be a positive integer"})
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > services.MaxPageSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "page_size must be between 1 and 50"})
		return
	}

	var types []string
	if raw := c.Query("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				types = append(types, t)
			}
		}
		if len(types) > 2 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Maximum 2 types can be selected for filtering"})
			return
		}
	}

	sortBy := c.Query("sort_by")
	if sortBy != "" && !services.ValidSortField(sortBy) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid sort_by field. Must be one of: id, name, height, weight, stats_total"})
		return
	}

	sortOrder := c.DefaultQuery("sort_order", "asc")
	if sortOrder != "asc" && sortOrder != "desc" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "sort_order must be asc or desc"})
		return
	}

	capturedOnly := c.Query("captured_only") == "true"

	result, err := h.pokemonService.ListPokemon(trainerID, services.ListParams{
		Page:         page,
		PageSize:     pageSize,
		Types:        types,
		SortBy:       sortBy,
		SortOrder:    sortOrder,
		CapturedOnly: capturedOnly,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTypes godoc
// @Summary      List pokemon types
// @Description  All type tags present in the catalog
// @Tags         pokemon
// @Produce      json
// @Success      200 {array} string
// @Router       /pokemon/types [get]
func (h *PokemonHandler) GetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.pokemonService.AvailableTypes())
}

// GetPokemon godoc
// @Summary      Get pokemon detail
// @Description  Full pokemon view including capture status and nickname
// @Tags         pokemon
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Pokemon ID"
// @Success      200 {object} PokemonDetail
// @Failure      404 {object} ErrorResponse
// @Router       /pokemon/{id} [get]
func (h *PokemonHandler) GetPokemon(c *gin.Context) {
	trainerID := c.GetString("trainer_id")
	pokemonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid pokemon id"})
		return
	}

	detail, err := h.pokemonService.GetPokemonDetail(trainerID, pokemonID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Capture godoc
// @Summary      Capture a pokemon
// @Description  Direct capture outside the minigame flow
// @Tags         pokemon
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Pokemon ID"
// @Success      200 {object} CaptureResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /pokemon/{id}/capture [post]
func (h *PokemonHandler) Capture(c *gin.Context) {
	trainerID := c.GetString("trainer_id")
	pokemonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid pokemon id"})
		return
	}

	if err := h.pokemonService.CapturePokemon(trainerID, pokemonID); err != nil {
		switch {
		case errors.Is(err, services.ErrPokemonNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
		case errors.Is(err, services.ErrAlreadyCaptured):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, CaptureResponse{
		Message:   "Pokemon captured successfully",
		PokemonID: pokemonID,
		Captured:  true,
	})
}

// Release godoc
// @Summary      Release a pokemon
// @Description  Remove a pokemon from the trainer's collection
// @Tags         pokemon
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Pokemon ID"
// @Success      200 {object} CaptureResponse
// @Failure      404 {object} ErrorResponse
// @Router       /pokemon/{id}/capture [delete]
func (h *PokemonHandler) Release(c *gin.Context) {
	trainerID := c.GetString("trainer_id")
	pokemonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid pokemon id"})
		return
	}

	if err := h.pokemonService.ReleasePokemon(trainerID, pokemonID); err != nil {
		if errors.Is(err, services.ErrNotCaptured) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CaptureResponse{
		Message:   "Pokemon released successfully",
		PokemonID: pokemonID,
		Captured:  false,
	})
}

// SetNickname godoc
// @Summary      Nickname a captured pokemon
// @Tags         pokemon
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Pokemon ID"
// @Param        request body NicknameRequest true "Nickname"
// @Success      200 {object} CaptureResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /pokemon/{id}/nickname [put]
func (h *PokemonHandler) SetNickname(c *gin.Context) {
	trainerID := c.GetString("trainer_id")
	pokemonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid pokemon id"})
		return
	}

	var req NicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	if err := h.pokemonService.SetNickname(trainerID, pokemonID, req.Nickname); err != nil {
		if errors.Is(err, services.ErrNotCaptured) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CaptureResponse{
		Message:   "Nickname updated",
		PokemonID: pokemonID,
		Captured:  true,
	})
}
