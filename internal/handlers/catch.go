package handlers

import (
	"errors"
	"net/http"

	"github.com/SebastianConosciuto/Poke-API/internal/models"
	"github.com/SebastianConosciuto/Poke-API/internal/services"

	"github.com/gin-gonic/gin"
)

type CatchHandler struct {
	catchService *services.CatchService
}

func NewCatchHandler(catchService *services.CatchService) *CatchHandler {
	return &CatchHandler{catchService: catchService}
}

type StartCatchRequest struct {
	Region     string `json:"region" example:"kanto"`
	Habitat    string `json:"habitat" example:"forest"`
	Difficulty string `json:"difficulty" binding:"required,oneof=weak easy medium hard legendary mythical" example:"medium"`
}

// GetRegions godoc
// @Summary      List regions
// @Tags         catch
// @Produce      json
// @Success      200 {array} string
// @Router       /catch/regions [get]
func (h *CatchHandler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, h.catchService.AvailableRegions())
}

// GetHabitats godoc
// @Summary      List habitats
// @Description  Distinct habitats, optionally narrowed by region
// @Tags         catch
// @Produce      json
// @Param        region query string false "Narrow to a region"
// @Success      200 {array} string
// @Router       /catch/habitats [get]
func (h *CatchHandler) GetHabitats(c *gin.Context) {
	c.JSON(http.StatusOK, h.catchService.AvailableHabitats(c.Query("region")))
}

// GetDifficulties godoc
// @Summary      List difficulties
// @Description  Difficulty tiers with at least one pokemon matching the optional region/habitat filters
// @Tags         catch
// @Produce      json
// @Param        region query string false "Narrow to a region"
// @Param        habitat query string false "Narrow to a habitat"
// @Success      200 {array} string
// @Router       /catch/difficulties [get]
func (h *CatchHandler) GetDifficulties(c *gin.Context) {
	c.JSON(http.StatusOK, h.catchService.AvailableDifficulties(c.Query("region"), c.Query("habitat")))
}

// StartCatch godoc
// @Summary      Start a catch attempt
// @Description  Pick a random pokemon from the requested pool and return a QTE challenge
// @Tags         catch
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body StartCatchRequest true "Pool filters"
// @Success      200 {object} CatchChallenge
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /catch/start [post]
func (h *CatchHandler) StartCatch(c *gin.Context) {
	var req StartCatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	challenge, err := h.catchService.StartCatch(req.Region, req.Habitat, models.Difficulty(req.Difficulty))
	if err != nil {
		if errors.Is(err, services.ErrNoPokemonFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// CompleteCatch godoc
// @Summary      Submit a catch attempt result
// @Description  Record the QTE outcome, capture on success and award XP
// @Tags         catch
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CatchAttempt true "Attempt result"
// @Success      200 {object} CatchResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /catch/complete [post]
func (h *CatchHandler) CompleteCatch(c *gin.Context) {
	trainerID := c.GetString("trainer_id")

	var attempt models.CatchAttempt
	if err := c.ShouldBindJSON(&attempt); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}
	if attempt.ButtonsCorrect > attempt.TotalButtons {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "buttons_correct cannot exceed total_buttons"})
		return
	}

	result, err := h.catchService.CompleteCatch(trainerID, attempt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPokemonNotFound), errors.Is(err, services.ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
