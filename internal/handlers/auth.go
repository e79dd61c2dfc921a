package handlers

import (
	"net/http"

	"github.com/SebastianConosciuto/Poke-API/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService       *services.AuthService
	experienceService *services.ExperienceService
}

func NewAuthHandler(authService *services.AuthService, experienceService *services.ExperienceService) *AuthHandler {
	return &AuthHandler{authService: authService, experienceService: experienceService}
}

type RegisterRequest struct {
	TrainerID string `json:"trainer_id" binding:"required,min=3,max=50" example:"ash"`
	Password  string `json:"password" binding:"required,min=6" example:"pikachu123"`
}

type LoginRequest struct {
	TrainerID string `json:"trainer_id" binding:"required" example:"ash"`
	Password  string `json:"password" binding:"required" example:"pikachu123"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

// Register godoc
// @Summary      Register a new trainer
// @Description  Create a trainer account starting at level 1 with 0 XP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} Trainer
// @Failure      400 {object} ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	trainer, err := h.authService.Register(req.TrainerID, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, trainer)
}

// Login godoc
// @Summary      Login as trainer
// @Description  Verify credentials and return a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} TokenResponse
// @Failure      401 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	token, err := h.authService.Login(req.TrainerID, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me godoc
// @Summary      Current trainer
// @Description  Return the authenticated trainer's identity, level and XP
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Trainer
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	trainerID := c.GetString("trainer_id")

	trainer, err := h.authService.GetTrainer(trainerID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, trainer)
}

// Stats godoc
// @Summary      Trainer statistics
// @Description  Level, XP progress and pokedex completion for the authenticated trainer
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} TrainerStats
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /auth/stats [get]
func (h *AuthHandler) Stats(c *gin.Context) {
	trainerID := c.GetString("trainer_id")

	stats, err := h.experienceService.TrainerStats(trainerID)
	if err != nil {
		if err == services.ErrTrainerNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
