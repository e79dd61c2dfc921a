package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/SebastianConosciuto/Poke-API/internal/config"
	"github.com/SebastianConosciuto/Poke-API/internal/database"
	"github.com/SebastianConosciuto/Poke-API/internal/handlers"
	"github.com/SebastianConosciuto/Poke-API/internal/middleware"
	"github.com/SebastianConosciuto/Poke-API/internal/services"

	_ "github.com/SebastianConosciuto/Poke-API/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Pokemon Trainer API
// @version         1.0
// @description     REST backend for a pokemon-catching web game: trainers, pokedex, QTE catching minigame and leveling
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTLMin)
	experienceService := services.NewExperienceService(db)
	pokemonService := services.NewPokemonService(db)
	catchService := services.NewCatchService(db, experienceService)

	authHandler := handlers.NewAuthHandler(authService, experienceService)
	pokemonHandler := handlers.NewPokemonHandler(pokemonService)
	catchHandler := handlers.NewCatchHandler(catchService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Pokemon Trainer API",
			"version": "1.0.0",
		})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		auth.GET("/stats", middleware.JWTAuth(authService), authHandler.Stats)
	}

	pokemon := r.Group("/pokemon")
	{
		pokemon.GET("/types", pokemonHandler.GetTypes)

		authed := pokemon.Group("")
		authed.Use(middleware.JWTAuth(authService))
		{
			authed.GET("/", pokemonHandler.ListPokemon)
			authed.GET("/:id", pokemonHandler.GetPokemon)
			authed.POST("/:id/capture", pokemonHandler.Capture)
			authed.DELETE("/:id/capture", pokemonHandler.Release)
			authed.PUT("/:id/nickname", pokemonHandler.SetNickname)
		}
	}

	catch := r.Group("/catch")
	{
		catch.GET("/regions", catchHandler.GetRegions)
		catch.GET("/habitats", catchHandler.GetHabitats)
		catch.GET("/difficulties", catchHandler.GetDifficulties)
		catch.POST("/start", middleware.JWTAuth(authService), catchHandler.StartCatch)
		catch.POST("/complete", middleware.JWTAuth(authService), catchHandler.CompleteCatch)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
