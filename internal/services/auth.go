package services

import (
	"errors"
	"time"

	"github.com/SebastianConosciuto/Poke-API/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrTrainerExists      = errors.New("Trainer ID already registered")
	ErrInvalidCredentials = errors.New("Incorrect trainer ID or password")
	ErrTrainerNotFound    = errors.New("Trainer not found")
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTLMin int) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Duration(tokenTTLMin) * time.Minute,
	}
}

func (s *AuthService) Register(trainerID, password string) (*models.Trainer, error) {
	var existing models.Trainer
	if err := s.db.Where("trainer_id = ?", trainerID).First(&existing).Error; err == nil {
		return nil, ErrTrainerExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	trainer := models.Trainer{
		TrainerID:    trainerID,
		PasswordHash: string(hash),
		Level:        1,
		Experience:   0,
	}
	if err := s.db.Create(&trainer).Error; err != nil {
		return nil, err
	}

	return &trainer, nil
}

func (s *AuthService) Login(trainerID, password string) (string, error) {
	var trainer models.Trainer
	if err := s.db.Where("trainer_id = ?", trainerID).First(&trainer).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(trainer.TrainerID)
}

func (s *AuthService) GetTrainer(trainerID string) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := s.db.Where("trainer_id = ?", trainerID).First(&trainer).Error; err != nil {
		return nil, ErrTrainerNotFound
	}
	return &trainer, nil
}

func (s *AuthService) GenerateToken(trainerID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": trainerID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	trainerID, ok := claims["sub"].(string)
	if !ok || trainerID == "" {
		return "", errors.New("invalid subject in token")
	}

	return trainerID, nil
}
