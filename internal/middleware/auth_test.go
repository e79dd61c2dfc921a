package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SebastianConosciuto/Poke-API/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:middleware?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	authService := services.NewAuthService(db, "test-secret", 30)

	r := gin.New()
	r.GET("/protected", JWTAuth(authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"trainer_id": c.GetString("trainer_id")})
	})
	return r, authService
}

func TestJWTAuth(t *testing.T) {
	r, authService := newTestRouter(t)

	token, err := authService.GenerateToken("ash")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}
