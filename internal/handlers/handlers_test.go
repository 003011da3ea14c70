package handlers_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/teamdock-dev/teamdock/db"
	"github.com/teamdock-dev/teamdock/internal/auth"
	"github.com/teamdock-dev/teamdock/internal/models"
	"github.com/teamdock-dev/teamdock/internal/router"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTest wires the router to a fresh in-memory database. The DSN is
// keyed by test name so parallel packages cannot share state, and the
// foreign_keys pragma is on so ON DELETE CASCADE behaves like postgres.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret: %v", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	db.DB = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Project{}, &models.ProjectAssignment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return router.NewRouter()
}

func createTestUser(t *testing.T, email, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
		Role:         role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return token
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func setInactive(t *testing.T, userID uint) {
	t.Helper()

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate user: %v", err)
	}
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.DB.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}

	return count
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
