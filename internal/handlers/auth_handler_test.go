package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"companycal/config"
	"companycal/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	r.POST("/register", Register)
	r.POST("/login", Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/register", `{"email":"new@example.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/login", `{"email":"new@example.com","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid login payload: %v", err)
	}
	if payload.Token == "" {
		t.Error("login should return a token")
	}
	if payload.User.Role != "member" {
		t.Errorf("registered users default to member, got %q", payload.User.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newAuthRouter(t)

	body := `{"email":"dup@example.com","password":"secret1"}`
	if w := postJSON(r, "/register", body); w.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", w.Code)
	}
	if w := postJSON(r, "/register", body); w.Code != http.StatusConflict {
		t.Errorf("duplicate register: expected 409, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	postJSON(r, "/register", `{"email":"user@example.com","password":"secret1"}`)

	w := postJSON(r, "/login", `{"email":"user@example.com","password":"wrong-pass"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}
}
