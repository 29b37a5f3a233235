package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"manyar-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMiddlewareTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Admin{}, &models.Session{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM admins")

	r := gin.New()
	r.GET("/protected", SessionAuth(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetUint("admin_id")})
	})
	return db, r
}

func TestSessionAuthMissingCookie(t *testing.T) {
	_, router := setupMiddlewareTest(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSessionAuthUnknownToken(t *testing.T) {
	_, router := setupMiddlewareTest(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-real-token"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSessionAuthExpiredSessionIsDropped(t *testing.T) {
	db, router := setupMiddlewareTest(t)

	session := models.Session{
		Token:     "expiredtoken0000000000000000000000000000000000000000000000000000",
		AdminID:   1,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	db.Create(&session)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session.Token})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Session{}).Count(&count)
	if count != 0 {
		t.Errorf("expected expired session to be deleted, got %d rows", count)
	}
}

func TestSessionAuthValidSessionPasses(t *testing.T) {
	db, router := setupMiddlewareTest(t)

	session := models.Session{
		Token:     "validtoken000000000000000000000000000000000000000000000000000000",
		AdminID:   7,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	db.Create(&session)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session.Token})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}
