package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"manyar-backend/models"
)

func TestAdminEndpointsRequireSession(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/admins", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["error"] != "Authentication required" {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestGetAdmins(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	admin := seedAdmin(db, "owner")
	seedAdmin(db, "helper")
	token := seedSession(db, admin.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admins", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if result := parseResponseArray(w); len(result) != 2 {
		t.Errorf("expected 2 admins, got %d", len(result))
	}
}

func TestCreateAdminRejectsDuplicates(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	admin := seedAdmin(db, "owner")
	token := seedSession(db, admin.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admins", map[string]interface{}{
		"username": "second",
		"email":    "second@test.com",
		"password": "secret123",
	}, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	// Duplicate username.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admins", map[string]interface{}{
		"username": "second",
		"email":    "other@test.com",
		"password": "secret123",
	}, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for duplicate username, got %d", w.Code)
	}
	if parseResponse(w)["error"] != "Username already exists" {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}

	// Duplicate email.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admins", map[string]interface{}{
		"username": "third",
		"email":    "second@test.com",
		"password": "secret123",
	}, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for duplicate email, got %d", w.Code)
	}
	if parseResponse(w)["error"] != "Email already exists" {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestUpdateAdminPartial(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	admin := seedAdmin(db, "owner")
	other := seedAdmin(db, "helper")
	token := seedSession(db, admin.ID)

	// Changing a username to one that is taken is rejected.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", fmt.Sprintf("/api/admins/%d", other.ID), map[string]interface{}{
		"username": "owner",
	}, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for taken username, got %d: %s", w.Code, w.Body.String())
	}

	// Deactivation plus email change applies without touching the username.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", fmt.Sprintf("/api/admins/%d", other.ID), map[string]interface{}{
		"email":     "fresh@test.com",
		"is_active": false,
	}, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Admin
	db.First(&updated, other.ID)
	if updated.Email != "fresh@test.com" || updated.IsActive || updated.Username != "helper" {
		t.Errorf("unexpected admin state after update: %+v", updated)
	}
}

func TestDeleteAdminRejectsSelf(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	admin := seedAdmin(db, "owner")
	token := seedSession(db, admin.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", fmt.Sprintf("/api/admins/%d", admin.ID), nil, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["error"] != "Cannot delete your own account" {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count != 1 {
		t.Error("expected own account to remain intact")
	}
}

func TestDeleteAdminDropsTheirSessions(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	admin := seedAdmin(db, "owner")
	other := seedAdmin(db, "helper")
	token := seedSession(db, admin.ID)
	otherToken := seedSession(db, other.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", fmt.Sprintf("/api/admins/%d", other.ID), nil, token))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Session{}).Where("token = ?", otherToken).Count(&count)
	if count != 0 {
		t.Error("expected the deleted admin's session to be removed")
	}
}
