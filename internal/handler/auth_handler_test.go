package handler_test

import (
	"net/http"
	"testing"
)

func TestCurrentUserRequiresSession(t *testing.T) {
	r, _ := setupHandlerTest(t)

	rr := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupHandlerTest(t)
	registerAndLogin(t, r, "known@example.com")

	rr := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "known@example.com",
		"password": "wrong-password",
	}, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	r, _ := setupHandlerTest(t)
	registerAndLogin(t, r, "dup@example.com")

	rr := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Tester",
		"email":    "dup@example.com",
		"password": "secret-password",
	}, nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSessionLifecycle(t *testing.T) {
	r, _ := setupHandlerTest(t)
	cookies := registerAndLogin(t, r, "session@example.com")

	me := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, cookies)
	if me.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", me.Code)
	}
	user, _ := decodeBody(t, me)["user"].(map[string]interface{})
	if user["email"] != "session@example.com" {
		t.Fatalf("expected session user, got %v", user)
	}

	logout := doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, cookies)
	if logout.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", logout.Code)
	}

	// 登出后的 cookie 不再携带有效会话
	cleared := logout.Result().Cookies()
	after := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, cleared)
	if after.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", after.Code)
	}
}
