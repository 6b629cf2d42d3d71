// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quizcast/quizcast/session"
)

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	mgr := session.NewManager("correct-horse", "secret")
	h := NewAuthHandler(mgr)

	t.Run("correct password sets cookie", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/login",
			strings.NewReader(`{"password":"correct-horse"}`))
		w := httptest.NewRecorder()
		h.Login(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Login() status = %d, want 200", w.Code)
		}
		cookie := sessionCookie(w)
		if cookie == nil {
			t.Fatal("Login() did not set session cookie")
		}
		if !cookie.HttpOnly {
			t.Error("session cookie must be HttpOnly")
		}
		if err := mgr.Validate(cookie.Value); err != nil {
			t.Errorf("cookie value does not validate: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/login",
			strings.NewReader(`{"password":"battery-staple"}`))
		w := httptest.NewRecorder()
		h.Login(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Login() status = %d, want 401", w.Code)
		}
		if sessionCookie(w) != nil {
			t.Error("failed login must not set a session cookie")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{bad`))
		w := httptest.NewRecorder()
		h.Login(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Login() status = %d, want 400", w.Code)
		}
	})
}

func TestLogout(t *testing.T) {
	mgr := session.NewManager("pw", "secret")
	h := NewAuthHandler(mgr)

	token, err := mgr.Login("pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	req := httptest.NewRequest("POST", "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()
	h.Logout(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Logout() status = %d, want 200", w.Code)
	}
	if err := mgr.Validate(token); err == nil {
		t.Error("session still valid after logout")
	}
	cookie := sessionCookie(w)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Error("Logout() must expire the session cookie")
	}

	// Logout without a cookie is fine
	req = httptest.NewRequest("POST", "/api/logout", nil)
	w = httptest.NewRecorder()
	h.Logout(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("cookieless Logout() status = %d, want 200", w.Code)
	}
}
