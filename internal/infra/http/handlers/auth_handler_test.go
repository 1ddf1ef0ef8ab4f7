package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rvelasco1/salestext/internal/infra/http/middleware"
)

func loginForm(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginSuccess(t *testing.T) {
	store := middleware.NewSessionStore("test-secret")
	handler := NewAuthHandler(store, "admin", "hunter2", nil)

	w := httptest.NewRecorder()
	handler.Login(w, loginForm("admin", "hunter2"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestLoginBadCredentials(t *testing.T) {
	store := middleware.NewSessionStore("test-secret")
	handler := NewAuthHandler(store, "admin", "hunter2", nil)

	w := httptest.NewRecorder()
	handler.Login(w, loginForm("admin", "wrong"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginPageRenders(t *testing.T) {
	templates := template.Must(template.New("login.html").Parse("<form>login</form>"))
	handler := NewAuthHandler(middleware.NewSessionStore("test-secret"), "admin", "hunter2", templates)

	w := httptest.NewRecorder()
	handler.LoginPage(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login")
}

func TestRequireAdminRedirectsAnonymous(t *testing.T) {
	store := middleware.NewSessionStore("test-secret")

	protected := middleware.RequireAdmin(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("admin area"))
	}))

	req := httptest.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireAdminAllowsLoggedInSession(t *testing.T) {
	store := middleware.NewSessionStore("test-secret")
	handler := NewAuthHandler(store, "admin", "hunter2", nil)

	// Log in for real to get a signed cookie.
	loginRec := httptest.NewRecorder()
	handler.Login(loginRec, loginForm("admin", "hunter2"))
	cookies := loginRec.Result().Cookies()
	assert.NotEmpty(t, cookies)

	protected := middleware.RequireAdmin(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("admin area"))
	}))

	req := httptest.NewRequest("GET", "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin area", w.Body.String())
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	store := middleware.NewSessionStore("test-secret")
	handler := NewAuthHandler(store, "admin", "hunter2", nil)

	loginRec := httptest.NewRecorder()
	handler.Login(loginRec, loginForm("admin", "hunter2"))

	req := httptest.NewRequest("GET", "/logout", nil)
	for _, c := range loginRec.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The replacement cookie must be expired.
	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionName {
			found = true
			assert.True(t, c.MaxAge < 0)
		}
	}
	assert.True(t, found)
}
