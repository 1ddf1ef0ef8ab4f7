package handlers

import (
	"html/template"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/rvelasco1/salestext/internal/infra/http/middleware"
)

type AuthHandler struct {
	Store         sessions.Store
	AdminUsername string
	AdminPassword string
	Templates     *template.Template
}

func NewAuthHandler(store sessions.Store, username, password string, templates *template.Template) *AuthHandler {
	return &AuthHandler{
		Store:         store,
		AdminUsername: username,
		AdminPassword: password,
		Templates:     templates,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.Templates.ExecuteTemplate(w, "login.html", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if username != h.AdminUsername || password != h.AdminPassword {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("<h3>Invalid credentials</h3>"))
		return
	}

	session, _ := h.Store.Get(r, middleware.SessionName)
	session.Values["logged_in"] = true
	session.Save(r, w)

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	session.Save(r, w)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
