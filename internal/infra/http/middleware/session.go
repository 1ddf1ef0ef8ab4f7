package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const SessionName = "salestext_admin"

func NewSessionStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	return store
}

// RequireAdmin gates the admin pages: anonymous visitors bounce back to
// the login page.
func RequireAdmin(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, SessionName)
			if loggedIn, ok := session.Values["logged_in"].(bool); !ok || !loggedIn {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
