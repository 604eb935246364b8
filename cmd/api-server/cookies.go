package main

import (
	"net/http"
	"time"

	"github.com/protomem/clinic-api/internal/model"
)

func (app *application) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(app.config.session.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (app *application) setSessionCookie(w http.ResponseWriter, sess model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     app.config.session.cookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   app.config.session.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (app *application) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     app.config.session.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   app.config.session.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
