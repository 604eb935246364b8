package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/protomem/clinic-api/internal/ctxstore"
	"github.com/protomem/clinic-api/internal/model"
	"github.com/protomem/clinic-api/internal/response"
	"github.com/rs/cors"

	"github.com/tomasen/realip"
)

const (
	_traceIDKey = ctxstore.Key("traceId")
	_sessionKey = ctxstore.Key("session")
)

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		ctx := ctxstore.With(r.Context(), _traceIDKey, tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid    = ctxstore.MustFrom[string](r.Context(), _traceIDKey)
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		app.serverLogger().Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   app.config.cors.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(next)
}

// loadSession puts the session referenced by the request cookie, if any,
// into the request context.
func (app *application) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := app.sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, ok, err := app.sessions.Validate(r.Context(), token)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := ctxstore.With(r.Context(), _sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requirePatientSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := contextSession(r)
		if !ok || sess.Patient == 0 {
			app.unauthorized(w, r, "Unauthorized: Please log in first")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdminSession lets through sessions carrying the admin flag. No
// endpoint sets the flag; it has to be put into the session store directly.
func (app *application) requireAdminSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := contextSession(r)
		if !ok || !sess.IsAdmin {
			app.unauthorized(w, r, "Unauthorized: Admin access only")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func contextSession(r *http.Request) (model.Session, bool) {
	return ctxstore.From[model.Session](r.Context(), _sessionKey)
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
