package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)
	mux.Use(app.loadSession)

	mux.Get("/status", app.handleStatus)

	mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", app.handleRegister)
		r.Post("/login", app.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(app.requirePatientSession)

			r.Get("/profile", app.handleGetProfile)
			r.Put("/profile", app.handleUpdateProfile)
			r.Post("/logout", app.handleLogout)
		})
	})

	mux.Route("/doctors", func(r chi.Router) {
		r.Get("/", app.handleListDoctors)
		r.Get("/{doctorId}", app.handleGetDoctor)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAdminSession)

			r.Post("/", app.handleCreateDoctor)
			r.Put("/{doctorId}", app.handleUpdateDoctor)
			r.Delete("/{doctorId}", app.handleDeleteDoctor)
		})
	})

	mux.Route("/appointments", func(r chi.Router) {
		r.Use(app.requirePatientSession)

		r.Get("/", app.handleListAppointments)
		r.Post("/", app.handleBookAppointment)
		r.Get("/{appointmentId}", app.handleGetAppointment)
		r.Delete("/{appointmentId}", app.handleCancelAppointment)
	})

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
