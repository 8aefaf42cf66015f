package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"care-info-api/internal/middleware"
)

// Routes builds the full HTTP surface: routing, logging, metrics and CORS.
func (h *Handler) Routes(m *middleware.Metrics, origins []string) http.Handler {
	r := mux.NewRouter()
	mw := []mux.MiddlewareFunc{middleware.Logging(h.log), m.Instrument}
	r.Use(mw...)
	// the router skips Use middleware when nothing matches
	r.NotFoundHandler = chain(http.HandlerFunc(notFound), mw)
	r.MethodNotAllowedHandler = chain(http.HandlerFunc(methodNotAllowed), mw)

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/signup", h.Signup).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Handle("/me", middleware.Auth(h.secret)(http.HandlerFunc(h.Me))).Methods(http.MethodGet)

	api.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", h.DeleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/doctors", h.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", h.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}", h.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", h.DeleteDoctor).Methods(http.MethodDelete)

	api.HandleFunc("/appointments", h.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", h.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", h.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", h.DeleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/doctor-availability", h.Availability).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(r)
}

func chain(next http.Handler, mw []mux.MiddlewareFunc) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		next = mw[i](next)
	}
	return next
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Backend running"))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.log.WithError(err).Warn("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
