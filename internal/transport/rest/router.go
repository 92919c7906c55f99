package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"theinsight/internal/service"
	"theinsight/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	SessionService   *service.SessionService
	NarrativeService *service.NarrativeService
	VisitService     *service.VisitService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(c.SessionService)
	resultHandler := handler.NewResultHandler(c.SessionService, c.NarrativeService)
	visitHandler := handler.NewVisitHandler(c.VisitService)

	r.Use(corsMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/start", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/gender", sessionHandler.SelectGender).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/age", sessionHandler.SelectAge).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/mode", sessionHandler.SelectMode).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/question", sessionHandler.CurrentQuestion).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answers", sessionHandler.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/back", sessionHandler.Back).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/next", sessionHandler.Next).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/frontier", sessionHandler.Frontier).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/reset", sessionHandler.Reset).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/result", sessionHandler.Result).Methods("GET", "OPTIONS")

	v1.HandleFunc("/results", resultHandler.Shared).Methods("GET", "OPTIONS")
	v1.HandleFunc("/results/narrative", resultHandler.Narrative).Methods("POST", "OPTIONS")

	v1.HandleFunc("/visits", visitHandler.Increment).Methods("POST", "OPTIONS")
	v1.HandleFunc("/visits", visitHandler.Current).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
