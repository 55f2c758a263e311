// Package server exposes a read-only HTTP API over the merged rates dataset.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/vatsync/internal/taxdb"
)

// New builds the router. All endpoints are read-only; the dataset is loaded
// once at startup and never mutated.
func New(db *taxdb.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"countries": db.Len(),
		})
	})

	r.Get("/rates", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"countries": db.Countries(),
		})
	})

	r.Get("/rates/{country}", func(w http.ResponseWriter, req *http.Request) {
		country := chi.URLParam(req, "country")
		rec, err := db.Record(country)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "unknown country code: " + country,
			})
			return
		}

		state := req.URL.Query().Get("state")
		if state != "" {
			rate, err := db.Rate(country, state)
			if err != nil {
				// Country already resolved, so this can only be a state miss.
				writeJSON(w, http.StatusNotFound, map[string]string{
					"error": "unknown state code: " + state,
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"country":       country,
				"state":         state,
				"standard_rate": rate,
			})
			return
		}

		writeJSON(w, http.StatusOK, rec)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		zap.L().Info("request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(req.Context())),
		)
	})
}
