package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/handlers"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights and seat maps
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/seatmap", h.GetSeatMap).Methods(http.MethodGet, http.MethodOptions)

	// Fare quotes
	api.HandleFunc("/quotes", h.CreateQuote).Methods(http.MethodPost, http.MethodOptions)

	// Occupancy push from the booking backend
	api.HandleFunc("/flights/{id}/schedules/{scheduleId}/occupancy", h.UpdateOccupancy).Methods(http.MethodPost, http.MethodOptions)

	// WebSocket for live seat-map occupancy
	api.HandleFunc("/flights/{flightId}/ws", h.WatchSeatMap)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
