package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/booking"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/seatmap"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/service"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/websocket"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	quoteService service.QuoteService
	hub          *websocket.Hub
}

// NewHandler creates a new Handler instance. hub may be nil when the
// occupancy socket is disabled.
func NewHandler(quoteService service.QuoteService, hub *websocket.Hub) *Handler {
	return &Handler{
		quoteService: quoteService,
		hub:          hub,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]
	flight, err := h.quoteService.GetFlight(r.Context(), flightID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Flight not found")
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// GetSeatMap handles GET /api/flights/{id}/seatmap?scheduleId=
func (h *Handler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]
	scheduleID := r.URL.Query().Get("scheduleId")

	seatMap, err := h.quoteService.GetSeatMap(r.Context(), flightID, scheduleID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Flight or schedule not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, seatMap)
}

// CreateQuote handles POST /api/quotes
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req service.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validate request
	if req.FlightID == "" {
		respondError(w, http.StatusBadRequest, "Flight ID is required")
		return
	}
	if req.Passengers.Adults < 1 {
		respondError(w, http.StatusBadRequest, "At least one adult passenger is required")
		return
	}
	if req.Passengers.Children < 0 || req.Passengers.Infants < 0 {
		respondError(w, http.StatusBadRequest, "Passenger counts must not be negative")
		return
	}
	if req.AddOns.ExtraBaggageCount < 0 {
		respondError(w, http.StatusBadRequest, "Extra baggage count must not be negative")
		return
	}
	for _, code := range req.SeatSelection {
		if _, _, err := seatmap.ParseSeatCode(code); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	quote, err := h.quoteService.Quote(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, booking.ErrSeatOccupied):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, booking.ErrSelectionCapExceeded),
			errors.Is(err, booking.ErrMissingSchedule):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, quote)
}

// occupancyUpdateRequest is the push payload from the booking backend.
type occupancyUpdateRequest struct {
	Seats []catalog.SeatStatus `json:"seats"`
}

// UpdateOccupancy handles POST /api/flights/{id}/schedules/{scheduleId}/occupancy
func (h *Handler) UpdateOccupancy(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	flightID := vars["id"]
	scheduleID := vars["scheduleId"]

	var req occupancyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Seats) == 0 {
		respondError(w, http.StatusBadRequest, "At least one seat status is required")
		return
	}
	for _, s := range req.Seats {
		if s.SeatNumber == "" {
			respondError(w, http.StatusBadRequest, "Seat number is required")
			return
		}
	}

	err := h.quoteService.UpdateOccupancy(r.Context(), flightID, scheduleID, req.Seats)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Flight not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Occupancy updated"})
}

// WatchSeatMap handles GET /api/flights/{flightId}/ws?scheduleId=
func (h *Handler) WatchSeatMap(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		respondError(w, http.StatusNotFound, "Live occupancy is disabled")
		return
	}
	flightID := mux.Vars(r)["flightId"]
	scheduleID := r.URL.Query().Get("scheduleId")

	// Broadcast topics are keyed by the concrete schedule, so resolve the
	// default schedule before subscribing.
	if scheduleID == "" {
		flight, err := h.quoteService.GetFlight(r.Context(), flightID)
		if err != nil {
			respondError(w, http.StatusNotFound, "Flight not found")
			return
		}
		switch {
		case flight.Schedule != nil:
			scheduleID = flight.Schedule.ID
		case len(flight.UpcomingSchedules) > 0:
			scheduleID = flight.UpcomingSchedules[0].ID
		default:
			scheduleID = flight.ID
		}
	}

	snapshot, err := h.quoteService.GetOccupancy(r.Context(), flightID, scheduleID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Flight or schedule not found")
		return
	}

	websocket.ServeWS(h.hub, w, r, flightID, scheduleID, snapshot)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
