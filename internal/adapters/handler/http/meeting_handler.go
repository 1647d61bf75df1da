package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meetboard/api/internal/core/domain"
	"github.com/meetboard/api/internal/core/ports"
)

type MeetingHandler struct {
	service  ports.MeetingService
	exporter ports.CalendarExporter
}

func NewMeetingHandler(service ports.MeetingService, exporter ports.CalendarExporter) *MeetingHandler {
	return &MeetingHandler{
		service:  service,
		exporter: exporter,
	}
}

type meetingRequest struct {
	Title string `json:"title"`
	Time  string `json:"time"`
	Link  string `json:"link"`
}

func (h *MeetingHandler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch meetings.")
		return
	}

	// An empty board is an empty array, not null.
	if meetings == nil {
		meetings = []*domain.Meeting{}
	}
	writeJSON(w, http.StatusOK, meetings)
}

func (h *MeetingHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req meetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	meeting, err := h.service.Create(r.Context(), ports.MeetingInput{
		Title: req.Title,
		Time:  req.Time,
		Link:  req.Link,
	})
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create meeting.")
		return
	}

	writeJSON(w, http.StatusCreated, meeting)
}

func (h *MeetingHandler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req meetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	meeting, err := h.service.Update(r.Context(), id, ports.MeetingInput{
		Title: req.Title,
		Time:  req.Time,
		Link:  req.Link,
	})
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrMeetingNotFound) {
			writeError(w, http.StatusNotFound, "Meeting not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update meeting.")
		return
	}

	writeJSON(w, http.StatusOK, meeting)
}

func (h *MeetingHandler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch meetings.")
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="meetings.ics"`)
	if err := h.exporter.Export(w, meetings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export calendar.")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
