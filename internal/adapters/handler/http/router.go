package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(meetingHandler *MeetingHandler, voteHandler *VoteHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/meetings", func(r chi.Router) {
			r.Get("/", meetingHandler.ListMeetings)
			r.Post("/", meetingHandler.CreateMeeting)
			r.Get("/calendar.ics", meetingHandler.ExportCalendar)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(actionLog)
				r.Patch("/", meetingHandler.UpdateMeeting)
				r.Delete("/", voteHandler.CastDeleteVote)
			})
		})
	})

	return r
}
