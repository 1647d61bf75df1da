package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meetboard/api/internal/core/domain"
	"github.com/meetboard/api/internal/core/ports"
)

// VoterIDHeader carries the opaque client token used to deduplicate
// delete votes. It is trusted as-is; there is no authentication.
const VoterIDHeader = "X-User-ID"

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteResponse struct {
	Deleted        bool   `json:"deleted"`
	VotesRemaining int    `json:"votesRemaining,omitempty"`
	Message        string `json:"message"`
}

func (h *VoteHandler) CastDeleteVote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	voterID := r.Header.Get(VoterIDHeader)

	outcome, err := h.service.CastVote(r.Context(), id, voterID)
	if err != nil {
		if errors.Is(err, domain.ErrVoterRequired) {
			writeError(w, http.StatusBadRequest, "User ID is required to vote for deletion.")
			return
		}
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrMeetingNotFound) {
			writeError(w, http.StatusNotFound, "Meeting not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to cast delete vote.")
		return
	}

	resp := voteResponse{
		Deleted: outcome.Deleted,
		Message: "Meeting deleted successfully.",
	}
	if !outcome.Deleted {
		resp.VotesRemaining = outcome.VotesRemaining
		resp.Message = fmt.Sprintf("Vote recorded. %d more vote(s) needed to delete.", outcome.VotesRemaining)
	}

	writeJSON(w, http.StatusOK, resp)
}
