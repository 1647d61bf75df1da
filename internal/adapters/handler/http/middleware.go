package http

import (
	"log"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// actionLog records who touched which meeting for the two mutating
// sub-resource operations, edit and vote-for-deletion.
func actionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch || r.Method == http.MethodDelete {
			action := "Edit"
			if r.Method == http.MethodDelete {
				action = "Vote for Deletion"
			}
			log.Printf("action=%q meeting=%s ip=%s", action, chi.URLParam(r, "id"), clientIP(r))
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
