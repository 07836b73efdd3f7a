package handler

import (
	"errors"
	"log"
	"net/http"

	"soothe/internal/service"
)

// writeServiceError maps service-layer errors onto HTTP statuses. Upstream
// detail goes to the logs; clients get a generic message so internal error
// text is never echoed to an untrusted caller.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTopicNotFound), errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrQuotaExceeded):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, service.ErrUpstreamAuth):
		log.Printf("upstream auth failure: %v", err)
		writeError(w, http.StatusUnauthorized, "AI backend is misconfigured")
	case errors.Is(err, service.ErrRateLimited):
		log.Printf("upstream rate limited: %v", err)
		writeError(w, http.StatusTooManyRequests, "could not generate a response right now, try again shortly")
	case errors.Is(err, service.ErrUpstreamUnavailable):
		log.Printf("upstream unavailable: %v", err)
		writeError(w, http.StatusServiceUnavailable, "could not generate a response right now, try again shortly")
	case errors.Is(err, service.ErrBadResponse):
		log.Printf("unusable upstream response: %v", err)
		writeError(w, http.StatusInternalServerError, "could not generate a response right now, try again shortly")
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
