package server

import (
	"net/http"

	"github.com/kasuboski/showtrack/pkg/manager"
)

func (s Server) MarkWatched() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, episodeID, ok := userAndID(w, r, "episodeID")
		if !ok {
			return
		}

		if err := s.manager.MarkWatched(r.Context(), userID, episodeID); err != nil {
			handleError(w, r, "failed to mark episode watched", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (s Server) MarkUnwatched() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, episodeID, ok := userAndID(w, r, "episodeID")
		if !ok {
			return
		}

		if err := s.manager.MarkUnwatched(r.Context(), userID, episodeID); err != nil {
			handleError(w, r, "failed to mark episode unwatched", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// Webhook accepts watched events from an external player. Events that don't
// resolve to a tracked episode are accepted and dropped.
func (s Server) Webhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "userID")
		if err != nil {
			handleError(w, r, "invalid user id", err)
			return
		}

		var event manager.WebhookEvent
		if err := s.decodeBody(r, &event); err != nil {
			handleError(w, r, "invalid webhook event", err)
			return
		}

		if err := s.manager.HandleWebhook(r.Context(), userID, event); err != nil {
			handleError(w, r, "failed to handle webhook", err)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}
