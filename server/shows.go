package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/manager"
	"github.com/kasuboski/showtrack/pkg/pagination"
	"github.com/kasuboski/showtrack/pkg/storage"
	"go.uber.org/zap"
)

type AddShowRequest struct {
	ExternalID int32 `json:"externalId" validate:"required,gt=0"`
}

type SetIgnoredRequest struct {
	Ignored *bool `json:"ignored" validate:"required"`
}

type ListShowsResponse struct {
	Shows []manager.UserShow `json:"shows"`
	Meta  pagination.Meta    `json:"meta"`
}

type MarkAllAiredWatchedResponse struct {
	Marked int `json:"marked"`
}

// SearchShows searches the catalog provider for shows
func (s Server) SearchShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		result, err := s.manager.SearchShows(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			handleError(w, r, "failed to search shows", err)
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: result}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ListShows lists the shows on a user's list with their progress
func (s Server) ListShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		userID, err := pathID(r, "userID")
		if err != nil {
			handleError(w, r, "invalid user id", err)
			return
		}

		params, err := ParsePaginationParams(r)
		if err != nil {
			handleError(w, r, "invalid pagination", fmt.Errorf("%w: %w", manager.ErrInvalidArgument, err))
			return
		}

		filter := manager.ListShowsFilter{
			Status: storage.MembershipStatus(r.URL.Query().Get("status")),
		}

		shows, meta, err := s.manager.ListShows(r.Context(), userID, filter, params)
		if err != nil {
			handleError(w, r, "failed to list shows", err)
			return
		}

		resp := GenericResponse{
			Response: ListShowsResponse{Shows: shows, Meta: meta},
		}
		if err := writeResponse(w, http.StatusOK, resp); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// AddShow adds a show to the user's list by its catalog id
func (s Server) AddShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		userID, err := pathID(r, "userID")
		if err != nil {
			handleError(w, r, "invalid user id", err)
			return
		}

		var request AddShowRequest
		if err := s.decodeBody(r, &request); err != nil {
			handleError(w, r, "invalid add show request", err)
			return
		}

		show, err := s.manager.AddShow(r.Context(), userID, request.ExternalID)
		if err != nil {
			handleError(w, r, "failed to add show", err)
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: show}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) RemoveShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, showID, ok := userAndID(w, r, "showID")
		if !ok {
			return
		}

		if err := s.manager.RemoveShow(r.Context(), userID, showID); err != nil {
			handleError(w, r, "failed to remove show", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (s Server) SetIgnored() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, showID, ok := userAndID(w, r, "showID")
		if !ok {
			return
		}

		var request SetIgnoredRequest
		if err := s.decodeBody(r, &request); err != nil {
			handleError(w, r, "invalid set ignored request", err)
			return
		}

		if err := s.manager.SetIgnored(r.Context(), userID, showID, *request.Ignored); err != nil {
			handleError(w, r, "failed to set ignored", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListEpisodes lists a show's episodes with the user's watch state
func (s Server) ListEpisodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		userID, showID, ok := userAndID(w, r, "showID")
		if !ok {
			return
		}

		episodes, err := s.manager.ListEpisodes(r.Context(), userID, showID)
		if err != nil {
			handleError(w, r, "failed to list episodes", err)
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: episodes}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// MarkAllAiredWatched marks every aired episode of the show watched. Pass
// refresh=true to fetch the catalog first.
func (s Server) MarkAllAiredWatched() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		userID, showID, ok := userAndID(w, r, "showID")
		if !ok {
			return
		}

		refresh := false
		if raw := r.URL.Query().Get("refresh"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				handleError(w, r, "invalid refresh", fmt.Errorf("invalid refresh parameter: %w", manager.ErrInvalidArgument))
				return
			}
			refresh = parsed
		}

		marked, err := s.manager.MarkAllAiredWatched(r.Context(), userID, showID, refresh)
		if err != nil {
			handleError(w, r, "failed to mark aired episodes watched", err)
			return
		}

		resp := GenericResponse{Response: MarkAllAiredWatchedResponse{Marked: marked}}
		if err := writeResponse(w, http.StatusOK, resp); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// userAndID parses the user id and a second id from the route. It writes the
// error response and returns false when either is invalid.
func userAndID(w http.ResponseWriter, r *http.Request, name string) (int64, int64, bool) {
	userID, err := pathID(r, "userID")
	if err != nil {
		handleError(w, r, "invalid user id", err)
		return 0, 0, false
	}

	id, err := pathID(r, name)
	if err != nil {
		handleError(w, r, "invalid "+name, err)
		return 0, 0, false
	}

	return userID, id, true
}
