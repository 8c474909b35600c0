package server

import (
	"net/http"

	"github.com/kasuboski/showtrack/pkg/logger"
	"go.uber.org/zap"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

func (s Server) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request CreateUserRequest
		if err := s.decodeBody(r, &request); err != nil {
			handleError(w, r, "invalid create user request", err)
			return
		}

		user, err := s.manager.CreateUser(r.Context(), request.Username)
		if err != nil {
			handleError(w, r, "failed to create user", err)
			return
		}

		if err := writeResponse(w, http.StatusCreated, GenericResponse{Response: user}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		users, err := s.manager.ListUsers(r.Context())
		if err != nil {
			handleError(w, r, "failed to list users", err)
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: users}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		userID, err := pathID(r, "userID")
		if err != nil {
			handleError(w, r, "invalid user id", err)
			return
		}

		user, err := s.manager.GetUser(r.Context(), userID)
		if err != nil {
			handleError(w, r, "failed to get user", err)
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: user}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// DeleteUser removes the user with all of its shows and watch state
func (s Server) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "userID")
		if err != nil {
			handleError(w, r, "invalid user id", err)
			return
		}

		if err := s.manager.DeleteUser(r.Context(), userID); err != nil {
			handleError(w, r, "failed to delete user", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
