package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/showtrack/config"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/manager"
	"go.uber.org/zap"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// Server exposes the show manager over http
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.ShowManager
	config     config.Server
	webhook    config.Webhook
	validate   *validator.Validate
}

// New creates a new server
func New(logger *zap.SugaredLogger, manager *manager.ShowManager, cfg config.Config) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		config:     cfg.Server,
		webhook:    cfg.Webhook,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// statusFor maps manager errors onto http status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, manager.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, manager.ErrMembershipNotFound), errors.Is(err, manager.ErrMembershipRequired):
		return http.StatusConflict
	case errors.Is(err, manager.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, manager.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, manager.ErrCatalogUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, manager.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleError logs err and writes it with the mapped status
func handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	log := logger.FromCtx(r.Context())

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error(msg, zap.Error(err))
	} else {
		log.Debug(msg, zap.Error(err))
	}

	if err := writeErrorResponse(w, status, err); err != nil {
		log.Error("failed to write response", zap.Error(err))
	}
}

// Router builds the http handler for every route
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/search", s.SearchShows()).Methods(http.MethodGet)

	v1.HandleFunc("/users", s.ListUsers()).Methods(http.MethodGet)
	v1.HandleFunc("/users", s.CreateUser()).Methods(http.MethodPost)
	v1.HandleFunc("/users/{userID}", s.GetUser()).Methods(http.MethodGet)
	v1.HandleFunc("/users/{userID}", s.DeleteUser()).Methods(http.MethodDelete)

	v1.HandleFunc("/users/{userID}/shows", s.ListShows()).Methods(http.MethodGet)
	v1.HandleFunc("/users/{userID}/shows", s.AddShow()).Methods(http.MethodPost)
	v1.HandleFunc("/users/{userID}/shows/{showID}", s.RemoveShow()).Methods(http.MethodDelete)
	v1.HandleFunc("/users/{userID}/shows/{showID}/ignored", s.SetIgnored()).Methods(http.MethodPut)
	v1.HandleFunc("/users/{userID}/shows/{showID}/episodes", s.ListEpisodes()).Methods(http.MethodGet)
	v1.HandleFunc("/users/{userID}/shows/{showID}/watched", s.MarkAllAiredWatched()).Methods(http.MethodPost)

	v1.HandleFunc("/users/{userID}/episodes/{episodeID}/watched", s.MarkWatched()).Methods(http.MethodPut)
	v1.HandleFunc("/users/{userID}/episodes/{episodeID}/watched", s.MarkUnwatched()).Methods(http.MethodDelete)

	if s.webhook.Enabled {
		v1.HandleFunc("/users/{userID}/webhook", s.Webhook()).Methods(http.MethodPost)
	}

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(rtr)
}

// Serve starts the http server and is a blocking call. It shuts down when ctx
// is done or on interrupt.
func (s Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", s.config.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// pathID parses a positive integer route variable
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, manager.ErrInvalidArgument)
	}
	return id, nil
}

// decodeBody reads a json request body into v and validates it
func (s Server) decodeBody(r *http.Request, v any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("invalid request body: %w", manager.ErrInvalidArgument)
	}

	if err := json.Unmarshal(b, v); err != nil {
		logger.FromCtx(r.Context()).Debug("invalid request body", zap.ByteString("body", b))
		return fmt.Errorf("invalid request body: %w", manager.ErrInvalidArgument)
	}

	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", manager.ErrInvalidArgument, err)
	}

	return nil
}
