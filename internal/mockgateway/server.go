// Package mockgateway is an in-memory stand-in for the message gateway's
// operator API. It serves the same routes and error shapes as the real
// backend so the console can be run and tested without one.
package mockgateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"smscctl/internal/operator"
	"smscctl/pkg/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

const subsystem = "MockGateway"

// BasePath is where the operator routes are mounted.
const BasePath = "/api/v1"

// Options configures the stand-in.
type Options struct {
	// Token, when set, must be presented as "Authorization: Bearer <token>".
	Token string
}

type server struct {
	reg  *Registry
	opts Options
}

// NewServer wires the operator handlers into a router and exposes a health check.
func NewServer(reg *Registry, opts Options) http.Handler {
	s := &server{reg: reg, opts: opts}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route(BasePath+"/operators", func(r chi.Router) {
		r.Use(s.authorize)
		r.Get("/", s.listOperators)
		r.Post("/", s.addOperator)
		r.Put("/{id}", s.updateOperator)
		r.Delete("/{id}", s.deleteOperator)
	})

	return r
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info(subsystem, "Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logging.Info(subsystem, "Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *server) listOperators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.List())
}

func (s *server) addOperator(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	op, err := s.reg.Create(p)
	if err != nil {
		writeRegistryError(w, err)
		return
	}
	logging.Info(subsystem, "Added operator %s (%q priority=%d weight=%d maxTps=%d)",
		op.ID, op.Name, op.Priority, op.Weight, op.MaxTPS)
	writeJSON(w, http.StatusCreated, op)
}

func (s *server) updateOperator(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}
	p, err := decodePayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	op, err := s.reg.Update(id, p)
	if err != nil {
		writeRegistryError(w, err)
		return
	}
	logging.Info(subsystem, "Updated operator %s", op.ID)
	writeJSON(w, http.StatusOK, op)
}

func (s *server) deleteOperator(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}
	if err := s.reg.Delete(id); err != nil {
		writeRegistryError(w, err)
		return
	}
	logging.Info(subsystem, "Deleted operator %d", id)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Operator %d deleted successfully", id),
	})
}

func (s *server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.Token != "" && r.Header.Get("Authorization") != "Bearer "+s.opts.Token {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bindID(w http.ResponseWriter, r *http.Request) (int, bool) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
		return 0, false
	}
	return id, true
}

// wirePayload uses pointers so that a missing field can be told apart from a zero.
type wirePayload struct {
	Name     *string `json:"name"`
	Priority *int    `json:"priority"`
	Weight   *int    `json:"weight"`
	MaxTPS   *int    `json:"maxTps"`
}

func decodePayload(r *http.Request) (operator.Payload, error) {
	var in wirePayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return operator.Payload{}, fmt.Errorf("invalid request body: %w", err)
	}

	var missing []string
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Priority == nil {
		missing = append(missing, "priority")
	}
	if in.Weight == nil {
		missing = append(missing, "weight")
	}
	if in.MaxTPS == nil {
		missing = append(missing, "maxTps")
	}
	if len(missing) > 0 {
		return operator.Payload{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if *in.MaxTPS < 0 {
		return operator.Payload{}, errors.New("maxTps must be zero or greater")
	}

	return operator.Payload{
		Name:     *in.Name,
		Priority: *in.Priority,
		Weight:   *in.Weight,
		MaxTPS:   *in.MaxTPS,
	}, nil
}

func writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNameTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn(subsystem, "Failed to write response: %v", err)
	}
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.Debug(subsystem, "%s %s -> %d (%s) req=%s",
			r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Microsecond), middleware.GetReqID(r.Context()))
	})
}
