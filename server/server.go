package server

import (
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"auto_blog_generator/generator"
)

type Server struct {
	genAgent *generator.Agent
	logger   zerolog.Logger
}

func New(genAgent *generator.Agent, logger *zerolog.Logger) (*Server, error) {
	if genAgent == nil {
		return nil, errors.New("generator agent required")
	}
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Server{genAgent: genAgent, logger: l}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/blogs", s.handleGenerate)
	mux.HandleFunc("POST /api/blogs/stream", s.handleStream)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logMiddleware(mux)
}

// --- Handlers ---

type generateReq struct {
	Topic string `json:"topic"`
}

type generateResp struct {
	Data generator.GenerationState `json:"data"`
}

type errorResp struct {
	Error string `json:"error"`
}

func decodeTopic(r *http.Request) (string, error) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", &generator.ValidationError{Msg: "invalid request body: " + err.Error()}
	}
	return generator.ValidateTopic(req.Topic)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	topic, err := decodeTopic(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	state, err := s.genAgent.Run(r.Context(), topic)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Data: state})
}

// handleStream answers with JSON until the first event is known, so a failed title
// call still gets a plain error response; after that the status is committed and
// failures travel as an error event.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	topic, err := decodeTopic(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	next, stop := iter.Pull(s.genAgent.StreamRun(r.Context(), topic))
	defer stop()

	first, ok := next()
	if !ok {
		writeError(w, "stream produced no events")
		return
	}
	if first.Name == generator.EventError {
		writeError(w, first.Data)
		return
	}

	ew := newEventWriter(w)
	for ev, ok := first, true; ok; ev, ok = next() {
		if err := ew.Write(ev); err != nil {
			s.logger.Warn().Err(err).Str("request_id", requestID(r)).Msg("stream write failed")
			return
		}
		if ev.Terminal() {
			return
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResp{Error: msg})
}

const requestIDHeader = "X-Request-Id"

func requestID(r *http.Request) string {
	return r.Header.Get(requestIDHeader)
}

// statusRecorder remembers the status code; Unwrap keeps Flush reachable through
// http.ResponseController.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.status == 0 {
		rec.status = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.ResponseWriter.Write(b)
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		s.logger.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
