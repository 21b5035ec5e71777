package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/yoola"
)

// MaxMessageSize caps a POST /message body; pages are sent inline.
const MaxMessageSize = 20 << 20

// Server exposes a yoola.MessageHandler over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Addr is the address to listen on, e.g. "127.0.0.1:7878".
	Addr string

	Handler yoola.MessageHandler
	Logger  *slog.Logger
}

// NewServer creates a Server for handler.
func NewServer(addr string, handler yoola.MessageHandler, logger *slog.Logger) *Server {
	s := &Server{Addr: addr, Handler: handler, Logger: logger}
	s.server = &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes returns the HTTP handler with every endpoint registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /message", s.handleMessage)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /languages", s.handleLanguages)
	return s.recoverPanics(s.logRequests(mux))
}

// Open starts listening. Serving happens in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var msg yoola.Message
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxMessageSize)).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, &yoola.Response{Error: "Invalid message: " + err.Error()})
		return
	}

	resp := s.Handler.Handle(r.Context(), &msg)
	if resp == nil {
		resp = &yoola.Response{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &yoola.Response{Success: true})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &yoola.Response{Languages: yoola.Languages()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		next.ServeHTTP(w, r)
		s.logger().Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}

func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				s.logger().Error("panic serving request", "path", r.URL.Path, "panic", v)
				writeJSON(w, http.StatusInternalServerError, &yoola.Response{Error: "Internal error."})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
