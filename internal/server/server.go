package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vk/inetgraph/internal/ctxlog"
	"github.com/vk/inetgraph/internal/engine"
	"github.com/vk/inetgraph/internal/metrics"
	"github.com/vk/inetgraph/internal/render"
	"github.com/zishang520/socket.io/v2/socket"
)

// Event names of the live editor protocol.
const (
	EventSource     = "source"
	EventGraph      = "graph"
	EventParseError = "parse_error"
)

// maxSourceBytes bounds the body accepted by POST /compile.
const maxSourceBytes = 1 << 20

const shutdownTimeout = 5 * time.Second

// Options configure a Server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// ShowLabels adds explicit labels to the dot output sent to clients.
	ShowLabels bool
}

// Server recompiles a document on every source event and pushes the graph
// back to the client that sent it.
type Server struct {
	opts    Options
	cache   *engine.Cache
	metrics *metrics.Registry
	logger  *slog.Logger
	io      *socket.Server
	mux     *http.ServeMux
}

// New creates a server. The logger is taken from ctx.
func New(ctx context.Context, opts Options, cache *engine.Cache, reg *metrics.Registry) *Server {
	s := &Server{
		opts:    opts,
		cache:   cache,
		metrics: reg,
		logger:  ctxlog.FromContext(ctx).With("component", "server"),
		io:      socket.NewServer(nil, nil),
		mux:     http.NewServeMux(),
	}

	s.io.On("connection", s.onConnection)

	s.mux.Handle("/socket.io/", s.io.ServeHandler(nil))
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("GET /metrics", reg.Handler())
	s.mux.HandleFunc("POST /compile", s.handleCompile)
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.opts.Addr,
		Handler: s.mux,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Live server starting.", "address", s.opts.Addr)
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("live server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down live server...")
	s.io.Close(nil)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("live server shutdown failed: %w", err)
	}
	s.logger.Debug("Live server shut down gracefully.")
	return nil
}

func (s *Server) onConnection(clients ...any) {
	client, ok := clients[0].(*socket.Socket)
	if !ok {
		return
	}
	logger := s.logger.With("sid", string(client.Id()))
	logger.Debug("Client connected.")
	s.metrics.ConnectedClients.Inc()

	client.On(EventSource, func(args ...any) {
		src, name, ok := decodeSource(args)
		if !ok {
			logger.Warn("Ignoring source event with unexpected payload.")
			return
		}
		event, payload := s.compile(logger, engine.Document{Name: name, Source: src})
		if err := client.Emit(event, payload); err != nil {
			logger.Error("Failed to emit result.", "event", event, "error", err)
		}
	})

	client.On("disconnect", func(reason ...any) {
		logger.Debug("Client disconnected.", "reason", reason)
		s.metrics.ConnectedClients.Dec()
	})
}

// decodeSource accepts either the bare text or an object with "source" and
// an optional "name".
func decodeSource(args []any) (src, name string, ok bool) {
	if len(args) == 0 {
		return "", "", false
	}
	switch v := args[0].(type) {
	case string:
		return v, "", true
	case map[string]any:
		src, ok = v["source"].(string)
		name, _ = v["name"].(string)
		return src, name, ok
	}
	return "", "", false
}

// compile runs one document through the cache and builds the reply event.
func (s *Server) compile(logger *slog.Logger, doc engine.Document) (string, any) {
	id := uuid.NewString()
	logger = logger.With("request_id", id)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	start := time.Now()
	res, hit := s.cache.Compile(ctx, doc)
	elapsed := time.Since(start)

	status := metrics.CompileStatus(res.OK(), len(res.Issues))
	s.metrics.RecordCompile(status, hit, elapsed, len(res.Graph.Nodes), len(res.Graph.Edges))

	graph, err := newGraphPayload(id, res, hit, render.Options{ShowLabels: s.opts.ShowLabels, Name: doc.Name})
	if err != nil {
		logger.Error("Failed to render graph.", "error", err)
	}
	logger.Debug("Compiled.", "status", status, "cached", hit, "nodes", len(graph.Nodes), "duration", elapsed)

	if !res.OK() {
		return EventParseError, ParseErrorPayload{RequestID: id, Errors: newErrorViews(res.Err), Graph: graph}
	}
	return EventGraph, graph
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// handleCompile compiles the request body. Parse errors are returned with
// status 422 and the parse_error payload.
func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	src, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSourceBytes))
	if err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		http.Error(w, "failed to read source: "+err.Error(), code)
		return
	}

	event, payload := s.compile(s.logger, engine.Document{Name: r.URL.Query().Get("name"), Source: string(src)})
	status := http.StatusOK
	if event == EventParseError {
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to write response.", "error", err)
	}
}
