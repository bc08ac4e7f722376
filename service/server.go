package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/0xalexb/objectops/recipe"
)

// Timeouts applied to every edit service connection.
const (
	ReadHeaderTimeout = 10 * time.Second
	IdleTimeout       = 60 * time.Second
)

// bodyReadRate is the slowest accepted upload rate; ReadTimeout grows with
// MaxBodyBytes so that a full-size document can always be sent.
const bodyReadRate = 64 << 10 // bytes per second

// Server serves one compiled recipe over HTTP.
type Server struct {
	name    string
	program *recipe.Program
	http    *http.Server
	logger  *slog.Logger

	mu       sync.Mutex
	addr     net.Addr
	done     chan struct{}
	serveErr error

	onFailure func(error)
}

// NewServer builds the edit handler for program and an http.Server whose
// limits derive from cfg. Defaults are applied to cfg before validation.
// onFailure, if non-nil, is called when serving stops for any reason other
// than Stop.
func NewServer(name string, program *recipe.Program, cfg Config, onFailure func(error)) (*Server, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	handler, err := NewHandler(program, cfg)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With(
		slog.String("service", name),
		slog.String("recipe", program.Name()),
	)

	return &Server{
		name:    name,
		program: program,
		logger:  logger,
		http: &http.Server{ //nolint:exhaustruct // remaining fields keep net/http defaults
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadHeaderTimeout + readTimeout(cfg.MaxBodyBytes),
			IdleTimeout:       IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		onFailure: onFailure,
	}, nil
}

func readTimeout(maxBodyBytes int64) time.Duration {
	return time.Duration(maxBodyBytes/bodyReadRate+1) * time.Second
}

// Program returns the recipe the server applies.
func (s *Server) Program() *recipe.Program {
	return s.program
}

// Start listens on the configured address and serves edits in the background.
func (s *Server) Start(ctx context.Context) error {
	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	ln, err := listenCfg.Listen(ctx, "tcp", s.http.Addr)
	if err != nil {
		s.logger.Error("listen failed", slog.String("address", s.http.Addr), slog.Any("error", err))

		return fmt.Errorf("%w: %w", ErrListenFailed, err)
	}

	done := make(chan struct{})

	s.mu.Lock()
	s.addr = ln.Addr()
	s.done = done
	s.serveErr = nil
	s.mu.Unlock()

	s.logger.Info("edit service listening",
		slog.String("address", ln.Addr().String()),
		slog.Int("steps", s.program.Len()),
		slog.Bool("atomic", s.program.Atomic()))

	go s.serve(ln, done)

	return nil
}

func (s *Server) serve(ln net.Listener, done chan struct{}) {
	defer close(done)

	err := s.http.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return
	}

	s.mu.Lock()
	s.serveErr = err
	s.mu.Unlock()

	s.logger.Error("edit service stopped serving", slog.Any("error", err))

	if s.onFailure != nil {
		s.onFailure(err)
	}
}

// Addr returns the bound address once started, the configured one before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.addr != nil {
		return s.addr.String()
	}

	return s.http.Addr
}

// Err returns the error that ended serving, or nil while serving or after a
// clean Stop.
func (s *Server) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.serveErr
}

// Stop lets in-flight edits finish, bounded by ctx, and waits for the serve
// loop to return.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping edit service")

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("shutdown failed", slog.Any("error", err))

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrShutdownFailed, ctx.Err())
		}
	}

	return nil
}
