package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-animator/internal/config"
	"github.com/vovakirdan/tui-animator/internal/library"
	"github.com/vovakirdan/tui-animator/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.animator/host_key.
	HostKeyPath string

	// DBPath is the catalog database shared by every session.
	DBPath string

	// LibraryDir is a directory of animation files offered to every session.
	// Empty means the catalog only.
	LibraryDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Player supplies playback, raster and theme settings for sessions.
	Player config.PlayerConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	player := config.DefaultPlayerConfig()
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      player.Catalog.DBPath,
		IdleTimeout: 30 * time.Minute,
		Player:      player,
	}
}

// SSHServer serves the animation session to every SSH connection.
// The library is loaded once at startup; the catalog is read live, so
// imports made while the server runs show up in new menus.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	shelf  Shelf
	look   Appearance
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
// A catalog that cannot be opened or a library that cannot be read is
// logged and left out rather than failing startup.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	look, err := AppearanceFrom(cfg.Player)
	if err != nil {
		return nil, fmt.Errorf("invalid player config: %w", err)
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		look:   look,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "animator-ssh",
		}),
	}
	srv.openShelf()

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// Middlewares run last to first: log, require a terminal, then play.
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".animator", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// openShelf fills the shelf from the catalog and the library directory.
func (s *SSHServer) openShelf() {
	store, err := storage.Open(s.config.DBPath)
	if err != nil {
		s.logger.Warn("catalog unavailable, serving the library only", "db", s.config.DBPath, "error", err)
	} else {
		s.store = store
		s.shelf.Store = store
	}

	if s.config.LibraryDir == "" {
		return
	}
	entries, err := library.NewLoader(s.config.LibraryDir, s.logger).LoadAll()
	if err != nil {
		s.logger.Warn("could not load library", "dir", s.config.LibraryDir, "error", err)
		return
	}
	s.shelf.Library = entries
	s.logger.Info("library loaded", "dir", s.config.LibraryDir, "animations", len(entries))
}

// teaHandler creates the session model for one connection, sized to its PTY.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := s.config.Player.ToRuntime(pty.Window.Width, pty.Window.Height)
	return NewSessionModel(s.shelf, cfg, s.look, sess.User()), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs each session with the number of open sessions.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"active", s.active.Add(1),
		)
		defer func() {
			s.logger.Info("session ended",
				"user", sess.User(),
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down gracefully.
// A listener failure is returned instead of waiting for a signal.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "active", s.active.Load())
	return s.Shutdown()
}

// Shutdown gives open sessions up to ten seconds to finish, then closes
// the server and the catalog.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
