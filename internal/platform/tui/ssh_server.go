package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/storage"
)

// maxPlayerName bounds the name stored with a remote run.
const maxPlayerName = 16

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // Generated at ~/.jumper/host_key when empty
	DBPath      string        // Runs database shared by all sessions
	IdleTimeout time.Duration // Idle connections are closed after this
	Settings    config.Settings
}

// SSHServer serves the level menu to every SSH session. Runs are recorded
// under the session's user name.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	sessions atomic.Int64 // Open sessions
}

// NewSSHServer creates a server. A nil logger logs to stderr. A database that
// cannot be opened only disables run history.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "jumper-ssh",
		})
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if store, err := storage.Open(cfg.DBPath); err != nil {
		logger.Warn("could not open runs database, runs are not recorded", "error", err)
	} else {
		srv.store = store
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey returns the host key path, defaulting to ~/.jumper/host_key,
// and makes sure its directory exists.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".jumper", "host_key")
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// PlayerName turns an SSH user name into the name runs are stored under.
// Spaces and control characters are dropped; an empty result becomes "guest".
func PlayerName(user string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, user)
	if r := []rune(name); len(r) > maxPlayerName {
		name = string(r[:maxPlayerName])
	}
	if name == "" {
		return "guest"
	}
	return name
}

// teaHandler builds the session model. Each session gets a renderer bound to
// its own output so colours follow the client terminal.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "jumper needs a terminal: connect with ssh -t")
		return nil, nil
	}

	cfg := RuntimeConfigFor(s.config.Settings, pty.Window.Width, pty.Window.Height)
	renderer := bubbletea.MakeRenderer(sshSession)
	player := PlayerName(sshSession.User())
	model := NewSessionModel(s.store, s.config.Settings, cfg, player, renderer, s.logger.With("user", player))

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		remote := sshSession.RemoteAddr().String()
		open := s.sessions.Add(1)
		s.logger.Info("session started", "user", sshSession.User(), "remote", remote, "open", open)
		start := time.Now()

		next(sshSession)

		open = s.sessions.Add(-1)
		s.logger.Info("session ended", "user", sshSession.User(), "remote", remote,
			"duration", time.Since(start).Round(time.Second), "open", open)
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down. A listen
// failure is returned at once.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-done:
		s.logger.Info("shutting down", "open", s.sessions.Load())
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions, waits up to ten seconds for open ones
// and closes the runs database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}
