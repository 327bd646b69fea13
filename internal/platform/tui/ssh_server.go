package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.runner/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the frame rate requested for every session.
	TickRate int

	// MaxDelta bounds the frame delta handed to the game (seconds).
	MaxDelta float64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		MaxDelta:    core.DefaultConfig().MaxDelta,
	}
}

// SSHServer wraps a Wish SSH server that hosts one runner session per connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-ssh",
	})

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".runner", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
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
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
		MaxDelta: s.config.MaxDelta,
	}

	model := NewSessionModel(cfg, sshSession.User(), s.logger)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionView is the screen a session is currently showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewRuns
)

// SessionModel manages the full session flow: menu -> game -> menu,
// with the runs table reachable from the menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	config   core.RuntimeConfig
	username string
	logger   *log.Logger
	runs     *RunLog
	view     sessionView
	menu     MenuModel
	game     *Model
	runsView RunsModel
	quitting bool
}

// NewSessionModel creates a new session model. logger may be nil.
func NewSessionModel(cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	runs := NewRunLog(defaultRunLogLimit)
	return SessionModel{
		config:   cfg,
		username: username,
		logger:   logger,
		runs:     runs,
		menu:     NewMenuModel(cfg, runs),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRuns() {
		m.runsView = NewRunsModel(m.runs, m.config.ScreenW, m.config.ScreenH)
		m.view = viewRuns
		return m, m.runsView.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := CreateGame(selected.GameID, selected.Preset)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.logInfo("cannot create game", "game", selected.GameID, "error", err)
			m.menu = NewMenuModel(m.config, m.runs)
			return m, nil
		}

		m.config.Seed = time.Now().UnixNano()
		gm := NewModel(game, m.config, m.runs)
		gm.embedded = true
		m.game = &gm
		m.view = viewGame
		m.logInfo("game started", "user", m.username, "game", selected.GameID, "preset", selected.Preset)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.runs.Len()
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.runs.Len() > before {
		if best, ok := m.runs.Best(); ok {
			m.logInfo("run finished", "user", m.username, "score", m.game.gameState.Score, "best", best.Score)
		}
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.view = viewMenu
		m.menu = NewMenuModel(m.config, m.runs)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRuns handles updates when the runs table is shown.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newRuns, cmd := m.runsView.Update(msg)
	if rm, ok := newRuns.(RunsModel); ok {
		m.runsView = rm
	}

	if m.runsView.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.runsView.IsGoingBack() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.config, m.runs)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) logInfo(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Info(msg, keyvals...)
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.game != nil {
			return m.game.View()
		}
	case viewRuns:
		return m.runsView.View()
	}
	return m.menu.View()
}
