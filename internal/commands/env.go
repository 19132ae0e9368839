// Package commands implements the neuroad command line.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/auth"
	"github.com/neuroad/neuroad-cli/internal/config"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/logging"
	"github.com/neuroad/neuroad-cli/internal/theme"
)

// CatalogTTL is how long strategies, platforms and tips are cached.
const CatalogTTL = 10 * time.Minute

// Globals are the root command's persistent flags.
type Globals struct {
	Verbose   bool
	ConfigDir string
	Backend   string
}

var globals Globals

// Prepare applies the persistent flags. It runs before every command.
func Prepare(g Globals, logOut io.Writer) {
	globals = g
	if g.ConfigDir != "" {
		config.SetDir(g.ConfigDir)
	}
	config.LoadEnv()

	level := "warn"
	if cfg, err := config.Load(); err == nil && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	if g.Verbose {
		level = "debug"
	}
	logging.Init(logging.Options{Level: level, Output: logOut})
}

// env is everything a command needs to talk to the backend.
type env struct {
	cfg     *config.Config
	client  *api.Client
	catalog *api.Catalog
	auth    *auth.Store
	lang    *i18n.Store
	theme   *theme.Store
	logger  *slog.Logger
}

// loadEnv builds the client stack from the saved config and wires every
// store so that changes are written back to disk.
func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if globals.Backend != "" {
		cfg.BackendURL = globals.Backend
	}

	client, err := api.NewClient(cfg.BackendURL,
		api.WithSessionToken(cfg.SessionToken),
		api.WithRateLimit(cfg.RateLimit, cfg.Burst),
		api.WithLogger(logging.WithComponent("api")),
	)
	if err != nil {
		return nil, err
	}

	lang, err := i18n.ParseLang(cfg.Language)
	if err != nil {
		slog.Warn("unknown language in config, using default", "language", cfg.Language)
		lang = i18n.Default
	}
	mode, err := theme.ParseMode(cfg.Theme)
	if err != nil {
		slog.Warn("unknown theme in config, using default", "theme", cfg.Theme)
		mode = theme.Light
	}

	e := &env{
		cfg:     cfg,
		client:  client,
		catalog: api.NewCatalog(client, CatalogTTL),
		auth:    auth.NewStore(client, auth.WithMarker(configMarker{}), auth.WithUser(cachedUser(cfg))),
		lang:    i18n.NewStore(lang),
		theme:   theme.NewStore(mode),
		logger:  logging.WithComponent("commands"),
	}
	e.persist()
	return e, nil
}

func (e *env) persist() {
	e.auth.OnChange(func(u *api.User) {
		token := e.client.SessionToken()
		e.save(func(c *config.Config) {
			switch {
			case u != nil:
				c.User = &config.UserConfig{ID: u.UserID, Email: u.Email, Name: u.Name, Picture: u.Picture}
				c.SessionToken = token
			case token == "":
				c.ClearSession()
			default:
				// Identity check failed but the credential is still held,
				// e.g. the backend was unreachable. Keep it for the next run.
				c.User = nil
			}
		})
	})
	e.lang.OnChange(func(l i18n.Lang) {
		e.save(func(c *config.Config) { c.Language = string(l) })
	})
	e.theme.OnChange(func(m theme.Mode) {
		e.save(func(c *config.Config) { c.Theme = string(m) })
	})
}

func (e *env) save(fn func(c *config.Config)) {
	if _, err := config.Update(fn); err != nil {
		e.logger.Error("failed to save config", "error", err)
	}
}

func cachedUser(cfg *config.Config) *api.User {
	if cfg.User == nil || cfg.SessionToken == "" {
		return nil
	}
	return &api.User{
		UserID:  cfg.User.ID,
		Email:   cfg.User.Email,
		Name:    cfg.User.Name,
		Picture: cfg.User.Picture,
	}
}

// configMarker keeps the just-authenticated flag in the config file so a
// `neuroad login` followed by `neuroad` skips the identity-check delay.
type configMarker struct{}

func (configMarker) Mark() {
	if _, err := config.Update(func(c *config.Config) { c.JustAuthenticated = true }); err != nil {
		slog.Warn("failed to record login", "error", err)
	}
}

func (configMarker) Take() bool {
	cfg, err := config.Load()
	if err != nil || !cfg.JustAuthenticated {
		return false
	}
	if _, err := config.Update(func(c *config.Config) { c.JustAuthenticated = false }); err != nil {
		slog.Warn("failed to clear login marker", "error", err)
	}
	return true
}

// authFailure turns a 401 into a hint instead of a failed command.
func authFailure(w io.Writer, err error) error {
	if errors.Is(err, api.ErrUnauthenticated) {
		fmt.Fprintln(w, dimStyle.Render("Not logged in. Run 'neuroad login' first."))
		return nil
	}
	return err
}
