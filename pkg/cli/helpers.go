package cli

import (
	"errors"
	"log/slog"
	"os"
	"os/user"
	"strings"

	"github.com/notegen/notegen/pkg/clipboard"
	"github.com/notegen/notegen/pkg/config"
	"github.com/notegen/notegen/pkg/logging"
	"github.com/notegen/notegen/pkg/template"
)

// loadConfig resolves the effective configuration: the --config flag,
// otherwise the default path, otherwise built-in defaults when no file
// exists yet.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrFileNotFound) && configPath == "" {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the command logger from config, with the --log-level
// flag taking precedence.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return logging.FromStrings(level, cfg.LogFormat)
}

// hostIdentity resolves the real hostname and username, leaving fields
// empty (and thus on their fallback literals) when the system cannot
// supply them.
func hostIdentity() template.Identity {
	var ident template.Identity
	if h, err := os.Hostname(); err == nil {
		// Remove domain part if present
		ident.Hostname = strings.Split(h, ".")[0]
	}
	if u, err := user.Current(); err == nil {
		ident.Username = u.Username
	}
	return ident
}

// expandContext assembles the engine Context for one invocation.
// Clipboard text is fetched once, and only when one of the templates
// actually contains a clip token.
func expandContext(cfg *config.Config, provider clipboard.Provider, templates ...string) *template.Context {
	ctx := &template.Context{}
	if cfg.UseHostIdentity {
		ctx.Identity = hostIdentity()
	}
	for _, tmpl := range templates {
		if strings.Contains(tmpl, "{clip") {
			ctx.Clipboard = clipboard.Text(provider)
			break
		}
	}
	return ctx
}
