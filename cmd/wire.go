package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"studiohub/internal/adapters/fm"
	"studiohub/internal/adapters/memstore"
	tomlrepo "studiohub/internal/adapters/repo/toml"
	"studiohub/internal/application"
	"studiohub/internal/ports"
)

type app struct {
	demo  bool
	debug bool

	logger       *zap.Logger
	session      ports.SessionManager
	source       ports.RecordSource
	deliverables *application.DeliverableService
	directory    *application.DirectoryService
	filters      ports.FilterRepository
	now          func() time.Time

	// storeErr holds a credential wiring failure; commands that never
	// touch the store (version, filters) still work without one.
	storeErr error
}

func newApp() *app {
	return &app{now: time.Now}
}

// init wires the process-scoped collaborators once per invocation: one
// session manager per remote database, shared by every call.
func (a *app) init() error {
	logger, err := newLogger(a.debug)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}
	a.logger = logger

	filters, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return fmt.Errorf("wire filter repository: %w", err)
	}
	a.filters = filters

	if a.demo {
		store := memstore.New()
		memstore.Seed(store, a.now())
		a.source = store
	} else {
		creds, err := loadCredentials()
		if err != nil {
			a.storeErr = fmt.Errorf("load credentials: %w", err)
			return nil
		}

		session := fm.NewSession(creds, fm.WithSessionLogger(logger))
		a.session = session
		a.source = fm.NewClient(creds, session, fm.WithLogger(logger))
	}

	a.deliverables = application.NewDeliverableService(a.source, ports.SystemClock{}, logger)
	a.directory = application.NewDirectoryService(a.source, logger)

	return nil
}

// ready reports whether store-backed commands can run.
func (a *app) ready() error {
	if a.storeErr != nil {
		return a.storeErr
	}
	return nil
}

// shutdown closes the remote session best-effort.
func (a *app) shutdown(ctx context.Context) {
	if a.session != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		a.session.Shutdown(shutdownCtx)
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// loadCredentials reads the STUDIOHUB_* environment: host, database
// (default "StudioHub"), api username/password, ssl_verify toggle.
func loadCredentials() (fm.Credentials, error) {
	v := viper.New()
	v.SetEnvPrefix("studiohub")
	v.AutomaticEnv()
	v.SetDefault("database", "StudioHub")

	creds := fm.Credentials{
		Host:      v.GetString("host"),
		Database:  v.GetString("database"),
		Username:  v.GetString("username"),
		Password:  v.GetString("password"),
		VerifyTLS: v.GetBool("ssl_verify"),
	}
	if err := creds.Validate(); err != nil {
		return fm.Credentials{}, err
	}
	return creds, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
