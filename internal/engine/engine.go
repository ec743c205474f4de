// Package engine orchestrates page generation: it owns the resolved config
// and credentials, authenticates once against the server, renders the
// template, and creates, reads, or deletes pages.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bianoble/page-generator/internal/config"
	"github.com/bianoble/page-generator/internal/confluence"
	"github.com/bianoble/page-generator/internal/credentials"
	"github.com/bianoble/page-generator/internal/source"
	"github.com/bianoble/page-generator/internal/transform"
)

// ErrAuthentication is returned when the server rejects the credentials.
var ErrAuthentication = errors.New("authentication error: check that user and password are correct")

// Options configures a Manager.
type Options struct {
	// Client overrides the Confluence client built from the config.
	Client PageClient

	// Logger defaults to a no-op logger.
	Logger *zap.SugaredLogger

	// FS is used to read local templates. Defaults to the OS filesystem.
	FS source.FS

	// Timeout applies to each HTTP request of the default client.
	Timeout time.Duration

	// Variables override or extend the config's template variables.
	Variables []config.Variable
}

// Manager creates, reads, and deletes pages for one configuration.
// It is not safe for concurrent use.
type Manager struct {
	cfg           *config.Config
	creds         credentials.Credentials
	client        PageClient
	registry      *source.Registry
	fs            source.FS
	log           *zap.SugaredLogger
	vars          []config.Variable
	sourceKind    source.Kind
	authenticated bool
}

// Open loads the config file, resolves credentials, and builds a Manager.
func Open(configPath string, opts Options) (*Manager, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	log.Infow("parsing configuration file", "path", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	for _, v := range []string{cfg.User(), cfg.Password()} {
		if name, ok := credentials.EnvReference(v); ok {
			log.Debugw("retrieving value from environment variable", "name", name)
		}
	}
	creds, err := credentials.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	opts.Logger = log
	return New(cfg, creds, opts)
}

// New builds a Manager from an already loaded config. The template source
// must be a URL or an existing file.
func New(cfg *config.Config, creds credentials.Credentials, opts Options) (*Manager, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = source.OSFS{}
	}

	kind, err := source.Classify(fsys, cfg.Source())
	if err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		c, err := confluence.NewClient(confluence.Options{
			BaseURL:  cfg.HostURL(),
			User:     creds.User,
			Password: creds.Password,
			Timeout:  opts.Timeout,
			Logger:   log,
		})
		if err != nil {
			return nil, err
		}
		client = c
	}

	m := &Manager{
		cfg:        cfg,
		creds:      creds,
		client:     client,
		fs:         fsys,
		log:        log,
		vars:       transform.MergeVars(cfg.TemplateVariables(), opts.Variables),
		sourceKind: kind,
	}

	m.registry = source.NewRegistry()
	m.registry.Register(source.KindLocal, &source.LocalResolver{FS: fsys})
	m.registry.Register(source.KindURL, source.ResolverFunc(m.ContentByURL))

	return m, nil
}

// Config returns the configuration the manager was built from.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// User returns the resolved user name.
func (m *Manager) User() string {
	return m.creds.User
}

// SourceKind reports whether the template comes from a URL or a file.
func (m *Manager) SourceKind() source.Kind {
	return m.sourceKind
}

// authenticate probes the server once; later calls are no-ops.
func (m *Manager) authenticate(ctx context.Context) error {
	if m.authenticated {
		return nil
	}

	m.log.Infow("trying basic authentication", "user", m.creds.User, "host", m.cfg.HostURL())
	ok, err := m.client.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authenticating %s@%s: %w", m.creds.User, m.cfg.HostURL(), err)
	}
	if !ok {
		m.log.Errorw(ErrAuthentication.Error(), "user", m.creds.User, "host", m.cfg.HostURL())
		return ErrAuthentication
	}

	m.log.Debugw("basic authentication successful", "user", m.creds.User, "host", m.cfg.HostURL())
	m.authenticated = true
	return nil
}
