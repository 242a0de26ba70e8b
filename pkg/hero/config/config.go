package config

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-hero/pkg/hero"
	fschoices "github.com/tendant/simple-hero/pkg/hero/choices/fs"
	memorychoices "github.com/tendant/simple-hero/pkg/hero/choices/memory"
	s3choices "github.com/tendant/simple-hero/pkg/hero/choices/s3"
	"github.com/tendant/simple-hero/pkg/hero/repo/memory"
	repopg "github.com/tendant/simple-hero/pkg/hero/repo/postgres"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Host:             "localhost",
		Port:             "8080",
		Environment:      "development",
		DatabaseType:     "memory",
		DBSchema:         "public",
		StaticURL:        "/static/",
		AssetSource:      "fs",
		FeaturedImageDir: "./static/" + hero.FeaturedImagePath,
		ModuleIconDir:    "./static/" + hero.ModuleIconPath,
		S3: S3Config{
			Region:              "us-east-1",
			FeaturedImagePrefix: "static/" + hero.FeaturedImagePath,
			ModuleIconPrefix:    "static/" + hero.ModuleIconPath,
		},
		EnableEventLogging: true,
	}
}

// ServerConfig represents server configuration for the hero service
type ServerConfig struct {
	Host        string
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL  string
	DatabaseType string // "memory", "postgres"
	DBSchema     string // Postgres schema to use (default: public)
	AutoMigrate  bool   // Create the hero tables on startup

	// Asset configuration
	StaticURL        string // Base URL the asset paths are appended to
	AssetSource      string // "fs", "s3", "memory"
	FeaturedImageDir string
	ModuleIconDir    string
	S3               S3Config
	FeaturedImages   []string // Values offered by the memory source
	ModuleIcons      []string
	InlineSVGIcons   bool // Embed sanitized SVG icons in the icon widget (fs source only)

	// Server options
	EnableEventLogging bool
	AdminAPIKeySHA256  string
}

// S3Config locates the asset directories in a bucket
type S3Config struct {
	Bucket              string
	Region              string
	Endpoint            string
	UsePathStyle        bool
	AccessKeyID         string
	SecretAccessKey     string
	FeaturedImagePrefix string
	ModuleIconPrefix    string
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if _, err := c.ListenPort(); err != nil {
		return err
	}

	if c.DatabaseType != "memory" && c.DatabaseType != "postgres" {
		return errors.New("database_type must be 'memory' or 'postgres'")
	}

	if c.DatabaseType == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required when using postgres")
	}

	switch c.AssetSource {
	case "fs":
		if c.FeaturedImageDir == "" || c.ModuleIconDir == "" {
			return errors.New("featured image and module icon directories are required for the fs asset source")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("asset bucket is required for the s3 asset source")
		}
	case "memory":
	default:
		return fmt.Errorf("asset_source must be 'fs', 's3' or 'memory', got '%s'", c.AssetSource)
	}

	return nil
}

// ListenPort returns Port as a TCP port number
func (c *ServerConfig) ListenPort() (int, error) {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port: %q", c.Port)
	}
	return port, nil
}

// AssetURLs returns the base URLs derived from StaticURL
func (c *ServerConfig) AssetURLs() hero.AssetURLs {
	return hero.NewAssetURLs(c.StaticURL)
}

// IconFS returns the filesystem inline SVG icons are read from, or nil when
// icons are linked
func (c *ServerConfig) IconFS() iofs.FS {
	if !c.InlineSVGIcons || c.AssetSource != "fs" {
		return nil
	}
	return os.DirFS(c.ModuleIconDir)
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService() (hero.Service, error) {
	var options []hero.Option

	repo, err := c.buildRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}
	options = append(options, hero.WithRepository(repo))

	images, icons, err := c.buildChoiceSources()
	if err != nil {
		return nil, fmt.Errorf("failed to build asset sources: %w", err)
	}
	options = append(options,
		hero.WithImageChoices(images),
		hero.WithIconChoices(icons),
		hero.WithAssetURLs(c.AssetURLs()),
	)

	if c.EnableEventLogging {
		options = append(options, hero.WithEventSink(hero.NewLogEventSink(slog.Default())))
	} else {
		options = append(options, hero.WithEventSink(hero.NewNoopEventSink()))
	}

	return hero.New(options...)
}

// buildRepository creates a Repository based on the configuration
func (c *ServerConfig) buildRepository() (hero.Repository, error) {
	switch c.DatabaseType {
	case "memory":
		return memory.New(), nil
	case "postgres":
		pool, err := newPool(c.DatabaseURL, c.DBSchema)
		if err != nil {
			return nil, err
		}
		if c.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := repopg.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return repopg.NewWithPool(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}
}

// buildChoiceSources creates the featured image and module icon sources
func (c *ServerConfig) buildChoiceSources() (images, icons hero.ChoiceSource, err error) {
	switch c.AssetSource {
	case "fs":
		if images, err = fschoices.New(fschoices.Config{Dir: c.FeaturedImageDir}); err != nil {
			return nil, nil, err
		}
		if icons, err = fschoices.New(fschoices.Config{Dir: c.ModuleIconDir}); err != nil {
			return nil, nil, err
		}
		return images, icons, nil

	case "s3":
		base := s3choices.Config{
			Region:          c.S3.Region,
			Bucket:          c.S3.Bucket,
			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
			Endpoint:        c.S3.Endpoint,
			UsePathStyle:    c.S3.UsePathStyle,
		}
		imageCfg := base
		imageCfg.Prefix = c.S3.FeaturedImagePrefix
		if images, err = s3choices.New(imageCfg); err != nil {
			return nil, nil, err
		}
		iconCfg := base
		iconCfg.Prefix = c.S3.ModuleIconPrefix
		if icons, err = s3choices.New(iconCfg); err != nil {
			return nil, nil, err
		}
		return images, icons, nil

	case "memory":
		return memorychoices.New(c.FeaturedImages...), memorychoices.New(c.ModuleIcons...), nil

	default:
		return nil, nil, fmt.Errorf("unsupported asset source: %s", c.AssetSource)
	}
}

func newPool(databaseURL, schema string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, errors.New("database_url is required for postgres")
	}
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	if schema != "" {
		cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			_, err := conn.Exec(ctx, "SET search_path TO "+pgx.Identifier{schema}.Sanitize())
			return err
		}
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	return pool, nil
}

// PingPostgres verifies connectivity to Postgres with the configured search_path.
func PingPostgres(databaseURL, schema string) error {
	pool, err := newPool(databaseURL, schema)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
