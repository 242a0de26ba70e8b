package config

import "errors"

// WithPort sets the HTTP port
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return errors.New("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithHost sets the interface the HTTP server listens on
func WithHost(host string) Option {
	return func(c *ServerConfig) error {
		c.Host = host
		return nil
	}
}

// WithEnvironment sets the runtime environment
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		c.Environment = env
		return nil
	}
}

// WithDatabase sets the database type and connection URL
func WithDatabase(dbType, url string) Option {
	return func(c *ServerConfig) error {
		c.DatabaseType = dbType
		c.DatabaseURL = url
		return nil
	}
}

// WithDatabaseSchema sets the Postgres search_path schema
func WithDatabaseSchema(schema string) Option {
	return func(c *ServerConfig) error {
		c.DBSchema = schema
		return nil
	}
}

// WithAutoMigrate creates the hero tables when the repository is built
func WithAutoMigrate(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.AutoMigrate = enabled
		return nil
	}
}

// WithStaticURL sets the base URL asset paths are appended to
func WithStaticURL(url string) Option {
	return func(c *ServerConfig) error {
		c.StaticURL = url
		return nil
	}
}

// WithFilesystemAssets lists featured images and module icons from local directories
func WithFilesystemAssets(featuredImageDir, moduleIconDir string) Option {
	return func(c *ServerConfig) error {
		c.AssetSource = "fs"
		c.FeaturedImageDir = featuredImageDir
		c.ModuleIconDir = moduleIconDir
		return nil
	}
}

// WithS3Assets lists featured images and module icons from bucket prefixes
func WithS3Assets(bucket, region, featuredImagePrefix, moduleIconPrefix string) Option {
	return func(c *ServerConfig) error {
		c.AssetSource = "s3"
		c.S3.Bucket = bucket
		if region != "" {
			c.S3.Region = region
		}
		c.S3.FeaturedImagePrefix = featuredImagePrefix
		c.S3.ModuleIconPrefix = moduleIconPrefix
		return nil
	}
}

// WithS3Credentials sets static credentials for the asset bucket
func WithS3Credentials(accessKeyID, secretAccessKey string) Option {
	return func(c *ServerConfig) error {
		c.S3.AccessKeyID = accessKeyID
		c.S3.SecretAccessKey = secretAccessKey
		return nil
	}
}

// WithS3Endpoint points the asset source at an S3-compatible service
func WithS3Endpoint(endpoint string, usePathStyle bool) Option {
	return func(c *ServerConfig) error {
		c.S3.Endpoint = endpoint
		c.S3.UsePathStyle = usePathStyle
		return nil
	}
}

// WithMemoryAssets offers fixed featured image and module icon names
func WithMemoryAssets(featuredImages, moduleIcons []string) Option {
	return func(c *ServerConfig) error {
		c.AssetSource = "memory"
		c.FeaturedImages = featuredImages
		c.ModuleIcons = moduleIcons
		return nil
	}
}

// WithInlineSVGIcons embeds sanitized SVG icons in the icon widget
func WithInlineSVGIcons(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.InlineSVGIcons = enabled
		return nil
	}
}

// WithEventLogging toggles logging of shelf lifecycle events
func WithEventLogging(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.EnableEventLogging = enabled
		return nil
	}
}

// WithAdminAPIKeySHA256 sets the hex SHA-256 of the admin API key
func WithAdminAPIKeySHA256(sum string) Option {
	return func(c *ServerConfig) error {
		c.AdminAPIKeySHA256 = sum
		return nil
	}
}
