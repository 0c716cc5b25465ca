package database

// Config holds configuration for the database connection.
type Config struct {
	// URL is a full connection string (e.g. a Neon postgres URL).
	// When set it takes precedence over the discrete fields below.
	URL string `mapstructure:"url" default:""`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"postgres"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"content_platform"`
	// SSLMode is the postgres sslmode parameter (disable, require, ...).
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// Driver is the database driver (postgres, sqlite).
	Driver string `mapstructure:"driver" default:"postgres"`
	// TimeoutSeconds is the connection and ping timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
