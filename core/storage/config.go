package storage

// Config holds configuration for the storage provider.
// R2 is S3-compatible, so the same settings cover R2, S3, and MinIO.
type Config struct {
	// Endpoint is the URL of the storage service (R2 account endpoint
	// or a local MinIO instance).
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding media and metadata.
	Bucket string `mapstructure:"bucket" default:"content"`
	// Region is the location of the bucket. R2 uses "auto".
	Region string `mapstructure:"region" default:"auto"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
