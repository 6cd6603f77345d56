// Package config defines the typed configuration structures shared across
// the application. Loading is handled by internal/infrastructure/config.
package config

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig configures the persistence collaborator. Driver "memory"
// keeps all records in process memory; "sqlite" and "mysql" select the
// durable gorm-backed repositories.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenExpHours int    `mapstructure:"token_exp_hours"`
	BcryptCost    int    `mapstructure:"bcrypt_cost"`
}

type EmailConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	// AdminAddress is the fixed recipient of ticket lifecycle notifications.
	AdminAddress string `mapstructure:"admin_address"`
	Enabled      bool   `mapstructure:"enabled"`
}

type StorageConfig struct {
	Driver          string `mapstructure:"driver"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	// MaxUploadBytes caps attachment size. Defaults to 2 MiB.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}
