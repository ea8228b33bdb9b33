package config

// DBConfig contains PostgreSQL database configuration for the legacy
// publication store. Access is strictly read-only; nothing in this service
// ever writes to these tables.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"edimon"`
	Password string `env:"PASSWORD" envDefault:"edimon"`
	Name     string `env:"NAME"     envDefault:"edi"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production

	// MaxOpenConns caps the connection pool. The legacy database serves the
	// production pipeline first; the monitor should stay a light guest.
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"4"`
}

// RedisConfig contains Redis configuration. Redis holds per-session view
// state and the optional page-result cache.
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
