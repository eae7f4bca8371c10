package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	// JWTSecret signs access tokens, JWTRefreshSecret signs refresh
	// tokens. Both are mandatory; the token manager refuses to start
	// without them.
	JWTSecret        string
	JWTRefreshSecret string
	AccessTTL        string
	RefreshTTL       string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "3001"),
		},
		Auth: AuthConfig{
			JWTSecret:        os.Getenv("JWT_SECRET"),
			JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
			AccessTTL:        getenv("JWT_ACCESS_TTL", "15m"),
			RefreshTTL:       getenv("JWT_REFRESH_TTL", "168h"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Log: LogConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "console"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
