package auth

import "time"

// Config holds authentication settings, populated once at process start.
type Config struct {
	JWT JWTConfig
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
}

// DefaultConfig returns the baseline auth configuration.
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTokenTTL: 24 * time.Hour,
			Issuer:         "hireline",
		},
	}
}
