package jwt

import "time"

// Config holds the leader token settings.
type Config struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`
}
