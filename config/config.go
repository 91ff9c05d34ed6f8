package config

import "os"

// JWTSecret returns the token signing key. Read from the environment at
// call time, not package init, so a secret loaded from .env by main is
// honored.
func JWTSecret() []byte {
	return []byte(getEnv("JWT_SECRET", "pgstay_dev_secret_change_me"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
