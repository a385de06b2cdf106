package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_ProductionRequiresIssuerAndAudience(t *testing.T) {
	c := Config{
		App:   AppConfig{Env: "production", Port: 8080},
		Mongo: MongoConfig{URI: "mongodb://localhost:27017", Database: "fabrika"},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		Auth:  AuthConfig{JWTSecret: "secret"},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production without JWT_ISSUER/JWT_AUDIENCE")
	}
}

func TestValidate_AppliesTokenTTLDefaults(t *testing.T) {
	c := Config{
		App:   AppConfig{Env: "local", Port: 8080},
		Mongo: MongoConfig{URI: "mongodb://localhost:27017", Database: "fabrika"},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		Auth:  AuthConfig{JWTSecret: "secret"},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Auth.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m access ttl default, got %v", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL != 7*24*time.Hour {
		t.Fatalf("expected 7d refresh ttl default, got %v", c.Auth.RefreshTokenTTL)
	}
	if c.Auth.LoginRateLimit != 10 {
		t.Fatalf("expected login rate limit default, got %d", c.Auth.LoginRateLimit)
	}
}

func TestLoad_ReportsMalformedOptionalValues(t *testing.T) {
	for k, v := range map[string]string{
		"APP_ENV":        "local",
		"APP_PORT":       "8080",
		"MONGO_URI":      "mongodb://localhost:27017",
		"MONGO_DATABASE": "fabrika",
		"REDIS_HOST":     "localhost",
		"REDIS_PORT":     "6379",
		"JWT_SECRET":     "secret",
	} {
		t.Setenv(k, v)
	}
	// Typos must surface as config errors, not silently become defaults.
	t.Setenv("JWT_ACCESS_TTL", "15minutes")
	t.Setenv("LOGIN_RATE_LIMIT", "ten")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected an error for malformed optional values")
	}
	for _, want := range []string{"JWT_ACCESS_TTL", "LOGIN_RATE_LIMIT"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error should name %s, got %v", want, err)
		}
	}
}

func TestValidate_RefreshTTLMustExceedAccessTTL(t *testing.T) {
	c := Config{
		App:   AppConfig{Env: "local", Port: 8080},
		Mongo: MongoConfig{URI: "mongodb://localhost:27017", Database: "fabrika"},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		Auth: AuthConfig{
			JWTSecret:       "secret",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: time.Minute,
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error when refresh ttl <= access ttl")
	}
}
