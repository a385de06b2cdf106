package utils

import (
	"context"
	"testing"
	"time"
)

func TestFixedWindowScriptCompiles(t *testing.T) {
	// Compile-time smoke test: the script should be initialized.
	if fixedWindowScript == nil {
		t.Fatalf("expected script to be initialized")
	}
}

func TestRedisConfigDefaults(t *testing.T) {
	cfg := RedisConfig{Addr: "localhost:6379"}.withDefaults()
	if cfg.DialTimeout <= 0 || cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 {
		t.Fatalf("expected timeout defaults, got %+v", cfg)
	}
	if cfg.PoolSize <= 0 {
		t.Fatalf("expected pool size default, got %d", cfg.PoolSize)
	}
}

func TestFixedWindowLimiterValidatesArguments(t *testing.T) {
	ctx := context.Background()

	if _, err := (FixedWindowLimiter{}).Allow(ctx, "k"); err == nil {
		t.Fatalf("expected error without a client")
	}
	l := FixedWindowLimiter{Limit: 10, Window: time.Minute}
	if _, err := l.Allow(ctx, ""); err == nil {
		t.Fatalf("expected error for an empty key")
	}
}
