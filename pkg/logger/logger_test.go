package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLevelFollowsEnv(t *testing.T) {
	ctx := context.Background()

	for _, env := range []string{"local", "dev"} {
		if !New(env).Enabled(ctx, slog.LevelDebug) {
			t.Fatalf("%s should log at debug", env)
		}
	}
	for _, env := range []string{"staging", "production"} {
		if New(env).Enabled(ctx, slog.LevelDebug) {
			t.Fatalf("%s should not log at debug", env)
		}
		if !New(env).Enabled(ctx, slog.LevelInfo) {
			t.Fatalf("%s should log at info", env)
		}
	}
}
