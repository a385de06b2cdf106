package utils

import (
	"context"
	"testing"
	"time"
)

func TestMongoConfigDefaults(t *testing.T) {
	cfg := MongoConfig{URI: "mongodb://localhost:27017", Database: "fabrika"}.withDefaults()
	if cfg.ConnectTimeout != 10*time.Second {
		t.Fatalf("expected connect timeout default, got %v", cfg.ConnectTimeout)
	}
	if cfg.PingTimeout != 5*time.Second {
		t.Fatalf("expected ping timeout default, got %v", cfg.PingTimeout)
	}
	if cfg.MaxPoolSize != 50 {
		t.Fatalf("expected pool size default, got %d", cfg.MaxPoolSize)
	}
}

func TestOpenMongoRequiresURIAndDatabase(t *testing.T) {
	ctx := context.Background()
	if _, _, err := OpenMongo(ctx, MongoConfig{Database: "fabrika"}); err == nil {
		t.Fatalf("expected error without a uri")
	}
	if _, _, err := OpenMongo(ctx, MongoConfig{URI: "mongodb://localhost:27017"}); err == nil {
		t.Fatalf("expected error without a database")
	}
}

func TestCloseMongoNilClientIsNoop(t *testing.T) {
	if err := CloseMongo(context.Background(), nil, 0); err != nil {
		t.Fatalf("nil client close must be a no-op, got %v", err)
	}
}
