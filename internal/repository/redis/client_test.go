package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestInitRedisWithoutAddressDisablesCache(t *testing.T) {
	if err := InitRedis("", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if IsRedisEnabled() {
		t.Fatalf("cache should be disabled without REDIS_URL")
	}
}

func TestInitRedisUnreachableDisablesCache(t *testing.T) {
	if err := InitRedis("127.0.0.1:1", ""); err != nil {
		t.Fatalf("an unreachable server must not fail startup: %v", err)
	}
	defer CloseRedis()
	if IsRedisEnabled() {
		t.Fatalf("cache should be disabled when Redis is unreachable")
	}
}

func TestMoveCacheSurfacesConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	cache := NewMoveCache(client)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, found, err := cache.GetMove(ctx, "d5:6x7:000")
	if err == nil || found {
		t.Fatalf("expected an error and no hit, got found=%v err=%v", found, err)
	}
	if err := cache.SetMove(ctx, "d5:6x7:000", 3, time.Minute); err == nil {
		t.Fatalf("expected SetMove to fail without a server")
	}
}
