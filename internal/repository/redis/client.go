package redis

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var redisEnabled bool

// InitRedis connects to Redis. An empty address or an unreachable server
// leaves the cache disabled instead of failing startup.
func InitRedis(addr, password string) error {
	if addr == "" {
		log.Println("[REDIS] REDIS_URL not set, move cache disabled")
		redisEnabled = false
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis: %v. Move cache disabled.", err)
		redisEnabled = false
		return nil
	}

	redisEnabled = true
	log.Println("[REDIS] Connected successfully")
	return nil
}

// IsRedisEnabled returns whether Redis is available
func IsRedisEnabled() bool {
	return redisEnabled
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// MoveCache stores computed columns keyed by board snapshot. Search is
// deterministic, so a cached column is always the column a fresh search
// would return.
type MoveCache struct {
	client *redis.Client
	prefix string
}

func NewMoveCache(client *redis.Client) *MoveCache {
	return &MoveCache{client: client, prefix: "connect4:move:"}
}

// GetMove returns the cached column for key. found is false on a miss.
func (c *MoveCache) GetMove(ctx context.Context, key string) (int, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	col, err := strconv.Atoi(val)
	if err != nil {
		// corrupt entry, drop it
		c.client.Del(ctx, c.prefix+key)
		return 0, false, nil
	}
	return col, true, nil
}

// SetMove caches col (domain.NoMove for a full board) under key.
func (c *MoveCache) SetMove(ctx context.Context, key string, col int, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, strconv.Itoa(col), ttl).Err()
}
