package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/flysas/internal/models"
)

// Cache stores normalized offers keyed by search criteria.
type Cache interface {
	Get(ctx context.Context, criteria models.SearchCriteria) (*models.FlightOffersResult, bool)
	Set(ctx context.Context, criteria models.SearchCriteria, result *models.FlightOffersResult) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, criteria models.SearchCriteria) (*models.FlightOffersResult, bool) {
	data, err := c.client.Get(ctx, generateKey(criteria)).Bytes()
	if err != nil {
		return nil, false
	}

	var result models.FlightOffersResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}

	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, criteria models.SearchCriteria, result *models.FlightOffersResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey(criteria), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, criteria models.SearchCriteria) (*models.FlightOffersResult, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, criteria models.SearchCriteria, result *models.FlightOffersResult) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// generateKey hashes the criteria after defaults are applied, so omitted and
// explicit default values share an entry.
func generateKey(criteria models.SearchCriteria) string {
	data, _ := json.Marshal(criteria.WithDefaults())
	hash := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(hash[:])
}
