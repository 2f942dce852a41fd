package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"docyo/internal/models"

	"github.com/redis/go-redis/v9"
)

const doctorCatalogKey = "catalog:doctors"

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, redisURL string) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

type catalogSnapshot struct {
	StoredAt int64           `json:"stored_at"`
	Doctors  []models.Doctor `json:"doctors"`
}

// StoreDoctorCatalog saves the full catalog snapshot with expiration
func (r *RedisClient) StoreDoctorCatalog(ctx context.Context, doctors []models.Doctor, ttl time.Duration) error {
	data, err := json.Marshal(catalogSnapshot{StoredAt: time.Now().Unix(), Doctors: doctors})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := r.client.Set(ctx, doctorCatalogKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store catalog in Redis: %w", err)
	}
	return nil
}

// GetDoctorCatalog reports ok=false when no snapshot is cached.
func (r *RedisClient) GetDoctorCatalog(ctx context.Context) ([]models.Doctor, bool, error) {
	data, err := r.client.Get(ctx, doctorCatalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get catalog from Redis: %w", err)
	}

	var snapshot catalogSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return snapshot.Doctors, true, nil
}

func (r *RedisClient) DeleteDoctorCatalog(ctx context.Context) error {
	return r.client.Del(ctx, doctorCatalogKey).Err()
}

// GetStatus reports connection pool counters for the debug endpoint.
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()
	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
