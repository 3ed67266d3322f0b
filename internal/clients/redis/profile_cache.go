package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/soundswipe/soundswipe-backend/internal/logger"
	"github.com/soundswipe/soundswipe-backend/internal/types"
	"github.com/soundswipe/soundswipe-backend/internal/utils"
)

// ProfileCache fronts the taste_profile table. It is an optional
// optimization: every caller must work with a nil cache, and a miss always
// falls through to the datastore.
type ProfileCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*types.TasteProfile, error)
	Set(ctx context.Context, profile *types.TasteProfile) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
	Close() error
}

type profileCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewProfileCache(log *logger.Logger) (ProfileCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	ttlSeconds := utils.GetEnvAsInt("REDIS_PROFILE_TTL_SECONDS", 3600, log)
	if ttlSeconds <= 0 {
		ttlSeconds = 3600
	}
	ttl := time.Duration(ttlSeconds) * time.Second

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &profileCache{
		log: log.With("client", "RedisProfileCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func cacheKey(userID uuid.UUID) string {
	return "taste_profile:" + userID.String()
}

// Get returns (nil, nil) on a cache miss.
func (pc *profileCache) Get(ctx context.Context, userID uuid.UUID) (*types.TasteProfile, error) {
	raw, err := pc.rdb.Get(ctx, cacheKey(userID)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var profile types.TasteProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// Corrupt entry: drop it and report a miss.
		pc.log.Warn("Dropping unreadable cached taste profile", "user_id", userID, "error", err)
		_ = pc.rdb.Del(ctx, cacheKey(userID)).Err()
		return nil, nil
	}
	return &profile, nil
}

func (pc *profileCache) Set(ctx context.Context, profile *types.TasteProfile) error {
	if profile == nil {
		return fmt.Errorf("profile required")
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal taste profile: %w", err)
	}
	if err := pc.rdb.Set(ctx, cacheKey(profile.UserID), raw, pc.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (pc *profileCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := pc.rdb.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (pc *profileCache) Close() error {
	return pc.rdb.Close()
}
