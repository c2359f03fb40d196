package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
)

// RoomCache is a best-effort read cache in front of the room store.
// Misses and cache failures fall through to Mongo; stale entries are
// removed on every mutation of the underlying room.
type RoomCache interface {
	Get(ctx context.Context, id string) (models.Room, bool)
	Set(ctx context.Context, room models.Room)
	Invalidate(ctx context.Context, id string)
}

type roomCacheRedis struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewRoomCacheRedis(rdb *redis.Client, ttl time.Duration, log *zap.Logger) RoomCache {
	return &roomCacheRedis{rdb: rdb, ttl: ttl, log: log}
}

func (c *roomCacheRedis) key(id string) string { return "room:" + id }

func (c *roomCacheRedis) Get(ctx context.Context, id string) (models.Room, bool) {
	v, err := c.rdb.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return models.Room{}, false
	}
	if err != nil {
		c.log.Warn("room cache get", zap.String("id", id), zap.Error(err))
		return models.Room{}, false
	}
	var room models.Room
	if err := json.Unmarshal([]byte(v), &room); err != nil {
		c.log.Warn("room cache decode", zap.String("id", id), zap.Error(err))
		return models.Room{}, false
	}
	return room, true
}

func (c *roomCacheRedis) Set(ctx context.Context, room models.Room) {
	val, err := json.Marshal(room)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(room.ID), val, c.ttl).Err(); err != nil {
		c.log.Warn("room cache set", zap.String("id", room.ID), zap.Error(err))
	}
}

func (c *roomCacheRedis) Invalidate(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn("room cache invalidate", zap.String("id", id), zap.Error(err))
	}
}
