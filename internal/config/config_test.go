package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":3000", cfg.HTTPAddr)
	require.Equal(t, "hotel", cfg.Mongo.Database)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, 5*time.Minute, cfg.Cache.RoomTTL)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8081")
	t.Setenv("MONGODB_DB", "hotel_test")
	t.Setenv("ROOM_CACHE_TTL_SECONDS", "30")

	cfg := Load()

	require.Equal(t, ":8081", cfg.HTTPAddr)
	require.Equal(t, "hotel_test", cfg.Mongo.Database)
	require.Equal(t, 30*time.Second, cfg.Cache.RoomTTL)
}
