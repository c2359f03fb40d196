package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/config"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/db"
	handlers "github.com/JackFaiSeT/purple-school-airbnb/internal/http/handler"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/http/middleware"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/logger"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/repo"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	// --- Mongo ---
	mdb, err := db.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		zlog.Fatal("mongo", zap.Error(err))
	}
	if err := db.EnsureIndexes(ctx, mdb); err != nil {
		zlog.Fatal("ensure indexes", zap.Error(err))
	}

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Fatal("redis ping", zap.Error(err))
	}

	// --- Repos ---
	roomRepo := repo.NewRoomRepoMongo(mdb)
	scheduleRepo := repo.NewScheduleRepoMongo(mdb)
	roomCache := repo.NewRoomCacheRedis(rdb, cfg.Cache.RoomTTL, zlog)

	// --- Services ---
	roomSvc := service.NewRoomService(roomRepo, roomCache, zlog)
	scheduleSvc := service.NewScheduleService(scheduleRepo, zlog)

	// --- HTTP ---
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog), gin.Recovery())
	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := r.Group("/api")
	handlers.NewRoomHandler(roomSvc).Register(api)
	handlers.NewScheduleHandler(scheduleSvc).Register(api)

	zlog.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zlog.Fatal("server", zap.Error(err))
	}
}
