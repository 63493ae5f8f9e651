package app

import (
	"time"

	"github.com/memeparty/server/internal/config"
	http_content "github.com/memeparty/server/internal/delivery/http/content"
	http_init "github.com/memeparty/server/internal/delivery/http/init"
	http_ratelimit_middleware "github.com/memeparty/server/internal/delivery/http/middleware/ratelimit"
	http_room "github.com/memeparty/server/internal/delivery/http/room"
	ws_game "github.com/memeparty/server/internal/delivery/ws/game"
	infra_postgres_content "github.com/memeparty/server/internal/infra/postgres/content"
	infra_pg_init "github.com/memeparty/server/internal/infra/postgres/init"
	infra_redis_init "github.com/memeparty/server/internal/infra/redis/init"
	infra_redis_lastroom "github.com/memeparty/server/internal/infra/redis/lastroom"
	"github.com/memeparty/server/internal/service/binding"
	storage_room "github.com/memeparty/server/internal/storage/room"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
	usecase_room "github.com/memeparty/server/internal/usecase/room"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	registry := storage_room.New()
	roomUC := usecase_room.New(registry)

	hub := ws_game.NewHub()
	binder := binding.New(hub)
	contentRepo := infra_postgres_content.New(pgConn)
	lastRooms := infra_redis_lastroom.New(redisConn, "last_room", 24*time.Hour)

	gameUC := usecase_game.New(registry, binder, hub, contentRepo, lastRooms)

	limiter := http_ratelimit_middleware.New(redisConn, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC, gameUC, lastRooms, limiter))
	controllerPool.Add(http_content.New(contentRepo))
	controllerPool.Add(ws_game.NewController(hub, gameUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
