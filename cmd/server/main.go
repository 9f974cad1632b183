package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/solicare/donation-board/internal/config"
	"github.com/solicare/donation-board/internal/handler"
	"github.com/solicare/donation-board/internal/middleware"
	"github.com/solicare/donation-board/internal/queue"
	"github.com/solicare/donation-board/internal/repository"
	"github.com/solicare/donation-board/internal/router"
	queue_publisher "github.com/solicare/donation-board/internal/service"
	"github.com/solicare/donation-board/internal/store"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	cfg := config.Load()

	// A corrupt store is fatal: better to refuse to start than to
	// serve (and later overwrite) state we could not read.
	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	if err := st.Seed(cfg.BcryptCost); err != nil {
		log.Fatalf("seed store: %v", err)
	}

	users := repository.NewUserRepo(st)
	cases := repository.NewCaseRepo(st)
	subs := repository.NewSubscriptionRepo(st)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and response cache disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cacheCfg := config.LoadCacheConfig()
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	auth := handler.NewAuthHandler(cfg, users)
	public := handler.NewPublicCaseHandler(cases)
	assoc := handler.NewAssociationCaseHandler(cases)
	admin := handler.NewAdminCaseHandler(cases)
	admin.Publish = queue_publisher.PublishCaseApproved
	admin.InvalidateCache = middleware.NewCacheInvalidator(cacheCfg, rdb)
	subscriptions := handler.NewSubscriptionHandler(subs)

	e := echo.New()
	e.Validator = handler.NewValidator()

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret, limiter)
	router.RegisterPublic(e, public, subscriptions, cache)
	router.RegisterAssociation(e, assoc, cfg.JWTSecret)
	router.RegisterAdmin(e, admin, cfg.JWTSecret)

	go func() {
		if err := queue.StartNotificationConsumer(subs); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, st.Path())

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
