package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/mananuf/voba-portal/internal/app/di"
	"github.com/mananuf/voba-portal/internal/app/router"
	"github.com/mananuf/voba-portal/internal/config"
	announcementhandler "github.com/mananuf/voba-portal/internal/feature/announcements/transport/handler"
	announcementusecase "github.com/mananuf/voba-portal/internal/feature/announcements/usecase"
	authadapters "github.com/mananuf/voba-portal/internal/feature/auth/adapters"
	authhandler "github.com/mananuf/voba-portal/internal/feature/auth/transport/handler"
	authusecase "github.com/mananuf/voba-portal/internal/feature/auth/usecase"
	userhandler "github.com/mananuf/voba-portal/internal/feature/users/transport/handler"
	userusecase "github.com/mananuf/voba-portal/internal/feature/users/usecase"
	platformdb "github.com/mananuf/voba-portal/internal/platform/db"
	jwtmw "github.com/mananuf/voba-portal/internal/platform/jwt"
	"github.com/mananuf/voba-portal/internal/platform/mail"
	"github.com/mananuf/voba-portal/internal/platform/password"
	platformredis "github.com/mananuf/voba-portal/internal/platform/redis"
	"github.com/mananuf/voba-portal/internal/platform/verification"
	"github.com/mananuf/voba-portal/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := platformdb.OpenDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := platformredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Platform services
	hasher := password.NewHasher(cfg.BcryptCost, cfg.HashWorkers)
	codes := verification.Generator{}
	tokens := jwtmw.NewService(cfg.JWTSecret, cfg.TokenTTL)

	mailLimiter := ratelimiter.NewRateLimiter(cfg.MailPerMinute, time.Minute)
	mailer, err := mail.NewMailer(cfg, mailLimiter)
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	announcementRepo := di.NewAnnouncementRepository(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, codes, tokens, mailer)
	userUC := userusecase.NewUserUsecase(userRepo)
	announcementUC := announcementusecase.NewAnnouncementUsecase(announcementRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)
	announcementH := announcementhandler.NewAnnouncementHandler(announcementUC)

	r := router.NewRouter(tokens, authH, userH, announcementH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
