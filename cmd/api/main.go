package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RestoSuiteApp/resto-scheduler/internal/config"
	"github.com/RestoSuiteApp/resto-scheduler/internal/db"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	"github.com/RestoSuiteApp/resto-scheduler/internal/routes"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	database := db.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Setup(r, database, rdb, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("starting server")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
