package main

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	mw "github.com/litshelf/books-api/internal/api/middlewares"
	"github.com/litshelf/books-api/internal/api/router"
	"github.com/litshelf/books-api/internal/ratelimit"
	"github.com/litshelf/books-api/internal/repository/sqlconnect"
	"github.com/litshelf/books-api/pkg/utils"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		logger.Error("database connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	rdb := connectRedis(logger)
	limiter := buildLimiter(rdb)

	handler := utils.ApplyMiddleware(
		router.Router(db, rdb),
		mw.RequestID,
		mw.AccessLog,
		mw.Recovery,
		mw.Cors,
		mw.BodySizeLimit,
		mw.RateLimit(limiter),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	logger.Info("server listening", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// connectRedis wires the optional Redis client used by the rate limiter and
// the stats cache. Returns nil when no Redis is configured; the API runs
// fine without it.
func connectRedis(logger *slog.Logger) *redis.Client {
	var rdb *redis.Client

	if url := os.Getenv("UPSTASH_REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			logger.Error("invalid UPSTASH_REDIS_URL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     os.Getenv("REDIS_USER"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	} else {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// The limiter fails open and the stats cache is optional, so a dead
		// Redis is a warning, not a startup failure.
		logger.Warn("redis unreachable, continuing without it", slog.String("error", err.Error()))
	} else {
		logger.Info("connected to redis")
	}
	return rdb
}

// buildLimiter picks the rate-limit backend: Redis-backed when available,
// an in-process bucket otherwise, or nothing when limiting is disabled.
func buildLimiter(rdb *redis.Client) ratelimit.Limiter {
	if os.Getenv("RATE_LIMIT_DISABLED") == "true" {
		return nil
	}

	ratePerS := 5.0
	if raw := os.Getenv("RATE_LIMIT_PER_SECOND"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			ratePerS = v
		}
	}
	burst := 20
	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			burst = v
		}
	}

	if rdb != nil {
		return ratelimit.NewRedisTokenBucket(rdb, ratePerS, burst)
	}
	return ratelimit.NewLocalBucket(ratePerS, burst)
}
