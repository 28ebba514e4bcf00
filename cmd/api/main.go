// @title Mindwell challenges API
// @version 1.0
// @description Challenge completion tracking, challenge stats and daily streaks
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/limbo/mindwell/docs"
	"github.com/limbo/mindwell/internal/api"
	"github.com/limbo/mindwell/internal/repository"
	"github.com/limbo/mindwell/internal/service"
	"github.com/limbo/mindwell/pkg/cleanup"
	"github.com/limbo/mindwell/pkg/config"
	jwtservice "github.com/limbo/mindwell/pkg/jwt_service"
	"github.com/limbo/mindwell/pkg/migrator"
)

func init() {
	service.InitValidator()
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetStringOr("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if strings.EqualFold(cfg.GetString("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func streakLocation(cfg *config.Config) *time.Location {
	name := cfg.GetStringOr("STREAK_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown streak timezone, using UTC", slog.String("timezone", name), slog.String("error", err.Error()))
		return time.UTC
	}
	return loc
}

func main() {
	cfg := config.New()
	setupLogger(cfg)
	defer cleanup.CleanUp()
	if cfg.GetString("JWT_SECRET") == "" {
		slog.Error("JWT_SECRET is not set")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:         cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username:        cfg.GetString("POSTGRES_USER"),
		Password:        cfg.GetString("POSTGRES_PASSWORD"),
		DB:              cfg.GetString("POSTGRES_DB"),
		SSLMode:         cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
		MaxConns:        int32(cfg.GetInt("POSTGRES_MAX_CONNS", 10)),
		MinConns:        int32(cfg.GetInt("POSTGRES_MIN_CONNS", 2)),
		MaxConnLifetime: cfg.GetDuration("POSTGRES_MAX_CONN_LIFETIME", time.Hour),
		MaxConnIdleTime: cfg.GetDuration("POSTGRES_MAX_CONN_IDLE_TIME", 30*time.Minute),
	}
	if cfg.GetBool("RUN_MIGRATIONS", true) {
		if err := migrator.Up(dbCfg.ConnString(), cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
			slog.Error("migrations failed", slog.String("error", err.Error()))
			return
		}
	}
	trustedProxies, err := api.ParseTrustedProxies(cfg.GetList("TRUSTED_PROXIES", nil))
	if err != nil {
		slog.Error("invalid TRUSTED_PROXIES", slog.String("error", err.Error()))
		return
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		slog.Error("database unavailable", slog.String("error", err.Error()))
		return
	}

	usersRepo := repository.NewUsersRepo(pool)
	challengesRepo := repository.NewChallengesRepo(pool)
	elementsRepo := repository.NewElementsRepo(pool)
	progressRepo := repository.NewProgressRepo(pool)
	transactor := repository.NewTransactor(pool)

	aggregator := service.NewChallengeAggregator(challengesRepo, elementsRepo)
	streaks := service.NewStreakCalculator(elementsRepo, streakLocation(cfg))
	progressService := service.NewProgressService(challengesRepo, progressRepo, streaks)

	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(usersRepo),
		ChallengesService: service.NewChallengesService(challengesRepo, elementsRepo, transactor, aggregator, progressService),
		CompletionService: service.NewCompletionService(elementsRepo, transactor, aggregator, progressService),
		ProgressService:   progressService,
		JwtService:        jwtservice.NewWithTTL(cfg.GetString("JWT_SECRET"), cfg.GetDuration("TOKEN_TTL", jwtservice.DefaultTokenTTL)),
		Pinger:            pool,
	}, api.Options{
		RateLimitRPS:   cfg.GetFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: cfg.GetInt("RATE_LIMIT_BURST", 30),
		MetricsUser:    cfg.GetString("METRICS_USER"),
		MetricsPass:    cfg.GetString("METRICS_PASS"),
		CORSOrigins:    cfg.GetList("CORS_ORIGINS", []string{"*"}),
		TrustedProxies: trustedProxies,
	})
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
