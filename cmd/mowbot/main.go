package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	jobspb "github.com/joseph-ayodele/mowbot/gen/proto/jobs/v1"
	"github.com/joseph-ayodele/mowbot/internal/async"
	"github.com/joseph-ayodele/mowbot/internal/bot"
	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/repository"
	"github.com/joseph-ayodele/mowbot/internal/scheduler"
	"github.com/joseph-ayodele/mowbot/internal/server"
	"github.com/joseph-ayodele/mowbot/internal/session"
	"github.com/joseph-ayodele/mowbot/internal/sites"
	"github.com/joseph-ayodele/mowbot/internal/telegram"
	"github.com/joseph-ayodele/mowbot/internal/weather"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// store
	dbCfg := repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repository.Open(ctx, dbCfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}
	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("store health check failed", "error", err)
		os.Exit(1)
	}

	jobRepo := repository.NewJobRepository(entc, logger)
	noteRepo := repository.NewNoteRepository(entc, logger)

	// photo pipeline
	loc, err := time.LoadLocation(cfg.Reset.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "tz", cfg.Reset.Timezone, "error", err)
		os.Exit(1)
	}
	ledger := photos.NewLedger(loc)
	content, err := photos.NewContentStore(cfg.Photos.Dir)
	if err != nil {
		logger.Error("failed to open photo store", "dir", cfg.Photos.Dir, "error", err)
		os.Exit(1)
	}
	ingestor := photos.NewIngestor(jobRepo, content, ledger, cfg.Photos.Quality, logger)

	// site directory
	directory, err := sites.Load(cfg.Sites.OverridesPath, logger)
	if err != nil {
		logger.Error("failed to load site overrides", "path", cfg.Sites.OverridesPath, "error", err)
		os.Exit(1)
	}

	// forecasts
	var forecast weather.Forecaster
	wc := weather.NewClient(cfg.Weather.APIKey, cfg.Weather.CacheTTL, cfg.Weather.Timeout, logger)
	if wc.Enabled() {
		forecast = wc
	} else {
		logger.Info("weather lookups disabled, no api key")
	}

	// chat transport
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		logger.Error("failed to connect to telegram", "error", err)
		os.Exit(1)
	}
	logger.Info("telegram connected", "bot", api.Self.UserName)
	transport := telegram.NewTransport(api, logger)

	b := bot.New(bot.Deps{
		Jobs:      jobRepo,
		Notes:     noteRepo,
		Sessions:  session.NewStore(),
		Ledger:    ledger,
		Content:   content,
		Directory: directory,
		Forecast:  forecast,
		Transport: transport,
		Users:     cfg.Users,
		Logger:    logger,
	})
	queue := async.NewUploadQueue(ingestor, b.NotifyUpload, logger,
		async.WithWorkers(cfg.Photos.Workers),
		async.WithQueueSize(256),
		async.WithIngestTimeout(time.Minute),
	)
	b.SetUploads(queue)

	// daily reset
	clock, err := common.ParseClock(cfg.Reset.At)
	if err != nil {
		logger.Error("invalid reset time", "at", cfg.Reset.At, "error", err)
		os.Exit(1)
	}
	reset := scheduler.NewDailyReset(jobRepo, loc, clock.Hour, clock.Minute, logger)
	go reset.Run(ctx)

	// admin gRPC surface
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	jobspb.RegisterJobsServiceServer(grpcServer, server.NewJobsService(jobRepo, ledger, logger))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("admin server listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	listener := telegram.NewListener(api, b, int(cfg.Bot.PollTimeout/time.Second), logger)
	listener.Run(ctx)

	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
