package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	quotesv1 "github.com/smilematch/quotes/gen/proto/quotes/v1"
	"github.com/smilematch/quotes/internal/async"
	"github.com/smilematch/quotes/internal/blob"
	"github.com/smilematch/quotes/internal/common"
	"github.com/smilematch/quotes/internal/eligibility"
	"github.com/smilematch/quotes/internal/export"
	"github.com/smilematch/quotes/internal/extract"
	"github.com/smilematch/quotes/internal/llm/openai"
	"github.com/smilematch/quotes/internal/normalize"
	"github.com/smilematch/quotes/internal/notify"
	"github.com/smilematch/quotes/internal/pipeline"
	"github.com/smilematch/quotes/internal/pricelist"
	repo "github.com/smilematch/quotes/internal/repository"
	svc "github.com/smilematch/quotes/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", "reason", err)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := blob.NewFSStore(cfg.Storage.Root)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}

	quotesRepo := repo.NewQuoteRepository(entc, logger)
	offersRepo := repo.NewOfferRepository(entc, logger)
	providersRepo := repo.NewProviderRepository(entc, logger)
	patientsRepo := repo.NewPatientRepository(entc)
	pricesRepo := repo.NewPriceListRepository(entc, logger)
	notifsRepo := repo.NewNotificationRepository(entc, logger)

	ocrClient := extract.NewOCRSpaceClient(extract.OCRSpaceConfig{
		APIKey:   cfg.OCR.APIKey,
		Endpoint: cfg.OCR.Endpoint,
		Language: cfg.OCR.Language,
		Timeout:  cfg.OCR.Timeout,
	}, logger)
	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		TempDir:   cfg.OCR.TempDir,
	}, ocrClient, logger)

	openaiClient := openai.NewClient(openai.Config{
		APIKey:           cfg.LLM.APIKey,
		BaseURL:          cfg.LLM.BaseURL,
		StructuringModel: cfg.LLM.StructuringModel,
		ReconcileModel:   cfg.LLM.ReconcileModel,
		Temperature:      cfg.LLM.Temperature,
		Timeout:          cfg.LLM.Timeout,
	}, logger)

	mailer := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}, logger)
	notifier := notify.NewService(notifsRepo, mailer, cfg.Server.BaseURL, logger)

	resolver := pricelist.NewResolver(pricesRepo, logger)
	reconciler := eligibility.NewReconciler(providersRepo, logger)

	processor := pipeline.NewProcessor(pipeline.Deps{
		Quotes:     quotesRepo,
		Offers:     offersRepo,
		Providers:  providersRepo,
		Patients:   patientsRepo,
		Store:      store,
		Extractor:  extractor,
		Structurer: openaiClient,
		Reconciler: openaiClient,
		Prices:     resolver,
		Notifier:   notifier,
		RadiusKm:   cfg.Match.RadiusKm,
		MaxMatch:   cfg.Match.MaxMatch,
	}, logger)

	queue := async.NewWorkerQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithAttempts(cfg.Queue.Attempts),
		async.WithAttemptTimeout(cfg.Queue.AttemptTimeout),
		async.WithBackoff(2*time.Minute, 5*time.Minute),
	)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	normalizer := normalize.New(logger)
	quotesService := svc.NewQuotesService(quotesRepo, offersRepo, patientsRepo, providersRepo, store, normalizer, queue, notifier, logger)
	quotesv1.RegisterQuotesServiceServer(grpcServer, quotesService)

	priceListService := svc.NewPriceListService(pricesRepo, providersRepo, resolver, reconciler, logger)
	quotesv1.RegisterPriceListServiceServer(grpcServer, priceListService)

	exportService := svc.NewExportService(export.NewService(offersRepo, quotesRepo, patientsRepo, logger), logger)
	quotesv1.RegisterExportServiceServer(grpcServer, exportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("quotesd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
