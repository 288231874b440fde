// processquote reruns the processing pipeline for one quote record, useful
// when a document failed and the underlying issue has been fixed.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/smilematch/quotes/internal/async"
	"github.com/smilematch/quotes/internal/blob"
	"github.com/smilematch/quotes/internal/common"
	"github.com/smilematch/quotes/internal/extract"
	"github.com/smilematch/quotes/internal/llm/openai"
	"github.com/smilematch/quotes/internal/notify"
	"github.com/smilematch/quotes/internal/pipeline"
	"github.com/smilematch/quotes/internal/pricelist"
	repo "github.com/smilematch/quotes/internal/repository"
)

func main() {
	var (
		quoteID    = flag.String("quote", "", "quote record UUID (required)")
		offersOnly = flag.Bool("offers-only", false, "skip extraction and only regenerate counter-offers")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	id, err := uuid.Parse(*quoteID)
	if err != nil {
		logger.Error("valid -quote UUID is required", "error", err)
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "reason", err)
	}
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	store, err := blob.NewFSStore(cfg.Storage.Root)
	if err != nil {
		logger.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}

	providersRepo := repo.NewProviderRepository(entc, logger)
	pricesRepo := repo.NewPriceListRepository(entc, logger)
	notifsRepo := repo.NewNotificationRepository(entc, logger)

	ocrClient := extract.NewOCRSpaceClient(extract.OCRSpaceConfig{
		APIKey:   cfg.OCR.APIKey,
		Endpoint: cfg.OCR.Endpoint,
		Language: cfg.OCR.Language,
		Timeout:  cfg.OCR.Timeout,
	}, logger)
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

	processor := pipeline.NewProcessor(pipeline.Deps{
		Quotes:    repo.NewQuoteRepository(entc, logger),
		Offers:    repo.NewOfferRepository(entc, logger),
		Providers: providersRepo,
		Patients:  repo.NewPatientRepository(entc),
		Store:     store,
		Extractor: extract.NewExtractor(extract.Config{
			Pdftotext: cfg.OCR.Pdftotext,
			TempDir:   cfg.OCR.TempDir,
		}, ocrClient, logger),
		Structurer: openaiClient,
		Reconciler: openaiClient,
		Prices:     pricelist.NewResolver(pricesRepo, logger),
		Notifier:   notify.NewService(notifsRepo, mailer, cfg.Server.BaseURL, logger),
		RadiusKm:   cfg.Match.RadiusKm,
		MaxMatch:   cfg.Match.MaxMatch,
	}, logger)

	kind := async.KindProcess
	if *offersOnly {
		kind = async.KindOffers
	}
	if err := processor.Handle(ctx, async.Job{QuoteID: id, Kind: kind}, 1); err != nil {
		logger.Error("processing failed", "quote_id", id, "kind", kind, "error", err)
		os.Exit(1)
	}
	logger.Info("processing complete", "quote_id", id, "kind", kind)
}
