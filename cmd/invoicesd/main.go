package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicespb "github.com/trulyinvoice/trulyinvoice/gen/proto/invoices/v1"
	"github.com/trulyinvoice/trulyinvoice/internal/async"
	"github.com/trulyinvoice/trulyinvoice/internal/common"
	"github.com/trulyinvoice/trulyinvoice/internal/export"
	"github.com/trulyinvoice/trulyinvoice/internal/ingest"
	"github.com/trulyinvoice/trulyinvoice/internal/llm/openai"
	"github.com/trulyinvoice/trulyinvoice/internal/pipeline"
	repo "github.com/trulyinvoice/trulyinvoice/internal/repository"
	"github.com/trulyinvoice/trulyinvoice/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
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
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	// Repositories
	usersRepo := repo.NewUserRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)

	// Extraction pipeline
	extractor := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Lenient:     true,
	}, logger)
	textStage := pipeline.NewTextStage(docsRepo, jobsRepo, cfg.Extract.ArtifactCacheDir, logger)
	parseStage := pipeline.NewParseStage(logger, pipeline.Config{
		MinConfidence:    float32(cfg.Extract.MinConfidence),
		ArtifactCacheDir: cfg.Extract.ArtifactCacheDir,
		ModelName:        cfg.LLM.Model,
	}, jobsRepo, usersRepo, invoicesRepo, extractor)
	processor := pipeline.NewProcessor(logger, textStage, parseStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Extract.Workers),
		async.WithQueueSize(cfg.Extract.QueueSize),
		async.WithProcessTimeout(cfg.Extract.ProcessTimeout),
	)

	// Services
	ingestor := ingest.NewFSIngestor(usersRepo, docsRepo, logger)
	exportSvc := export.NewService(invoicesRepo, logger)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.UnaryLoggingInterceptor(logger)),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	invoicespb.RegisterUsersServiceServer(grpcServer, server.NewUsersService(usersRepo, logger))
	invoicespb.RegisterInvoicesServiceServer(grpcServer, server.NewInvoicesService(invoicesRepo, logger))
	invoicespb.RegisterIngestionServiceServer(grpcServer, server.NewIngestionService(ingestor, queue, usersRepo, logger))
	invoicespb.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)

	logger.Info("stopped")
}
