package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/trulyinvoice/trulyinvoice/gen/ent"
	"github.com/trulyinvoice/trulyinvoice/internal/common"
	"github.com/trulyinvoice/trulyinvoice/internal/export"
	"github.com/trulyinvoice/trulyinvoice/internal/ingest"
	"github.com/trulyinvoice/trulyinvoice/internal/llm/openai"
	"github.com/trulyinvoice/trulyinvoice/internal/pipeline"
	repo "github.com/trulyinvoice/trulyinvoice/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", true, "use in-memory SQLite instead of DB_URL")
		dir     = flag.String("dir", "", "directory to process invoices from (required)")
		out     = flag.String("out", "", "output file path (optional, defaults to parent directory)")
		format  = flag.String("format", "xlsx", "export format: xlsx or csv")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *format != "xlsx" && *format != "csv" {
		printError("Error: --format must be xlsx or csv\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices."+*format)
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	_ = godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	// Local batch runs default to in-memory SQLite so they need no
	// Postgres credentials; --inmem=false goes through DB_URL instead.
	var entc *ent.Client
	if *inmem {
		dbResult, err := common.InitSQLite(ctx, logger)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer dbResult.Cleanup()
		entc = dbResult.Client
	} else {
		client, pool, err := repo.Open(ctx, repo.Config{
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
		defer repo.Close(client, pool, logger)
		entc = client
	}

	usersRepo := repo.NewUserRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)

	owner, err := usersRepo.GetOrCreateByEmail(ctx, &repo.User{
		Email:           "batch@localhost",
		Name:            "Local Batch",
		DefaultCurrency: "USD",
	})
	if err != nil {
		logger.Error("failed to get or create batch user", "error", err)
		os.Exit(1)
	}
	logger.Info("using owner", "id", owner.ID, "email", owner.Email)

	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY is required for field extraction")
		os.Exit(1)
	}
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

	ingestor := ingest.NewFSIngestor(usersRepo, docsRepo, logger)

	logger.Info("starting ingestion", "dir", *dir, "owner", owner.ID)
	results, stats, err := ingestor.IngestDirectory(ctx, owner.ID, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		docID, err := uuid.Parse(r.DocumentID)
		if err != nil {
			logger.Error("failed to parse document ID", "document_id", r.DocumentID, "error", err)
			continue
		}
		ingested = append(ingested, docID)
	}
	logger.Info("ingestion complete",
		"documents_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0
	for _, docID := range ingested {
		logger.Info("processing document", "document_id", docID)
		if _, err := processor.ProcessDocument(ctx, docID); err != nil {
			logger.Error("failed to process document", "document_id", docID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	logger.Info("exporting", "output", *out, "format", *format)
	exportSvc := export.NewService(invoicesRepo, logger)

	var data []byte
	if *format == "csv" {
		data, err = exportSvc.ExportInvoicesCSV(ctx, owner.ID, from, to)
	} else {
		data, err = exportSvc.ExportInvoicesXLSX(ctx, owner.ID, from, to)
	}
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"documents_ingested", len(ingested),
		"documents_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents ingested: %d\n", len(ingested))
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
