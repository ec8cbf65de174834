package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	mattinpb "github.com/mattin-ai/mattin/gen/proto/mattin/v1"
	"github.com/mattin-ai/mattin/internal/async"
	"github.com/mattin-ai/mattin/internal/common"
	"github.com/mattin-ai/mattin/internal/document"
	"github.com/mattin-ai/mattin/internal/export"
	"github.com/mattin-ai/mattin/internal/httpapi"
	"github.com/mattin-ai/mattin/internal/ingest"
	"github.com/mattin-ai/mattin/internal/llm/factory"
	"github.com/mattin-ai/mattin/internal/pipeline"
	repo "github.com/mattin-ai/mattin/internal/repository"
	svc "github.com/mattin-ai/mattin/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	zlog, _ := zap.NewProduction()
	defer zlog.Sync()

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
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	schemasRepo := repo.NewSchemaDefinitionRepository(entc, logger)
	agentsRepo := repo.NewAgentRepository(entc, schemasRepo, logger)
	jobsRepo := repo.NewExtractionJobRepository(entc, logger)
	toolsRepo := repo.NewToolServerRepository(entc, logger)
	silosRepo := repo.NewSiloRepository(entc, logger)

	loader := document.NewLoader(document.Config{
		Pdftotext:   cfg.Loader.Pdftotext,
		Pdftoppm:    cfg.Loader.Pdftoppm,
		DPI:         cfg.Loader.DPI,
		MaxPages:    cfg.Loader.MaxPages,
		ExecTimeout: cfg.Loader.ExecTimeout,
	}, logger)

	models := factory.New(factory.Config{
		OpenAIKey:    cfg.LLM.OpenAIKey,
		AnthropicKey: cfg.LLM.AnthropicKey,
		MistralKey:   cfg.LLM.MistralKey,
		OllamaURL:    cfg.LLM.OllamaURL,
		Temperature:  cfg.LLM.Temperature,
		CallTimeout:  cfg.LLM.CallTimeout,
	}, logger)

	processor := pipeline.NewProcessor(agentsRepo, schemasRepo, loader, models, jobsRepo, pipeline.Config{
		PageConcurrency:    cfg.Pipeline.PageConcurrency,
		SkipVisionWhenText: cfg.Pipeline.SkipVisionWhenText,
	}, logger)

	queue := async.NewWorkerQueue(processor, cfg.Server.QueueWorkers, cfg.Server.QueueCapacity, logger)
	exporter := export.NewService(jobsRepo, logger)

	if roots := parseWatchRoots(cfg.Ingest.Roots, logger); len(roots) > 0 {
		ingestor := ingest.NewIngestor(ingest.Config{
			Roots:       roots,
			InitialScan: cfg.Ingest.InitialScan,
			UploadDir:   cfg.Server.UploadDir,
			WorkRoot:    cfg.Loader.ImagesDir,
		}, queue, logger)
		go func() {
			if err := ingestor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("ingest watcher stopped", "error", err)
			}
		}()
	}

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	agentsService := svc.NewAgentsService(agentsRepo, schemasRepo, toolsRepo, silosRepo, zlog)
	mattinpb.RegisterAgentsServiceServer(grpcServer, agentsService)
	extractionService := svc.NewExtractionService(processor, jobsRepo, exporter, cfg.Server.UploadDir, cfg.Loader.ImagesDir, zlog)
	mattinpb.RegisterExtractionServiceServer(grpcServer, extractionService)

	go func() {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	// HTTP server
	api := httpapi.NewServer(httpapi.Deps{
		Config:    cfg.Server,
		WorkRoot:  cfg.Loader.ImagesDir,
		Processor: processor,
		Queue:     queue,
		Agents:    agentsRepo,
		Jobs:      jobsRepo,
		Tools:     toolsRepo,
		Exporter:  exporter,
		Logger:    logger,
	})
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	_ = httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

// parseWatchRoots parses "agentID=path;agentID=path". Malformed entries are
// skipped with a warning.
func parseWatchRoots(raw string, logger *slog.Logger) []ingest.WatchRoot {
	if raw == "" {
		return nil
	}
	var roots []ingest.WatchRoot
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, path, ok := strings.Cut(entry, "=")
		if !ok {
			logger.Warn("invalid watch root, want agentID=path", "entry", entry)
			continue
		}
		agentID, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil || agentID <= 0 {
			logger.Warn("invalid watch root agent id", "entry", entry)
			continue
		}
		roots = append(roots, ingest.WatchRoot{Path: strings.TrimSpace(path), AgentID: agentID})
	}
	return roots
}
