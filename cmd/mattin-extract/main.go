// mattin-extract runs a single document through an agent's extraction
// pipeline and prints the result as JSON. Useful for trying out an agent
// configuration without going through the API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mattin-ai/mattin/gen/ent"
	"github.com/mattin-ai/mattin/internal/common"
	"github.com/mattin-ai/mattin/internal/document"
	"github.com/mattin-ai/mattin/internal/llm/factory"
	"github.com/mattin-ai/mattin/internal/pipeline"
	repo "github.com/mattin-ai/mattin/internal/repository"
)

func main() {
	var (
		agentID = flag.Int("agent", 0, "agent id to run (required)")
		file    = flag.String("file", "", "path to the document (required)")
		sqlite  = flag.String("sqlite", "", "sqlite DSN; when set, used instead of DB_URL")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *agentID == 0 || *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, closeDB := mustOpen(ctx, cfg, *sqlite, logger)
	defer closeDB()

	schemasRepo := repo.NewSchemaDefinitionRepository(entc, logger)
	agentsRepo := repo.NewAgentRepository(entc, schemasRepo, logger)
	jobsRepo := repo.NewExtractionJobRepository(entc, logger)

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
		PageConcurrency: cfg.Pipeline.PageConcurrency,
	}, logger)

	// The pipeline owns and deletes its input, so hand it a scratch copy.
	runID := uuid.NewString()
	scratch := filepath.Join(os.TempDir(), "mattin", runID)
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		fatal(logger, "prepare scratch dir", err)
	}
	documentPath := filepath.Join(scratch, filepath.Base(*file))
	if err := copyFile(*file, documentPath); err != nil {
		fatal(logger, "copy document", err)
	}
	workDir := filepath.Join(scratch, "pages")

	run, err := processor.ProcessDocument(ctx, *agentID, documentPath, workDir)
	os.RemoveAll(scratch)
	if err != nil {
		fatal(logger, "extraction", err)
	}

	out, err := json.MarshalIndent(run.Final, "", "  ")
	if err != nil {
		fatal(logger, "marshal result", err)
	}
	fmt.Println(string(out))
	logger.Info("done", "status", run.Status, "job_id", run.JobID)
}

// mustOpen prefers the embedded SQLite database when -sqlite is given or no
// DB_URL is configured, so the CLI works without a running Postgres.
func mustOpen(ctx context.Context, cfg *common.Config, sqliteDSN string, logger *slog.Logger) (*ent.Client, func()) {
	if sqliteDSN != "" || cfg.Database.DSN == "" {
		client, err := repo.OpenLite(sqliteDSN, logger)
		if err != nil {
			fatal(logger, "open sqlite database", err)
		}
		return client, func() { _ = client.Close() }
	}
	client, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		fatal(logger, "open database", err)
	}
	return client, func() { repo.Close(client, pool, logger) }
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
