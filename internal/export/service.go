package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mattin-ai/mattin/internal/repository"
)

// Service produces XLSX workbooks from finished extraction jobs.
type Service struct {
	jobs   repository.ExtractionJobRepository
	logger *slog.Logger
}

func NewService(jobs repository.ExtractionJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) for the given agent and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all jobs for the agent.
//
// Extraction results are free-form JSON objects whose keys depend on the agent's
// output schema, so result columns are derived from the union of keys across the
// exported jobs rather than from a fixed header list.
func (s *Service) ExportJobsXLSX(ctx context.Context, agentID int, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	jobs, err := s.jobs.ListByAgent(ctx, agentID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	// Decode results up front and collect the union of result keys.
	results := make([]map[string]any, len(jobs))
	keySet := map[string]struct{}{}
	for i, j := range jobs {
		if len(j.Result) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(j.Result, &m); err != nil {
			s.logger.Warn("export.result.decode_failed", "job_id", j.ID.String(), "error", err)
			continue
		}
		results[i] = m
		for k := range m {
			keySet[k] = struct{}{}
		}
	}
	resultKeys := make([]string, 0, len(keySet))
	for k := range keySet {
		resultKeys = append(resultKeys, k)
	}
	sort.Strings(resultKeys)

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Started At",
		"Document",
		"Status",
		"Pages",
		"Error",
	}
	headers = append(headers, resultKeys...)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i, j := range jobs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, j.StartedAt.UTC().Format("2006-01-02 15:04:05"))
		write(2, j.DocumentName)
		write(3, j.Status)
		write(4, j.Pages)
		if j.ErrorMessage != nil {
			write(5, truncate(*j.ErrorMessage, 140))
		} else {
			write(5, "")
		}

		for k, key := range resultKeys {
			m := results[i]
			if m == nil {
				continue
			}
			v, ok := m[key]
			if !ok {
				continue
			}
			write(6+k, cellValue(v))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20) // started at
	_ = f.SetColWidth(sheet, "B", "B", 40) // document
	_ = f.SetColWidth(sheet, "C", "C", 12) // status
	_ = f.SetColWidth(sheet, "E", "E", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"agent_id", agentID,
		"rows", len(jobs),
		"columns", len(headers),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// cellValue flattens nested structures so they stay readable in a spreadsheet cell.
func cellValue(v any) any {
	switch v.(type) {
	case nil:
		return ""
	case string, bool, float64, int, int64:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return truncate(string(b), 500)
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
