package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mattin-ai/mattin/gen/ent"
	"github.com/mattin-ai/mattin/internal/pipeline"
)

type fakeJobs struct {
	jobs []*ent.ExtractionJob
	err  error

	gotFrom, gotTo *time.Time
}

func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*ent.ExtractionJob, error) {
	return nil, errors.New("not used")
}

func (f *fakeJobs) ListByAgent(_ context.Context, _ int, from, to *time.Time) ([]*ent.ExtractionJob, error) {
	f.gotFrom, f.gotTo = from, to
	return f.jobs, f.err
}

func (f *fakeJobs) Start(context.Context, int, string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not used")
}

func (f *fakeJobs) Finish(context.Context, uuid.UUID, pipeline.JobOutcome) error {
	return errors.New("not used")
}

func job(name, status string, result string) *ent.ExtractionJob {
	j := &ent.ExtractionJob{
		ID:           uuid.New(),
		AgentID:      1,
		DocumentName: name,
		Status:       status,
		Pages:        2,
		StartedAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	if result != "" {
		j.Result = json.RawMessage(result)
	}
	return j
}

func TestExportJobsXLSX(t *testing.T) {
	repo := &fakeJobs{jobs: []*ent.ExtractionJob{
		job("a.pdf", "SUCCEEDED", `{"title":"Alpha","total":12.5}`),
		job("b.pdf", "SUCCEEDED", `{"title":"Beta","vendor":"ACME"}`),
		job("c.pdf", "EMPTY", ""),
	}}
	svc := NewService(repo, nil)

	data, err := svc.ExportJobsXLSX(context.Background(), 1, nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus three jobs")

	// fixed columns then the sorted union of result keys
	assert.Equal(t, []string{"Started At", "Document", "Status", "Pages", "Error", "title", "total", "vendor"}, rows[0])

	assert.Equal(t, "a.pdf", rows[1][1])
	assert.Equal(t, "Alpha", rows[1][5])
	assert.Equal(t, "ACME", rows[2][7])
	assert.Equal(t, "EMPTY", rows[3][2])
}

func TestExportJobsXLSXDateWindow(t *testing.T) {
	repo := &fakeJobs{}
	svc := NewService(repo, nil)

	from := time.Date(2026, 1, 15, 18, 45, 0, 0, time.Local)
	_, err := svc.ExportJobsXLSX(context.Background(), 1, &from, nil)
	require.NoError(t, err)

	require.NotNil(t, repo.gotFrom)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *repo.gotFrom, "from normalizes to date-only UTC")
	require.NotNil(t, repo.gotTo, "open-ended from window closes at today")
}

func TestExportJobsXLSXRepositoryError(t *testing.T) {
	svc := NewService(&fakeJobs{err: errors.New("db down")}, nil)
	_, err := svc.ExportJobsXLSX(context.Background(), 1, nil, nil)
	require.Error(t, err)
}

func TestExportJobsXLSXMalformedResultSkipped(t *testing.T) {
	repo := &fakeJobs{jobs: []*ent.ExtractionJob{
		job("ok.pdf", "SUCCEEDED", `{"title":"Good"}`),
		job("bad.pdf", "SUCCEEDED", `{not json`),
	}}
	svc := NewService(repo, nil)

	data, err := svc.ExportJobsXLSX(context.Background(), 1, nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Good", rows[1][5])
}
