package constants

// JobStatus is the canonical status for rows in extraction_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // waiting for a worker
	JobStatusRunning   JobStatus = "RUNNING"   // pipeline in progress
	JobStatusSucceeded JobStatus = "SUCCEEDED" // aggregation produced a non-empty result
	JobStatusEmpty     JobStatus = "EMPTY"     // pipeline degraded to an empty result
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure (agent/model resolution)
)

// JobStatuses holds the allowed statuses for the status field in ExtractionJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusSucceeded),
	string(JobStatusEmpty),
	string(JobStatusFailed),
}
