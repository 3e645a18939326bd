package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// JobsProvider reports scheduled job runs.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler serves the scheduler run history.
type JobsHandler struct {
	runs JobsProvider
	log  *slog.Logger
}

// NewJobsHandler creates a JobsHandler reading from p.
func NewJobsHandler(p JobsProvider, log *slog.Logger) *JobsHandler {
	return &JobsHandler{runs: p, log: log}
}

// JobRunsOutput is a list of job runs, newest first.
type JobRunsOutput struct {
	Body []domain.JobRun
}

// JobHistoryInput selects one job and how many of its runs to return.
type JobHistoryInput struct {
	JobName string `path:"job_name" doc:"Scheduled job name" example:"promotion_expiry"`
	Limit   int    `query:"limit" default:"20" minimum:"1" maximum:"50" doc:"Maximum runs to return"`
}

// ListJobs returns the latest run of every job that has run at least once.
func (h *JobsHandler) ListJobs(ctx context.Context, _ *struct{}) (*JobRunsOutput, error) {
	runs, err := h.runs.ListLatestJobRuns(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "listing job runs", "error", err)
		return nil, huma.Error500InternalServerError("listing jobs failed", err)
	}
	return &JobRunsOutput{Body: nonNilRuns(runs)}, nil
}

// GetJobHistory returns up to Limit runs of one job. A job that never ran
// yields an empty list.
func (h *JobsHandler) GetJobHistory(ctx context.Context, in *JobHistoryInput) (*JobRunsOutput, error) {
	runs, err := h.runs.ListJobRuns(ctx, in.JobName, in.Limit)
	if err != nil {
		h.log.ErrorContext(ctx, "listing job history", "job_name", in.JobName, "error", err)
		return nil, huma.Error500InternalServerError("fetching job history failed", err)
	}
	return &JobRunsOutput{Body: nonNilRuns(runs)}, nil
}

func nonNilRuns(runs []domain.JobRun) []domain.JobRun {
	if runs == nil {
		return []domain.JobRun{}
	}
	return runs
}

// RegisterJobRoutes registers the job history operations with api.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "Latest run per job",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Run history of one job",
		Description: "Runs are kept in memory and reset when the server restarts.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.GetJobHistory)
}
