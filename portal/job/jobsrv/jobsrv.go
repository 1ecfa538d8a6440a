package jobsrv

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hireline/hireline/pkg/errx"
	"github.com/hireline/hireline/pkg/kernel"
	"github.com/hireline/hireline/portal/application"
	"github.com/hireline/hireline/portal/job"
)

// JobService handles job posting operations
type JobService struct {
	jobRepo  job.Repository
	validate *validator.Validate
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		validate: validator.New(),
	}
}

// PostJob creates a new open posting. Only Employers may post.
func (s *JobService) PostJob(ctx context.Context, requester kernel.UserID, role kernel.ActorRole, req job.PostJobRequest) (*job.Job, error) {
	if requester.IsEmpty() {
		return nil, application.ErrNotAuthenticated()
	}

	if role == kernel.RoleJobSeeker {
		return nil, job.ErrSeekerCannotPost()
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, job.ErrInvalidRequest().WithDetail("validation", err.Error())
	}

	now := time.Now()
	newJob := &job.Job{
		ID:          kernel.NewJobID(uuid.NewString()),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PostedBy:    requester,
		Status:      job.JobStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		if errx.IsType(err, errx.TypeConflict) {
			return nil, err
		}
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// GetJob fetches a single posting. Publicly readable.
func (s *JobService) GetJob(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
	}
	return j, nil
}

// ListOpen lists open postings with pagination. Publicly readable.
func (s *JobService) ListOpen(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	result, err := s.jobRepo.ListOpen(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list open jobs", errx.TypeInternal)
	}
	return result, nil
}

// ListForPoster lists the requester's own postings.
func (s *JobService) ListForPoster(ctx context.Context, requester kernel.UserID, role kernel.ActorRole, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	if requester.IsEmpty() {
		return nil, application.ErrNotAuthenticated()
	}

	if role == kernel.RoleJobSeeker {
		return nil, application.ErrJobSeekerCannotAccess()
	}

	result, err := s.jobRepo.ListByPoster(ctx, requester, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs by poster", errx.TypeInternal)
	}

	return result, nil
}

// DeleteJob removes a posting. Only the posting employer may delete it.
func (s *JobService) DeleteJob(ctx context.Context, requester kernel.UserID, role kernel.ActorRole, id kernel.JobID) error {
	if requester.IsEmpty() {
		return application.ErrNotAuthenticated()
	}

	if role == kernel.RoleJobSeeker {
		return job.ErrSeekerCannotPost()
	}

	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	if !j.IsPostedBy(requester) {
		return job.ErrNotJobPoster().WithDetail("job_id", id.String())
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	return nil
}
