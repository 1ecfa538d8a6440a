package jobsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/pkg/errx"
	"github.com/hireline/hireline/pkg/kernel"
	"github.com/hireline/hireline/portal/application"
	"github.com/hireline/hireline/portal/job"
)

type fakeJobRepo struct {
	jobs map[kernel.JobID]*job.Job
}

func newFakeJobRepo(jobs ...*job.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[kernel.JobID]*job.Job)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(ctx context.Context, j *job.Job) error {
	if _, ok := r.jobs[j.ID]; ok {
		return job.ErrJobAlreadyExists()
	}
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return j, nil
}

func (r *fakeJobRepo) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	_, ok := r.jobs[id]
	return ok, nil
}

func (r *fakeJobRepo) ListOpen(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var items []job.Job
	for _, j := range r.jobs {
		if j.IsOpen() {
			items = append(items, *j)
		}
	}
	return &kernel.Paginated[job.Job]{Items: items, Empty: len(items) == 0}, nil
}

func (r *fakeJobRepo) ListByPoster(ctx context.Context, userID kernel.UserID, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var items []job.Job
	for _, j := range r.jobs {
		if j.IsPostedBy(userID) {
			items = append(items, *j)
		}
	}
	return &kernel.Paginated[job.Job]{Items: items, Empty: len(items) == 0}, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id kernel.JobID) error {
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(r.jobs, id)
	return nil
}

func assertErrCode(t *testing.T, err error, code errx.Code) {
	t.Helper()
	require.Error(t, err)
	var e *errx.Error
	require.True(t, errors.As(err, &e), "expected *errx.Error, got %T", err)
	assert.Equal(t, code, e.Code)
}

func validPostRequest() job.PostJobRequest {
	return job.PostJobRequest{
		Title:       "Backend Engineer",
		Description: "Build the portal backend.",
		Location:    "Remote",
	}
}

func TestPostJob_Success(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo)

	j, err := service.PostJob(context.Background(), "employer-1", kernel.RoleEmployer, validPostRequest())

	require.NoError(t, err)
	assert.False(t, j.ID.IsEmpty())
	assert.Equal(t, kernel.UserID("employer-1"), j.PostedBy)
	assert.Equal(t, job.JobStatusOpen, j.Status)
}

func TestPostJob_SeekerBlocked(t *testing.T) {
	service := NewJobService(newFakeJobRepo())

	_, err := service.PostJob(context.Background(), "seeker-1", kernel.RoleJobSeeker, validPostRequest())

	assertErrCode(t, err, job.CodeSeekerCannotPost)
}

func TestPostJob_NotAuthenticated(t *testing.T) {
	service := NewJobService(newFakeJobRepo())

	_, err := service.PostJob(context.Background(), "", kernel.RoleEmployer, validPostRequest())

	assertErrCode(t, err, application.CodeNotAuthenticated)
}

func TestPostJob_MissingFields(t *testing.T) {
	service := NewJobService(newFakeJobRepo())
	req := validPostRequest()
	req.Title = ""

	_, err := service.PostJob(context.Background(), "employer-1", kernel.RoleEmployer, req)

	assertErrCode(t, err, job.CodeInvalidRequest)
}

func TestGetJob_NotFound(t *testing.T) {
	service := NewJobService(newFakeJobRepo())

	_, err := service.GetJob(context.Background(), "job-missing")

	assertErrCode(t, err, job.CodeJobNotFound)
}

func TestDeleteJob_OnlyPosterMayDelete(t *testing.T) {
	repo := newFakeJobRepo(&job.Job{ID: "job-1", PostedBy: "employer-1", Status: job.JobStatusOpen})
	service := NewJobService(repo)

	err := service.DeleteJob(context.Background(), "employer-2", kernel.RoleEmployer, "job-1")
	assertErrCode(t, err, job.CodeNotJobPoster)

	err = service.DeleteJob(context.Background(), "employer-1", kernel.RoleEmployer, "job-1")
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), "job-1")
	assertErrCode(t, err, job.CodeJobNotFound)
}

func TestDeleteJob_SeekerBlocked(t *testing.T) {
	repo := newFakeJobRepo(&job.Job{ID: "job-1", PostedBy: "employer-1", Status: job.JobStatusOpen})
	service := NewJobService(repo)

	err := service.DeleteJob(context.Background(), "seeker-1", kernel.RoleJobSeeker, "job-1")

	assertErrCode(t, err, job.CodeSeekerCannotPost)
}

func TestListForPoster_ReturnsOwnJobsOnly(t *testing.T) {
	repo := newFakeJobRepo(
		&job.Job{ID: "job-1", PostedBy: "employer-1", Status: job.JobStatusOpen},
		&job.Job{ID: "job-2", PostedBy: "employer-2", Status: job.JobStatusOpen},
	)
	service := NewJobService(repo)

	result, err := service.ListForPoster(context.Background(), "employer-1", kernel.RoleEmployer, kernel.NewPaginationOptions(1, 20))

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, kernel.JobID("job-1"), result.Items[0].ID)
}
