package applicationsrv

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

// ============================================================================
// Fakes
// ============================================================================

type fakeApplicationRepo struct {
	applications map[kernel.ApplicationID]*application.Application
	createErr    error
	createCalls  int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[kernel.ApplicationID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app *application.Application) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.applications[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, ok := r.applications[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	return app, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, userID kernel.UserID) ([]application.Application, error) {
	var out []application.Application
	for _, app := range r.applications {
		if app.ApplicantID.User == userID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByEmployer(ctx context.Context, userID kernel.UserID) ([]application.Application, error) {
	var out []application.Application
	for _, app := range r.applications {
		if app.EmployerID.User == userID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id kernel.ApplicationID) error {
	if _, ok := r.applications[id]; !ok {
		return application.ErrApplicationNotFound()
	}
	delete(r.applications, id)
	return nil
}

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
	return &kernel.Paginated[job.Job]{}, nil
}

func (r *fakeJobRepo) ListByPoster(ctx context.Context, userID kernel.UserID, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return &kernel.Paginated[job.Job]{}, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id kernel.JobID) error {
	delete(r.jobs, id)
	return nil
}

type fakeResumeStore struct {
	uploadCalls int
	deleteCalls int
	uploadErr   error
	deleteErr   error
	deleted     []string
}

func (s *fakeResumeStore) Upload(ctx context.Context, folder, fileName, contentType string, data []byte) (application.Resume, error) {
	s.uploadCalls++
	if s.uploadErr != nil {
		return application.Resume{}, s.uploadErr
	}
	key := folder + "/generated-" + fileName
	return application.Resume{PublicID: key, URL: "https://store.example.com/" + key}, nil
}

func (s *fakeResumeStore) Delete(ctx context.Context, publicID string) error {
	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, publicID)
	return nil
}

type fakeCleanupQueue struct {
	enqueued []string
}

func (q *fakeCleanupQueue) Enqueue(ctx context.Context, publicID string) error {
	q.enqueued = append(q.enqueued, publicID)
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

const (
	seekerID   = kernel.UserID("seeker-1")
	employerID = kernel.UserID("employer-1")
	openJobID  = kernel.JobID("job-1")
)

func openJob() *job.Job {
	return &job.Job{
		ID:       openJobID,
		Title:    "Backend Engineer",
		PostedBy: employerID,
		Status:   job.JobStatusOpen,
	}
}

func validRequest() application.SubmitApplicationRequest {
	return application.SubmitApplicationRequest{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		CoverLetter: "I would like to apply.",
		Phone:       "555-0100",
		Address:     "12 Analytical Way",
		JobID:       openJobID,
	}
}

func validFile() *application.ResumeFile {
	return &application.ResumeFile{
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	}
}

type serviceFixture struct {
	service *ApplicationService
	repo    *fakeApplicationRepo
	jobs    *fakeJobRepo
	store   *fakeResumeStore
	cleanup *fakeCleanupQueue
}

func newFixture(jobs ...*job.Job) *serviceFixture {
	repo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo(jobs...)
	store := &fakeResumeStore{}
	cleanup := &fakeCleanupQueue{}
	return &serviceFixture{
		service: NewApplicationService(repo, jobRepo, store, cleanup),
		repo:    repo,
		jobs:    jobRepo,
		store:   store,
		cleanup: cleanup,
	}
}

func assertErrCode(t *testing.T, err error, code errx.Code) {
	t.Helper()
	require.Error(t, err)
	var e *errx.Error
	require.True(t, errors.As(err, &e), "expected *errx.Error, got %T", err)
	assert.Equal(t, code, e.Code)
}

// ============================================================================
// SubmitApplication
// ============================================================================

func TestSubmitApplication_Success(t *testing.T) {
	f := newFixture(openJob())

	app, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, validRequest(), validFile())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.False(t, app.ID.IsEmpty())
	assert.Equal(t, seekerID, app.ApplicantID.User)
	assert.Equal(t, kernel.RoleJobSeeker, app.ApplicantID.Role)
	assert.Equal(t, employerID, app.EmployerID.User)
	assert.Equal(t, kernel.RoleEmployer, app.EmployerID.Role)
	assert.True(t, app.HasResume())
	assert.NotEmpty(t, app.Resume.URL)
	assert.Equal(t, 1, f.store.uploadCalls)
	assert.Equal(t, 1, f.repo.createCalls)
}

func TestSubmitApplication_DuplicatesAllowed(t *testing.T) {
	f := newFixture(openJob())

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, validRequest(), validFile())
	require.NoError(t, err)

	_, err = f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, validRequest(), validFile())
	require.NoError(t, err)

	assert.Len(t, f.repo.applications, 2)
}

func TestSubmitApplication_NotAuthenticated(t *testing.T) {
	f := newFixture(openJob())

	_, err := f.service.SubmitApplication(context.Background(), "", kernel.RoleJobSeeker, validRequest(), validFile())

	assertErrCode(t, err, application.CodeNotAuthenticated)
	assert.Zero(t, f.store.uploadCalls)
}

func TestSubmitApplication_EmployerBlocked(t *testing.T) {
	f := newFixture(openJob())

	_, err := f.service.SubmitApplication(context.Background(), employerID, kernel.RoleEmployer, validRequest(), validFile())

	assertErrCode(t, err, application.CodeEmployerCannotApply)
	assert.Zero(t, f.store.uploadCalls)
}

func TestSubmitApplication_MissingFile(t *testing.T) {
	f := newFixture(openJob())

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, validRequest(), nil)

	assertErrCode(t, err, application.CodeResumeFileRequired)
	assert.Zero(t, f.store.uploadCalls)
}

func TestSubmitApplication_WrongFileType(t *testing.T) {
	f := newFixture(openJob())
	file := validFile()
	file.ContentType = "application/zip"

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, validRequest(), file)

	assertErrCode(t, err, application.CodeInvalidFileType)
	assert.Zero(t, f.store.uploadCalls)
}

func TestSubmitApplication_MissingFields(t *testing.T) {
	f := newFixture(openJob())
	req := validRequest()
	req.CoverLetter = ""

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, req, validFile())

	assertErrCode(t, err, application.CodeMissingFields)
	assert.Zero(t, f.store.uploadCalls)
}

func TestSubmitApplication_EmptyJobID(t *testing.T) {
	f := newFixture(openJob())
	req := validRequest()
	req.JobID = ""

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, req, validFile())

	assertErrCode(t, err, job.CodeJobNotFound)
	assert.Zero(t, f.store.uploadCalls)
}

func TestSubmitApplication_UnknownJob(t *testing.T) {
	f := newFixture(openJob())
	req := validRequest()
	req.JobID = "job-missing"

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, req, validFile())

	assertErrCode(t, err, job.CodeJobNotFound)
	assert.Zero(t, f.store.uploadCalls)
}

func TestSubmitApplication_UploadFailure(t *testing.T) {
	f := newFixture(openJob())
	f.store.uploadErr = errors.New("bucket unreachable")

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, validRequest(), validFile())

	assertErrCode(t, err, application.CodeResumeUploadFailed)
	assert.Zero(t, f.repo.createCalls, "no record may be written when the upload fails")
}

func TestSubmitApplication_CreateFailureCompensates(t *testing.T) {
	f := newFixture(openJob())
	f.repo.createErr = errors.New("connection reset")

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, validRequest(), validFile())

	require.Error(t, err)
	assert.Equal(t, 1, f.store.deleteCalls, "the orphaned upload must be deleted")
	assert.Empty(t, f.cleanup.enqueued)
}

func TestSubmitApplication_CompensationFallsBackToQueue(t *testing.T) {
	f := newFixture(openJob())
	f.repo.createErr = errors.New("connection reset")
	f.store.deleteErr = errors.New("store down")

	_, err := f.service.SubmitApplication(context.Background(), seekerID, kernel.RoleJobSeeker, validRequest(), validFile())

	require.Error(t, err)
	require.Len(t, f.cleanup.enqueued, 1)
	assert.Contains(t, f.cleanup.enqueued[0], "job_applications/")
}

// ============================================================================
// Listing
// ============================================================================

func TestListForEmployer_RoleGate(t *testing.T) {
	f := newFixture(openJob())

	_, err := f.service.ListForEmployer(context.Background(), seekerID, kernel.RoleJobSeeker)

	assertErrCode(t, err, application.CodeJobSeekerCannotAccess)
}

func TestListForJobseeker_RoleGate(t *testing.T) {
	f := newFixture(openJob())

	_, err := f.service.ListForJobseeker(context.Background(), employerID, kernel.RoleEmployer)

	assertErrCode(t, err, application.CodeEmployerCannotAccess)
}

func TestListing_ReturnsOwnRecordsOnly(t *testing.T) {
	f := newFixture(openJob())
	ctx := context.Background()

	_, err := f.service.SubmitApplication(ctx, seekerID, kernel.RoleJobSeeker, validRequest(), validFile())
	require.NoError(t, err)
	_, err = f.service.SubmitApplication(ctx, "seeker-2", kernel.RoleJobSeeker, validRequest(), validFile())
	require.NoError(t, err)

	mine, err := f.service.ListForJobseeker(ctx, seekerID, kernel.RoleJobSeeker)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, seekerID, mine[0].ApplicantID.User)

	incoming, err := f.service.ListForEmployer(ctx, employerID, kernel.RoleEmployer)
	require.NoError(t, err)
	assert.Len(t, incoming, 2)
}

// ============================================================================
// Deletion
// ============================================================================

func TestDeleteApplication_EmployerBlocked(t *testing.T) {
	f := newFixture(openJob())

	err := f.service.DeleteApplication(context.Background(), employerID, kernel.RoleEmployer, "app-1")

	assertErrCode(t, err, application.CodeEmployerCannotDelete)
}

func TestDeleteApplication_NotFound(t *testing.T) {
	f := newFixture(openJob())

	err := f.service.DeleteApplication(context.Background(), seekerID, kernel.RoleJobSeeker, "app-missing")

	assertErrCode(t, err, application.CodeApplicationNotFound)
}

func TestDeleteApplication_OwnershipEnforced(t *testing.T) {
	f := newFixture(openJob())
	ctx := context.Background()

	app, err := f.service.SubmitApplication(ctx, seekerID, kernel.RoleJobSeeker, validRequest(), validFile())
	require.NoError(t, err)

	err = f.service.DeleteApplication(ctx, "seeker-2", kernel.RoleJobSeeker, app.ID)
	assertErrCode(t, err, application.CodeNotApplicationOwner)

	// The record is untouched.
	_, err = f.repo.GetByID(ctx, app.ID)
	assert.NoError(t, err)
}

func TestDeleteApplication_Success(t *testing.T) {
	f := newFixture(openJob())
	ctx := context.Background()

	app, err := f.service.SubmitApplication(ctx, seekerID, kernel.RoleJobSeeker, validRequest(), validFile())
	require.NoError(t, err)

	err = f.service.DeleteApplication(ctx, seekerID, kernel.RoleJobSeeker, app.ID)
	require.NoError(t, err)

	_, err = f.repo.GetByID(ctx, app.ID)
	assertErrCode(t, err, application.CodeApplicationNotFound)
}
