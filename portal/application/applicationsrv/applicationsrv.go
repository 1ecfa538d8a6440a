package applicationsrv

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hireline/hireline/pkg/errx"
	"github.com/hireline/hireline/pkg/kernel"
	"github.com/hireline/hireline/pkg/logx"
	"github.com/hireline/hireline/portal/application"
	"github.com/hireline/hireline/portal/job"
)

// uploadTimeout bounds the single store call so a hung upload cannot stall
// the request indefinitely.
const uploadTimeout = 30 * time.Second

// resumeFolder is the store folder all resume uploads land in.
const resumeFolder = "job_applications"

// ApplicationService orchestrates the submission workflow and the companion
// read/delete operations.
type ApplicationService struct {
	applicationRepo application.Repository
	jobRepo         job.Repository
	resumeStore     application.ResumeStore
	cleanupQueue    application.CleanupQueue
	validate        *validator.Validate
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	jobRepo job.Repository,
	resumeStore application.ResumeStore,
	cleanupQueue application.CleanupQueue,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		resumeStore:     resumeStore,
		cleanupQueue:    cleanupQueue,
		validate:        validator.New(),
	}
}

// SubmitApplication runs the submission pipeline. Gates run in order with
// early exit; every local check and the job resolution happen before the
// store upload, so an invalid submission never consumes an upload slot.
func (s *ApplicationService) SubmitApplication(
	ctx context.Context,
	requester kernel.UserID,
	role kernel.ActorRole,
	req application.SubmitApplicationRequest,
	file *application.ResumeFile,
) (*application.Application, error) {
	// 1. Authenticated?
	if requester.IsEmpty() {
		return nil, application.ErrNotAuthenticated()
	}

	// 2. Role gate
	if role == kernel.RoleEmployer {
		return nil, application.ErrEmployerCannotApply()
	}

	// 3. File presence and type
	file, err := ValidateResumeFile(file)
	if err != nil {
		return nil, err
	}

	// 4. Required fields
	if err := s.validate.Struct(req); err != nil {
		return nil, application.ErrMissingFields().WithDetail("validation", err.Error())
	}

	// 5. Job resolution. An empty id surfaces the same way as a lookup miss.
	if req.JobID.IsEmpty() {
		return nil, job.ErrJobNotFound()
	}

	jobEntity, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}

	// 6. Upload. Single attempt, bounded deadline, terminal on failure.
	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	resume, err := s.resumeStore.Upload(uploadCtx, resumeFolder, file.FileName, file.ContentType, file.Data)
	if err != nil {
		return nil, application.ErrResumeUploadFailed().WithCause(err)
	}

	// 7. Persist with role-tagged actor references.
	newApplication := &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		Name:        req.Name,
		Email:       req.Email,
		CoverLetter: req.CoverLetter,
		Phone:       req.Phone,
		Address:     req.Address,
		ApplicantID: kernel.NewActorRef(requester, kernel.RoleJobSeeker),
		EmployerID:  kernel.NewActorRef(jobEntity.PostedBy, kernel.RoleEmployer),
		Resume:      resume,
		CreatedAt:   time.Now(),
	}

	if err := newApplication.Validate(); err != nil {
		s.releaseOrphanedUpload(ctx, resume.PublicID)
		return nil, err
	}

	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		s.releaseOrphanedUpload(ctx, resume.PublicID)
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	return newApplication, nil
}

// releaseOrphanedUpload compensates for an upload whose record was never
// written: delete synchronously, fall back to the cleanup queue when the
// delete itself fails.
func (s *ApplicationService) releaseOrphanedUpload(ctx context.Context, publicID string) {
	if err := s.resumeStore.Delete(ctx, publicID); err == nil {
		return
	}

	logx.Warnf("Orphaned resume %s could not be deleted inline, queueing for cleanup", publicID)
	if err := s.cleanupQueue.Enqueue(ctx, publicID); err != nil {
		logx.Errorf("Failed to queue orphaned resume %s for cleanup: %v", publicID, err)
	}
}

// ListForEmployer retrieves the applications filed against the requester's
// postings. Job Seekers cannot access this view.
func (s *ApplicationService) ListForEmployer(ctx context.Context, requester kernel.UserID, role kernel.ActorRole) ([]application.Application, error) {
	if requester.IsEmpty() {
		return nil, application.ErrNotAuthenticated()
	}

	if role == kernel.RoleJobSeeker {
		return nil, application.ErrJobSeekerCannotAccess()
	}

	applications, err := s.applicationRepo.ListByEmployer(ctx, requester)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications for employer", errx.TypeInternal)
	}

	return applications, nil
}

// ListForJobseeker retrieves the requester's own submissions. Employers
// cannot access this view.
func (s *ApplicationService) ListForJobseeker(ctx context.Context, requester kernel.UserID, role kernel.ActorRole) ([]application.Application, error) {
	if requester.IsEmpty() {
		return nil, application.ErrNotAuthenticated()
	}

	if role == kernel.RoleEmployer {
		return nil, application.ErrEmployerCannotAccess()
	}

	applications, err := s.applicationRepo.ListByApplicant(ctx, requester)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications for jobseeker", errx.TypeInternal)
	}

	return applications, nil
}

// DeleteApplication removes a submission. Beyond the role gate, the fetched
// record's applicant must be the requester.
func (s *ApplicationService) DeleteApplication(ctx context.Context, requester kernel.UserID, role kernel.ActorRole, id kernel.ApplicationID) error {
	if requester.IsEmpty() {
		return application.ErrNotAuthenticated()
	}

	if role == kernel.RoleEmployer {
		return application.ErrEmployerCannotDelete()
	}

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if !app.IsOwnedBy(requester) {
		return application.ErrNotApplicationOwner().WithDetail("application_id", id.String())
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete application", errx.TypeInternal)
	}

	// The stored resume is kept: the record is gone but the file may still
	// be referenced by the employer's hiring notes. See repository docs.
	return nil
}
