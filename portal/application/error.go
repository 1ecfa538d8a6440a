package application

import (
	"net/http"

	"github.com/hireline/hireline/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeNotAuthenticated      = ErrRegistry.Register("NOT_AUTHENTICATED", errx.TypeAuthentication, http.StatusUnauthorized, "User not authenticated")
	CodeEmployerCannotApply   = ErrRegistry.Register("EMPLOYER_CANNOT_APPLY", errx.TypeAuthorization, http.StatusBadRequest, "Employers cannot apply for jobs!")
	CodeResumeFileRequired    = ErrRegistry.Register("RESUME_FILE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Resume file required!")
	CodeInvalidFileType       = ErrRegistry.Register("INVALID_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Invalid file type. Please upload a PDF or image file.")
	CodeMissingFields         = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Please fill all fields.")
	CodeApplicationNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found!")
	CodeResumeUploadFailed    = ErrRegistry.Register("UPLOAD_FAILED", errx.TypeExternal, http.StatusInternalServerError, "Failed to upload resume")
	CodeNotApplicationOwner   = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusBadRequest, "Only the applicant can delete this application")
	CodeJobSeekerCannotAccess = ErrRegistry.Register("JOBSEEKER_CANNOT_ACCESS", errx.TypeAuthorization, http.StatusBadRequest, "Job Seekers cannot access this resource!")
	CodeEmployerCannotAccess  = ErrRegistry.Register("EMPLOYER_CANNOT_ACCESS", errx.TypeAuthorization, http.StatusBadRequest, "Employers cannot access this resource!")
	CodeEmployerCannotDelete  = ErrRegistry.Register("EMPLOYER_CANNOT_DELETE", errx.TypeAuthorization, http.StatusBadRequest, "Employers cannot delete applications!")
	CodeInvalidActorRef       = ErrRegistry.Register("INVALID_ACTOR_REF", errx.TypeValidation, http.StatusBadRequest, "Invalid actor reference")
	CodeInvalidRequest        = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrNotAuthenticated() *errx.Error {
	return ErrRegistry.New(CodeNotAuthenticated)
}

func ErrEmployerCannotApply() *errx.Error {
	return ErrRegistry.New(CodeEmployerCannotApply)
}

func ErrResumeFileRequired() *errx.Error {
	return ErrRegistry.New(CodeResumeFileRequired)
}

func ErrInvalidFileType() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileType)
}

func ErrMissingFields() *errx.Error {
	return ErrRegistry.New(CodeMissingFields)
}

func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrResumeUploadFailed() *errx.Error {
	return ErrRegistry.New(CodeResumeUploadFailed)
}

func ErrNotApplicationOwner() *errx.Error {
	return ErrRegistry.New(CodeNotApplicationOwner)
}

func ErrJobSeekerCannotAccess() *errx.Error {
	return ErrRegistry.New(CodeJobSeekerCannotAccess)
}

func ErrEmployerCannotAccess() *errx.Error {
	return ErrRegistry.New(CodeEmployerCannotAccess)
}

func ErrEmployerCannotDelete() *errx.Error {
	return ErrRegistry.New(CodeEmployerCannotDelete)
}

func ErrInvalidActorRef() *errx.Error {
	return ErrRegistry.New(CodeInvalidActorRef)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
