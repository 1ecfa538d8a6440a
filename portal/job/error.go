package job

import (
	"net/http"

	"github.com/hireline/hireline/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found!")
	CodeJobAlreadyExists  = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Job already exists")
	CodeJobAlreadyExpired = ErrRegistry.Register("ALREADY_EXPIRED", errx.TypeBusiness, http.StatusConflict, "Job is already expired")
	CodeSeekerCannotPost  = ErrRegistry.Register("SEEKER_CANNOT_POST", errx.TypeAuthorization, http.StatusBadRequest, "Job Seekers cannot post jobs!")
	CodeNotJobPoster      = ErrRegistry.Register("NOT_POSTER", errx.TypeAuthorization, http.StatusForbidden, "Only the posting employer can modify this job")
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyExists)
}

func ErrJobAlreadyExpired() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyExpired)
}

func ErrSeekerCannotPost() *errx.Error {
	return ErrRegistry.New(CodeSeekerCannotPost)
}

func ErrNotJobPoster() *errx.Error {
	return ErrRegistry.New(CodeNotJobPoster)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
