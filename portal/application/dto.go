package application

import (
	"github.com/hireline/hireline/pkg/kernel"
)

// SubmitApplicationRequest - form fields of a submission. All fields are
// required; JobID is validated separately so a missing job surfaces as a
// not-found rather than a field error.
type SubmitApplicationRequest struct {
	Name        string       `json:"name" validate:"required"`
	Email       kernel.Email `json:"email" validate:"required"`
	CoverLetter string       `json:"coverLetter" validate:"required"`
	Phone       string       `json:"phone" validate:"required"`
	Address     string       `json:"address" validate:"required"`
	JobID       kernel.JobID `json:"jobId"`
}

// ResumeFile is the validated handle of an uploaded resume: bytes plus the
// declared content type. The declared type is trusted; no sniffing happens.
type ResumeFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// SubmitApplicationResponse - returned after a successful submission.
type SubmitApplicationResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Application *Application `json:"application"`
}

// ListApplicationsResponse - returned by the employer and jobseeker listing
// endpoints.
type ListApplicationsResponse struct {
	Success      bool          `json:"success"`
	Applications []Application `json:"applications"`
}

// DeleteApplicationResponse - returned after a successful deletion.
type DeleteApplicationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
