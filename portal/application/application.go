package application

import (
	"time"

	"github.com/hireline/hireline/pkg/kernel"
)

// Resume is the stored-file reference produced by one successful upload. It
// is embedded by value and never updated.
type Resume struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

func (r Resume) IsEmpty() bool { return r.PublicID == "" }

// Application links a job seeker to a job posting through two role-tagged
// actor references. Records are created once by the submission workflow and
// are immutable afterwards except for deletion by their owner.
type Application struct {
	ID          kernel.ApplicationID `json:"id"`
	Name        string               `json:"name"`
	Email       kernel.Email         `json:"email"`
	CoverLetter string               `json:"coverLetter"`
	Phone       string               `json:"phone"`
	Address     string               `json:"address"`
	ApplicantID kernel.ActorRef      `json:"applicantID"`
	EmployerID  kernel.ActorRef      `json:"employerID"`
	Resume      Resume               `json:"resume"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// Validate checks the actor-reference invariants: the applicant must carry
// the Job Seeker role and the employer the Employer role.
func (a *Application) Validate() error {
	if a.ApplicantID.IsEmpty() || a.ApplicantID.Role != kernel.RoleJobSeeker {
		return ErrInvalidActorRef().WithDetail("applicantID", a.ApplicantID)
	}
	if a.EmployerID.IsEmpty() || a.EmployerID.Role != kernel.RoleEmployer {
		return ErrInvalidActorRef().WithDetail("employerID", a.EmployerID)
	}
	return nil
}

// IsOwnedBy reports whether the given user is the applicant on record.
func (a *Application) IsOwnedBy(userID kernel.UserID) bool {
	return a.ApplicantID.User == userID
}

// HasResume reports whether a stored resume is attached.
func (a *Application) HasResume() bool {
	return !a.Resume.IsEmpty()
}
