package application

import (
	"context"

	"github.com/hireline/hireline/pkg/kernel"
)

type Repository interface {
	// Create inserts a new application. No uniqueness constraint applies: a
	// seeker may hold several applications for the same job.
	Create(ctx context.Context, application *Application) error

	// GetByID retrieves an application by ID.
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// ListByApplicant retrieves applications whose applicant reference
	// matches the given user.
	ListByApplicant(ctx context.Context, userID kernel.UserID) ([]Application, error)

	// ListByEmployer retrieves applications whose employer reference matches
	// the given user.
	ListByEmployer(ctx context.Context, userID kernel.UserID) ([]Application, error)

	// Delete removes an application permanently.
	Delete(ctx context.Context, id kernel.ApplicationID) error
}

// ResumeStore uploads resumes to the external content store. One attempt per
// call; failures are terminal for the caller.
type ResumeStore interface {
	// Upload stores the file under folder and returns its stable identifier
	// and retrievable URL.
	Upload(ctx context.Context, folder, fileName, contentType string, data []byte) (Resume, error)

	// Delete removes a stored resume by its public id.
	Delete(ctx context.Context, publicID string) error
}

// CleanupQueue receives public ids of uploads whose application record never
// materialized, for asynchronous deletion.
type CleanupQueue interface {
	Enqueue(ctx context.Context, publicID string) error
}
