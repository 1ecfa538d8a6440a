package job

import (
	"context"

	"github.com/hireline/hireline/pkg/kernel"
)

type Repository interface {
	// Create creates a new job posting
	Create(ctx context.Context, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// ListOpen retrieves open jobs with pagination
	ListOpen(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListByPoster retrieves jobs posted by a specific employer
	ListByPoster(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error
}
