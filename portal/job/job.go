package job

import (
	"time"

	"github.com/hireline/hireline/pkg/kernel"
)

// JobStatus represents the lifecycle state of a posting
type JobStatus string

const (
	JobStatusOpen    JobStatus = "OPEN"    // Accepting applications
	JobStatusExpired JobStatus = "EXPIRED" // No longer accepting applications
)

type Job struct {
	ID          kernel.JobID          `db:"id" json:"id"`
	Title       kernel.JobTitle       `db:"title" json:"title"`
	Description kernel.JobDescription `db:"description" json:"description"`
	Location    kernel.JobLocation    `db:"location" json:"location"`
	PostedBy    kernel.UserID         `db:"posted_by" json:"postedBy"`
	Status      JobStatus             `db:"status" json:"status"`
	CreatedAt   time.Time             `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time             `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsOpen checks if the job is accepting applications
func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}

// IsPostedBy checks if the given user posted the job
func (j *Job) IsPostedBy(userID kernel.UserID) bool {
	return j.PostedBy == userID
}

// Expire marks the job as no longer accepting applications
func (j *Job) Expire() error {
	if j.Status == JobStatusExpired {
		return ErrJobAlreadyExpired()
	}

	j.Status = JobStatusExpired
	j.UpdatedAt = time.Now()
	return nil
}
