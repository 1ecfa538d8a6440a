package job

import "github.com/hireline/hireline/pkg/kernel"

// PostJobRequest - DTO for creating a new job posting
type PostJobRequest struct {
	Title       kernel.JobTitle       `json:"title" validate:"required"`
	Description kernel.JobDescription `json:"description" validate:"required"`
	Location    kernel.JobLocation    `json:"location" validate:"required"`
}

// PostJobResponse - returned after a successful posting
type PostJobResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Job     *Job   `json:"job"`
}

// ListJobsResponse - returned by listing endpoints
type ListJobsResponse struct {
	Success bool                   `json:"success"`
	Jobs    *kernel.Paginated[Job] `json:"jobs"`
}

// GetJobResponse - returned when fetching a single job
type GetJobResponse struct {
	Success bool `json:"success"`
	Job     *Job `json:"job"`
}

// DeleteJobResponse - returned after deletion
type DeleteJobResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
