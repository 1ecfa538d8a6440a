package jobapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hireline/hireline/pkg/auth"
	"github.com/hireline/hireline/pkg/kernel"
	"github.com/hireline/hireline/portal/job"
	"github.com/hireline/hireline/portal/job/jobsrv"
)

// Handler handles HTTP requests for job postings
type Handler struct {
	service *jobsrv.JobService
}

// NewHandler creates a new job handler
func NewHandler(service *jobsrv.JobService) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the job routes. Reads are public, writes require
// authentication.
func (h *Handler) RegisterRoutes(router fiber.Router, authMiddleware fiber.Handler) {
	jobs := router.Group("/jobs")

	jobs.Get("/", h.ListOpen)
	// "/mine" must be registered before "/:id".
	jobs.Get("/mine", authMiddleware, h.ListMyJobs)
	jobs.Get("/:id", h.GetJob)

	jobs.Post("/", authMiddleware, h.PostJob)
	jobs.Delete("/:id", authMiddleware, h.DeleteJob)
}

// PostJob handles POST /jobs
func (h *Handler) PostJob(c *fiber.Ctx) error {
	authCtx, _ := auth.GetAuthContext(c)

	var req job.PostJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithCause(err)
	}

	j, err := h.service.PostJob(c.Context(), authCtx.UserID, authCtx.Role, req)
	if err != nil {
		return err
	}

	return c.JSON(job.PostJobResponse{
		Success: true,
		Message: "Job Posted Successfully!",
		Job:     j,
	})
}

// ListOpen handles GET /jobs
func (h *Handler) ListOpen(c *fiber.Ctx) error {
	pagination := paginationFromQuery(c)

	result, err := h.service.ListOpen(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(job.ListJobsResponse{
		Success: true,
		Jobs:    result,
	})
}

// GetJob handles GET /jobs/:id
func (h *Handler) GetJob(c *fiber.Ctx) error {
	id := kernel.JobID(c.Params("id"))

	j, err := h.service.GetJob(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(job.GetJobResponse{
		Success: true,
		Job:     j,
	})
}

// ListMyJobs handles GET /jobs/mine
func (h *Handler) ListMyJobs(c *fiber.Ctx) error {
	authCtx, _ := auth.GetAuthContext(c)

	pagination := paginationFromQuery(c)

	result, err := h.service.ListForPoster(c.Context(), authCtx.UserID, authCtx.Role, pagination)
	if err != nil {
		return err
	}

	return c.JSON(job.ListJobsResponse{
		Success: true,
		Jobs:    result,
	})
}

// DeleteJob handles DELETE /jobs/:id
func (h *Handler) DeleteJob(c *fiber.Ctx) error {
	authCtx, _ := auth.GetAuthContext(c)

	id := kernel.JobID(c.Params("id"))

	if err := h.service.DeleteJob(c.Context(), authCtx.UserID, authCtx.Role, id); err != nil {
		return err
	}

	return c.JSON(job.DeleteJobResponse{
		Success: true,
		Message: "Job Deleted!",
	})
}

func paginationFromQuery(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.NewPaginationOptions(
		c.QueryInt("page", 1),
		c.QueryInt("pageSize", 20),
	)
}
