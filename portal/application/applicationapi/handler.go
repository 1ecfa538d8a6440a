package applicationapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/hireline/hireline/pkg/auth"
	"github.com/hireline/hireline/pkg/kernel"
	"github.com/hireline/hireline/portal/application"
	"github.com/hireline/hireline/portal/application/applicationsrv"
)

// Handler handles HTTP requests for applications
type Handler struct {
	service *applicationsrv.ApplicationService
}

// NewHandler creates a new application handler
func NewHandler(service *applicationsrv.ApplicationService) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the application routes
func (h *Handler) RegisterRoutes(router fiber.Router, authMiddleware fiber.Handler) {
	applications := router.Group("/applications")
	applications.Use(authMiddleware)

	applications.Post("/", h.SubmitApplication)
	applications.Get("/employer", h.ListForEmployer)
	applications.Get("/jobseeker", h.ListForJobseeker)
	applications.Delete("/:id", h.DeleteApplication)
}

// SubmitApplication handles POST /applications (multipart/form-data)
func (h *Handler) SubmitApplication(c *fiber.Ctx) error {
	authCtx, _ := auth.GetAuthContext(c)

	file, err := h.readResumeFile(c)
	if err != nil {
		return err
	}

	req := application.SubmitApplicationRequest{
		Name:        c.FormValue("name"),
		Email:       kernel.Email(c.FormValue("email")),
		CoverLetter: c.FormValue("coverLetter"),
		Phone:       c.FormValue("phone"),
		Address:     c.FormValue("address"),
		JobID:       kernel.JobID(c.FormValue("jobId")),
	}

	app, err := h.service.SubmitApplication(c.Context(), authCtx.UserID, authCtx.Role, req, file)
	if err != nil {
		return err
	}

	return c.JSON(application.SubmitApplicationResponse{
		Success:     true,
		Message:     "Application Submitted!",
		Application: app,
	})
}

// readResumeFile extracts the uploaded resume from the multipart form. A
// missing file part is reported the same way as an empty one.
func (h *Handler) readResumeFile(c *fiber.Ctx) (*application.ResumeFile, error) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return nil, application.ErrResumeFileRequired()
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, application.ErrResumeFileRequired().WithCause(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, application.ErrResumeFileRequired().WithCause(err)
	}

	return &application.ResumeFile{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// ListForEmployer handles GET /applications/employer
func (h *Handler) ListForEmployer(c *fiber.Ctx) error {
	authCtx, _ := auth.GetAuthContext(c)

	applications, err := h.service.ListForEmployer(c.Context(), authCtx.UserID, authCtx.Role)
	if err != nil {
		return err
	}

	return c.JSON(application.ListApplicationsResponse{
		Success:      true,
		Applications: applications,
	})
}

// ListForJobseeker handles GET /applications/jobseeker
func (h *Handler) ListForJobseeker(c *fiber.Ctx) error {
	authCtx, _ := auth.GetAuthContext(c)

	applications, err := h.service.ListForJobseeker(c.Context(), authCtx.UserID, authCtx.Role)
	if err != nil {
		return err
	}

	return c.JSON(application.ListApplicationsResponse{
		Success:      true,
		Applications: applications,
	})
}

// DeleteApplication handles DELETE /applications/:id
func (h *Handler) DeleteApplication(c *fiber.Ctx) error {
	authCtx, _ := auth.GetAuthContext(c)

	id := kernel.ApplicationID(c.Params("id"))

	if err := h.service.DeleteApplication(c.Context(), authCtx.UserID, authCtx.Role, id); err != nil {
		return err
	}

	return c.JSON(application.DeleteApplicationResponse{
		Success: true,
		Message: "Application Deleted!",
	})
}
