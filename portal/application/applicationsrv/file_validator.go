package applicationsrv

import (
	"github.com/hireline/hireline/portal/application"
)

// allowedResumeTypes is the declared-MIME allow-list for resume uploads.
var allowedResumeTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"application/pdf": true,
}

// ValidateResumeFile gates an upload on presence and declared MIME type. The
// declared type is trusted as-is; the file content is never inspected. On
// success the handle is returned unchanged.
func ValidateResumeFile(file *application.ResumeFile) (*application.ResumeFile, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, application.ErrResumeFileRequired()
	}

	if !allowedResumeTypes[file.ContentType] {
		return nil, application.ErrInvalidFileType().
			WithDetail("content_type", file.ContentType).
			WithDetail("allowed_types", "png, jpeg, webp, pdf")
	}

	return file, nil
}
