package applicationsrv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/pkg/errx"
	"github.com/hireline/hireline/portal/application"
)

func TestValidateResumeFile_AcceptsAllowedTypes(t *testing.T) {
	for _, contentType := range []string{"image/png", "image/jpeg", "image/webp", "application/pdf"} {
		t.Run(contentType, func(t *testing.T) {
			file := &application.ResumeFile{
				FileName:    "resume",
				ContentType: contentType,
				Data:        []byte("content"),
			}

			got, err := ValidateResumeFile(file)

			require.NoError(t, err)
			assert.Same(t, file, got)
		})
	}
}

func TestValidateResumeFile_RejectsNil(t *testing.T) {
	_, err := ValidateResumeFile(nil)

	require.Error(t, err)
	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, application.CodeResumeFileRequired, e.Code)
}

func TestValidateResumeFile_RejectsEmptyData(t *testing.T) {
	_, err := ValidateResumeFile(&application.ResumeFile{
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
	})

	require.Error(t, err)
	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, application.CodeResumeFileRequired, e.Code)
}

func TestValidateResumeFile_RejectsUnknownType(t *testing.T) {
	_, err := ValidateResumeFile(&application.ResumeFile{
		FileName:    "resume.docx",
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:        []byte("content"),
	})

	require.Error(t, err)
	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, application.CodeInvalidFileType, e.Code)
}

func TestValidateResumeFile_TrustsDeclaredType(t *testing.T) {
	// The declared type wins even when the bytes disagree.
	file := &application.ResumeFile{
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		Data:        []byte("definitely not a pdf"),
	}

	_, err := ValidateResumeFile(file)

	assert.NoError(t, err)
}
