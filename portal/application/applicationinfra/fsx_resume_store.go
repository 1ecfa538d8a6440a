package applicationinfra

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/hireline/hireline/pkg/fsx"
	"github.com/hireline/hireline/portal/application"
)

// FsxResumeStore implements application.ResumeStore over an fsx.FileSystem.
// The public id of an upload is its storage key.
type FsxResumeStore struct {
	fs fsx.FileSystem
}

// NewFsxResumeStore creates a resume store backed by the given filesystem.
func NewFsxResumeStore(fs fsx.FileSystem) *FsxResumeStore {
	return &FsxResumeStore{fs: fs}
}

// Upload stores the file under folder with a generated name, keeping the
// original extension. One attempt; the caller treats failure as terminal.
func (s *FsxResumeStore) Upload(ctx context.Context, folder, fileName, contentType string, data []byte) (application.Resume, error) {
	key := s.fs.Join(folder, uuid.NewString()+path.Ext(fileName))

	if err := s.fs.WriteFile(ctx, key, data); err != nil {
		return application.Resume{}, fmt.Errorf("upload resume %q: %w", key, err)
	}

	return application.Resume{
		PublicID: key,
		URL:      s.fs.URL(key),
	}, nil
}

// Delete removes a stored resume by its public id.
func (s *FsxResumeStore) Delete(ctx context.Context, publicID string) error {
	if err := s.fs.DeleteFile(ctx, publicID); err != nil {
		return fmt.Errorf("delete resume %q: %w", publicID, err)
	}
	return nil
}
