package testhelpers

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
)

// FakeImageStore is an in-memory stand-in for the S3-backed image store.
// It records uploads and deletions so tests can assert on the best-effort
// release behavior.
type FakeImageStore struct {
	mu       sync.Mutex
	uploads  int
	Deleted  []string
	FailNext bool
}

func (f *FakeImageStore) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailNext {
		f.FailNext = false
		return "", fmt.Errorf("upload failed")
	}
	f.uploads++
	return fmt.Sprintf("https://images.test/recipes/%d-%s", f.uploads, file.Filename), nil
}

func (f *FakeImageStore) Delete(ctx context.Context, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailNext {
		f.FailNext = false
		return fmt.Errorf("delete failed")
	}
	f.Deleted = append(f.Deleted, imageURL)
	return nil
}
