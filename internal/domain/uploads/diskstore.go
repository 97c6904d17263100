package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes uploads to a local directory, creating it on demand.
// There is no rollback tie-in with the entry that will later reference
// the file; an orphaned file is acceptable garbage.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Save(_ context.Context, filename string, content io.Reader) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	target := filepath.Join(s.dir, filepath.Base(filename))
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(out, content); err != nil {
		out.Close()
		_ = os.Remove(target)
		return fmt.Errorf("write upload file: %w", err)
	}

	return out.Close()
}
