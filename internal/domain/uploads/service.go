package uploads

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

var (
	ErrInvalidType = errors.New("invalid file type")
	ErrTooLarge    = errors.New("file too large")
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// File is one inbound upload: the client-supplied name and content
// type, the declared size, and the content itself.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

type Stored struct {
	URL      string
	Filename string
}

// Store persists upload content under a generated filename.
type Store interface {
	Save(ctx context.Context, filename string, content io.Reader) error
}

type Service struct {
	store      Store
	publicPath string
	maxSize    int64
}

func NewService(store Store, publicPath string, maxSize int64) *Service {
	return &Service{
		store:      store,
		publicPath: strings.TrimRight(publicPath, "/"),
		maxSize:    maxSize,
	}
}

func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// Save validates the file and writes it to the store under a name built
// from the current time, a random suffix and the original extension.
// Collisions are astronomically unlikely; nothing is deduplicated.
func (s *Service) Save(ctx context.Context, file File) (*Stored, error) {
	contentType := strings.ToLower(strings.TrimSpace(file.ContentType))
	if _, ok := allowedTypes[contentType]; !ok {
		return nil, ErrInvalidType
	}
	if file.Size > s.maxSize {
		return nil, ErrTooLarge
	}

	suffix, err := randomSuffix(6)
	if err != nil {
		return nil, err
	}

	ext := path.Ext(file.Name)
	if ext == "" {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)

	if err := s.store.Save(ctx, filename, file.Content); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	return &Stored{
		URL:      s.publicPath + "/" + filename,
		Filename: filename,
	}, nil
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf), nil
}
