package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tastapp/tast-backend/internal/pkg/logger"
)

// LocalStorage saves uploaded quiz PDFs to the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath,
// creating the directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveCourseFile saves the main course PDF as
// course_{name}_{timestamp}.pdf and returns the stored filename.
func (ls *LocalStorage) SaveCourseFile(fileHeader *multipart.FileHeader, courseName string) (string, error) {
	name := fmt.Sprintf("course_%s_%s.pdf", sanitizeName(courseName), timestamp())
	return ls.save(fileHeader, name)
}

// SaveAdditionalFile saves a supplementary PDF as
// additional_{name}_{index}_{timestamp}.pdf and returns the stored
// filename.
func (ls *LocalStorage) SaveAdditionalFile(fileHeader *multipart.FileHeader, courseName string, index int) (string, error) {
	name := fmt.Sprintf("additional_%s_%d_%s.pdf", sanitizeName(courseName), index, timestamp())
	return ls.save(fileHeader, name)
}

// ReadFile returns the raw bytes of an uploaded file.
func (ls *LocalStorage) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filepath.Join(ls.basePath, filepath.Base(filename)))
}

func (ls *LocalStorage) save(fileHeader *multipart.FileHeader, filename string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dstPath := filepath.Join(ls.basePath, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Msg("File saved successfully")
	return filename, nil
}

// DeleteFile removes a stored file. Missing files are treated as already
// deleted.
func (ls *LocalStorage) DeleteFile(filename string) error {
	if filename == "" {
		return nil
	}

	base := filepath.Base(filename)
	if base == "" || base == "." || base == "/" {
		return fmt.Errorf("invalid file path: %s", filename)
	}

	physicalPath := filepath.Join(ls.basePath, base)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// BasePath returns the storage root, used for static file serving.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// sanitizeName makes a course name safe for use inside a filename.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Join(strings.Fields(name), "_")
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

func timestamp() string {
	return time.Now().Format("20060102150405")
}
