package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/Mikailhassan/bursary-aden/internal/pkg/logger"
)

// ErrExtensionNotAllowed is returned when an upload's extension is not accepted
var ErrExtensionNotAllowed = errors.New("file extension not allowed")

// allowedExtensions is the set of accepted upload extensions
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".pdf":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// LocalStorage stores uploads on the local filesystem and serves them back
// as static URLs under baseURL.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prepended to stored filenames
}

// NewLocalStorage creates a LocalStorage rooted at basePath. The directory is
// created if it does not exist.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// AllowedFile reports whether the filename carries an accepted extension
func (ls *LocalStorage) AllowedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedExtensions[ext]
	return ok
}

// SanitizeFilename strips path components and unsafe characters from an
// uploaded filename.
func SanitizeFilename(filename string) string {
	base := filepath.Base(filepath.ToSlash(filename))
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	return strings.Trim(base, "._")
}

// SaveUpload stores an uploaded file under a sanitized, uuid-prefixed name
// and returns the URL it is served under.
func (ls *LocalStorage) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	if !ls.AllowedFile(fileHeader.Filename) {
		return "", ErrExtensionNotAllowed
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// uuid prefix prevents collisions between identically named uploads
	storedName := uuid.New().String() + "_" + SanitizeFilename(fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, storedName)

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

	fileURL := ls.baseURL + "/" + storedName
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("File saved")
	return fileURL, nil
}

// DeleteFile removes a stored file given its URL. Missing files are treated
// as already deleted.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	filename := filepath.Base(fileURL)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", fileURL)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
