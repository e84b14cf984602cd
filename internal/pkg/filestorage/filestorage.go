package filestorage

import "mime/multipart"

// Storage defines the interface for upload storage operations
type Storage interface {
	// AllowedFile reports whether the filename carries an accepted extension
	AllowedFile(filename string) bool

	// SaveUpload stores an uploaded file and returns the URL it is served
	// under. Files with a disallowed extension are rejected with
	// ErrExtensionNotAllowed.
	SaveUpload(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a previously stored file given its URL
	DeleteFile(fileURL string) error
}
