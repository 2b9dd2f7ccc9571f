package filestorage

import "mime/multipart"

// FileStorage defines the interface for image storage operations
type FileStorage interface {
	// SaveFile saves an uploaded file and returns its public URL
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a previously stored file
	DeleteFile(filePath string) error
}
