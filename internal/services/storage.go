package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrNotPDF = errors.New("uploaded file is not a PDF")

type StorageService interface {
	// SaveTemp writes src to a uniquely named PDF in the upload directory.
	// The returned cleanup removes the file and is safe to call on every
	// path, including when SaveTemp itself failed.
	SaveTemp(src io.Reader) (path string, cleanup func(), err error)
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveTemp implements StorageService.
func (s *storageService) SaveTemp(src io.Reader) (string, func(), error) {
	filePath := filepath.Join(s.uploadPath, fmt.Sprintf("resume_%s.pdf", uuid.New().String()))
	cleanup := func() {
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️  Failed to remove temp file %s: %v\n", filePath, err)
		}
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", cleanup, fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", cleanup, fmt.Errorf("failed to save file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", cleanup, fmt.Errorf("failed to save file: %w", err)
	}

	mtype, err := mimetype.DetectFile(filePath)
	if err != nil {
		return "", cleanup, fmt.Errorf("failed to detect file type: %w", err)
	}
	if !mtype.Is("application/pdf") {
		return "", cleanup, fmt.Errorf("%w: detected %s", ErrNotPDF, mtype.String())
	}

	return filePath, cleanup, nil
}
