package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"

	"github.com/casacare/casacare-admin-api/utils"
)

// MockImageService keeps uploads in an in-memory map so handler tests can
// assert on stored content without a bucket or disk.
type MockImageService struct {
	images map[string][]byte
	mu     sync.RWMutex
}

// NewMockImageService creates an empty in-memory image service
func NewMockImageService() *MockImageService {
	return &MockImageService{
		images: make(map[string][]byte),
	}
}

// SetAsMockForTesting installs this mock as the ambient image service
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// UploadImage validates the file the same way the real backends do, then
// stores its content under a predictable key
func (m *MockImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	imageKey := fmt.Sprintf("offerings/mock_%s", fileHeader.Filename)

	m.mu.Lock()
	m.images[imageKey] = content
	m.mu.Unlock()

	return imageKey, nil
}

// GetImageURL returns a fake URL for a stored key, or an error for a key
// that was never uploaded
func (m *MockImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.images[imageKey]
	m.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("image not found in mock storage: %s", imageKey)
	}

	return fmt.Sprintf("https://casacare-media-test.s3.ap-south-1.amazonaws.com/%s?mock=true", imageKey), nil
}

// DeleteImage drops a stored key. Deleting a missing or empty key is a no-op.
func (m *MockImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.images, imageKey)
	m.mu.Unlock()

	return nil
}

// GetUploadedImages returns a copy of everything stored, for assertions
func (m *MockImageService) GetUploadedImages() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	images := make(map[string][]byte, len(m.images))
	for k, v := range m.images {
		images[k] = v
	}
	return images
}

// ImageExists reports whether a key is currently stored
func (m *MockImageService) ImageExists(imageKey string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.images[imageKey]
	return exists
}

// Clear empties the mock storage
func (m *MockImageService) Clear() {
	m.mu.Lock()
	m.images = make(map[string][]byte)
	m.mu.Unlock()
}
