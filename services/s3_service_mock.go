package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
)

// MockStorage is an in-memory implementation of StorageInterface for testing
type MockStorage struct {
	uploadedFiles map[string][]byte // map of object key to file content
	deletedKeys   []string
	failUploads   bool
	uploadCount   int
	failAfter     int // when > 0, uploads start failing after this many successes
	mu            sync.RWMutex
}

// NewMockStorage creates a new mock storage service
func NewMockStorage() *MockStorage {
	return &MockStorage{
		uploadedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global storage instance for testing
func (m *MockStorage) SetAsMockForTesting() {
	SetStorage(m)
}

// FailUploads makes every subsequent upload return an error
func (m *MockStorage) FailUploads(fail bool) {
	m.mu.Lock()
	m.failUploads = fail
	m.mu.Unlock()
}

// FailAfter makes uploads fail once n uploads have succeeded. Used to
// exercise partial batch failures.
func (m *MockStorage) FailAfter(n int) {
	m.mu.Lock()
	m.failAfter = n
	m.mu.Unlock()
}

// UploadFile simulates uploading a file and returns a fake public URL
func (m *MockStorage) UploadFile(keyPrefix string, fileHeader *multipart.FileHeader) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failUploads || (m.failAfter > 0 && m.uploadCount >= m.failAfter) {
		return "", fmt.Errorf("mock storage: upload failed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content := make([]byte, fileHeader.Size)
	if _, err := file.Read(content); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectKey := fmt.Sprintf("%s/mock_%d%s", strings.Trim(keyPrefix, "/"), m.uploadCount, ext)
	m.uploadedFiles[objectKey] = content
	m.uploadCount++

	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s", objectKey), nil
}

// DeleteFile simulates deleting an object
func (m *MockStorage) DeleteFile(objectKey string) error {
	if objectKey == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.uploadedFiles, objectKey)
	m.deletedKeys = append(m.deletedKeys, objectKey)
	m.mu.Unlock()

	return nil
}

// UploadCount returns how many uploads succeeded
func (m *MockStorage) UploadCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.uploadCount
}

// DeletedKeys returns the keys passed to DeleteFile (for assertions)
func (m *MockStorage) DeletedKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.deletedKeys...)
}

// Clear removes all files from mock storage
func (m *MockStorage) Clear() {
	m.mu.Lock()
	m.uploadedFiles = make(map[string][]byte)
	m.deletedKeys = nil
	m.uploadCount = 0
	m.failUploads = false
	m.failAfter = 0
	m.mu.Unlock()
}
