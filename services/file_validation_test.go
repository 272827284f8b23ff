package services

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		size         int64
		expectedCode string
	}{
		{name: "PNG is allowed", filename: "photo.png", size: 1024},
		{name: "JPG is allowed", filename: "photo.jpg", size: 1024},
		{name: "JPEG is allowed", filename: "photo.jpeg", size: 1024},
		{name: "WEBP is allowed", filename: "photo.webp", size: 1024},
		{name: "Uppercase extension is allowed", filename: "PHOTO.JPG", size: 1024},
		{name: "Exactly at the size limit", filename: "big.jpg", size: MaxUploadSize},
		{name: "PDF is rejected", filename: "invoice.pdf", size: 1024, expectedCode: "INVALID_FILE_FORMAT"},
		{name: "No extension is rejected", filename: "photo", size: 1024, expectedCode: "INVALID_FILE_FORMAT"},
		{name: "Oversized file is rejected", filename: "huge.jpg", size: MaxUploadSize + 1, expectedCode: "FILE_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}

			err := ValidateImageFile(header)
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}

			var uploadErr *FileUploadError
			assert.ErrorAs(t, err, &uploadErr)
			assert.Equal(t, tt.expectedCode, uploadErr.Code)
		})
	}
}
