package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/uncode/videojuegos/internal/errors"
	"github.com/uncode/videojuegos/internal/storage"
)

type fakeUploader struct {
	err error
}

func (f *fakeUploader) PresignCoverUpload(_ context.Context, filename, _ string) (*storage.PresignedUpload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &storage.PresignedUpload{
		UploadURL: "https://bucket.example.com/portadas/x.png?sig=1",
		FileURL:   "https://cdn.example.com/portadas/x.png",
		Key:       "portadas/x.png",
	}, nil
}

func (f *fakeUploader) ValidateContentType(contentType string) error {
	if contentType != "image/png" {
		return errors.New("not allowed")
	}
	return nil
}

func postJSON(router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/uploads/portadas", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func setupUploadTest(uploader storage.CoverUploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/uploads/portadas", NewUploadController(uploader).PresignCover)
	return router
}

func TestUploadController_PresignCover(t *testing.T) {
	router := setupUploadTest(&fakeUploader{})

	w := postJSON(router, gin.H{"filename": "ct.png", "content_type": "image/png"})
	require.Equal(t, http.StatusOK, w.Code)

	var upload storage.PresignedUpload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &upload))
	assert.Equal(t, "portadas/x.png", upload.Key)
	assert.Equal(t, "https://cdn.example.com/portadas/x.png", upload.FileURL)
}

func TestUploadController_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		uploader   *fakeUploader
		body       gin.H
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Missing filename",
			uploader:   &fakeUploader{},
			body:       gin.H{"content_type": "image/png"},
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeValidation,
		},
		{
			name:       "Not an image",
			uploader:   &fakeUploader{},
			body:       gin.H{"filename": "manual.pdf", "content_type": "application/pdf"},
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.UploadInvalidFileType,
		},
		{
			name:       "Presign failure",
			uploader:   &fakeUploader{err: errors.New("no credentials")},
			body:       gin.H{"filename": "ct.png", "content_type": "image/png"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.UploadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(setupUploadTest(tt.uploader), tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotContains(t, resp.Message, "no credentials")
		})
	}
}
