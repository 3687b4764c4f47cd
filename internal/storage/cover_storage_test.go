package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uncode/videojuegos/config"
)

func newTestStorage(baseURL string) *S3CoverStorage {
	return NewS3CoverStorage(&config.S3Config{
		Region:          "eu-west-1",
		Bucket:          "videojuegos-test",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		BaseURL:         baseURL,
	})
}

func TestS3CoverStorage_PresignCoverUpload(t *testing.T) {
	s := newTestStorage("")

	upload, err := s.PresignCoverUpload(context.Background(), "Chrono.PNG", "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.Key, "portadas/"))
	assert.True(t, strings.HasSuffix(upload.Key, ".png"))
	assert.Equal(t, "https://videojuegos-test.s3.eu-west-1.amazonaws.com/"+upload.Key, upload.FileURL)

	parsed, err := url.Parse(upload.UploadURL)
	require.NoError(t, err)
	assert.Contains(t, parsed.Path, upload.Key)
	assert.Equal(t, "900", parsed.Query().Get("X-Amz-Expires"))
}

func TestS3CoverStorage_FileURLWithBaseURL(t *testing.T) {
	s := newTestStorage("https://cdn.example.com/")

	upload, err := s.PresignCoverUpload(context.Background(), "cover.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+upload.Key, upload.FileURL)
}

func TestS3CoverStorage_ValidateContentType(t *testing.T) {
	s := newTestStorage("")

	assert.NoError(t, s.ValidateContentType("image/webp"))
	assert.NoError(t, s.ValidateContentType(" IMAGE/PNG "))
	assert.Error(t, s.ValidateContentType("application/pdf"))
	assert.Error(t, s.ValidateContentType(""))
}
