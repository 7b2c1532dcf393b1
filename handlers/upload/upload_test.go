package upload

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/alinasr783/studyabroad-buddy/api"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	calls   int
	lastKey string
	lastCT  string
}

func (f *fakeUploader) UploadFile(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	f.calls++
	f.lastKey = key
	f.lastCT = contentType
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeUploader) DeleteFile(ctx context.Context, key string) error {
	return nil
}

func newUploadRequest(t *testing.T, filename, contentType string, size int) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads/image", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func setupApp(uploader *fakeUploader, maxMB int) *fiber.App {
	app := fiber.New()
	handler := NewUploadHandler(uploader, maxMB)
	app.Post("/uploads/image", handler.UploadImage)
	return app
}

func TestUploadImage(t *testing.T) {
	uploader := &fakeUploader{}
	app := setupApp(uploader, 5)

	resp, err := app.Test(newUploadRequest(t, "campus.png", "image/png", 128))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, "image/png", uploader.lastCT)
	assert.Contains(t, uploader.lastKey, "images/")
}

// An image under the configured ceiling but over Fiber's default 4 MB
// body limit must still reach the handler and succeed.
func TestUploadImageNearCeiling(t *testing.T) {
	uploader := &fakeUploader{}
	app := fiber.New(fiber.Config{BodyLimit: api.BodyLimit(5)})
	handler := NewUploadHandler(uploader, 5)
	app.Post("/uploads/image", handler.UploadImage)

	size := 4*1024*1024 + 512*1024 // 4.5 MB
	resp, err := app.Test(newUploadRequest(t, "large.png", "image/png", size), 10000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, uploader.calls)
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	uploader := &fakeUploader{}
	app := setupApp(uploader, 5)

	resp, err := app.Test(newUploadRequest(t, "notes.pdf", "application/pdf", 128))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, uploader.calls, "storage must not be called for rejected files")
}

func TestUploadImageRejectsOversize(t *testing.T) {
	uploader := &fakeUploader{}
	app := setupApp(uploader, 1)

	resp, err := app.Test(newUploadRequest(t, "huge.jpg", "image/jpeg", 2*1024*1024))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, uploader.calls, "storage must not be called for rejected files")
}

func TestUploadImageMissingFile(t *testing.T) {
	uploader := &fakeUploader{}
	app := setupApp(uploader, 5)

	req := httptest.NewRequest(http.MethodPost, "/uploads/image", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, uploader.calls)
}

func TestUploadImageStorageUnavailable(t *testing.T) {
	app := fiber.New()
	handler := NewUploadHandler(nil, 5)
	app.Post("/uploads/image", handler.UploadImage)

	resp, err := app.Test(newUploadRequest(t, "campus.png", "image/png", 128))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
