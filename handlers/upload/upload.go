package upload

import (
	"strings"

	"github.com/alinasr783/studyabroad-buddy/services/storage"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles admin image uploads
type UploadHandler struct {
	uploader storage.Uploader
	maxBytes int64
}

// NewUploadHandler creates a new upload handler. maxMB caps the accepted
// file size.
func NewUploadHandler(uploader storage.Uploader, maxMB int) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		maxBytes: int64(maxMB) * 1024 * 1024,
	}
}

// UploadResponse carries the public URL of the stored object
type UploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadImage handles POST /api/v1/admin/uploads/image (admin)
// The file must declare an image/* content type and fit under the size
// ceiling; both checks run before any storage call.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	if h.uploader == nil {
		return response.Error(c, fiber.StatusServiceUnavailable,
			"File storage is not configured", "STORAGE_UNAVAILABLE")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "Missing image field")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return response.BadRequest(c, "Only image uploads are allowed")
	}

	if fileHeader.Size > h.maxBytes {
		return response.BadRequest(c, "File exceeds the maximum upload size")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	key := storage.GenerateKey("images", fileHeader.Filename)
	url, err := h.uploader.UploadFile(c.Context(), key, file, contentType)
	if err != nil {
		return response.InternalServerError(c, "Failed to store uploaded file")
	}

	return response.Created(c, UploadResponse{URL: url, Key: key})
}
